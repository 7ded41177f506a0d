package main

import (
	"github.com/Ali924-boop/Meal-Planer/config"
	"github.com/Ali924-boop/Meal-Planer/routes"
	"github.com/Ali924-boop/Meal-Planer/services"
	"github.com/Ali924-boop/Meal-Planer/utils"
)

func main() {
	config.LoadEnv()
	db := config.InitDB()
	utils.InitS3()
	utils.InitSES()

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(db, hub)
	r.Run(":8080")
}
