package routes

import (
	"github.com/Ali924-boop/Meal-Planer/controllers"
	"github.com/Ali924-boop/Meal-Planer/middlewares"
	"github.com/Ali924-boop/Meal-Planer/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	users := services.NewUserService(db)
	authCtrl := controllers.NewAuthController(users)
	mealCtrl := controllers.NewMealController(users, hub)
	userCtrl := controllers.NewUserController(users)
	rtCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/forgot-password", authCtrl.ForgotPassword)
		auth.POST("/reset-password", authCtrl.ResetPassword)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(db))
	{
		api.GET("/user/profile", userCtrl.GetProfile)
		api.PUT("/user/profile", userCtrl.UpdateProfile)

		api.GET("/meals", mealCtrl.GetMeals)
		api.POST("/meals/block", mealCtrl.ToggleBlock)
		api.GET("/allplans", mealCtrl.AllPlans)

		api.GET("/ws/plans", rtCtrl.PlansWS)
	}

	return r
}
