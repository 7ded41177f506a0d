package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Ali924-boop/Meal-Planer/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Users *services.UserService
	Hub   *services.RealtimeHub
}

func NewMealController(users *services.UserService, hub *services.RealtimeHub) *MealController {
	return &MealController{Users: users, Hub: hub}
}

// GetMeals returns the generated meal set for one day, with the caller's
// blocked ids applied. Missing or unparseable dates mean today.
func (mc *MealController) GetMeals(c *gin.Context) {
	userID := c.GetUint("userID")
	user, err := mc.Users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}

	meals := services.GenerateMealsForDate(dateStr, []string(user.BlockedMeals))
	c.JSON(http.StatusOK, meals)
}

type ToggleBlockInput struct {
	MealID string `json:"mealId" binding:"required"`
}

// ToggleBlock flips the persisted blocked state of one meal id and returns
// the new state. Live sessions of the same user are notified over the hub.
func (mc *MealController) ToggleBlock(c *gin.Context) {
	var input ToggleBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing mealId"})
		return
	}

	userID := c.GetUint("userID")
	blocked, err := mc.Users.ToggleBlockedMeal(userID, input.MealID)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.Hub.BroadcastBlockEvent(userID, services.BlockEvent{MealID: input.MealID, Blocked: blocked})

	c.JSON(http.StatusOK, gin.H{"blocked": blocked})
}

// AllPlans returns an ordered multi-day plan backed by the single-date
// generator, for the client-side block/reschedule view.
func (mc *MealController) AllPlans(c *gin.Context) {
	userID := c.GetUint("userID")
	user, err := mc.Users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	if s := c.Query("start"); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			start = parsed
		}
	}

	days := 7
	if d := c.Query("days"); d != "" {
		if n, err := strconv.Atoi(d); err == nil {
			days = n
		}
	}
	if days < 1 {
		days = 1
	}
	if days > 31 {
		days = 31
	}

	c.JSON(http.StatusOK, services.BuildPlan(start, days, []string(user.BlockedMeals)))
}
