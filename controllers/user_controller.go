package controllers

import (
	"net/http"

	"github.com/Ali924-boop/Meal-Planer/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type ProfileInput struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

func (uc *UserController) GetProfile(c *gin.Context) {
	email := c.GetString("email")
	user, err := uc.Users.FindByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"name":            user.Name,
		"profile_picture": user.ProfilePicture,
		"blocked_meals":   user.BlockedMeals,
	})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.Users.UpdateProfile(email, input.Name, input.ProfilePicture)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "profile updated successfully",
		"name":            user.Name,
		"profile_picture": user.ProfilePicture,
	})
}
