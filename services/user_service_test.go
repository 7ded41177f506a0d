package services

import (
	"fmt"
	"testing"

	"github.com/Ali924-boop/Meal-Planer/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}

func TestUserService(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("RegisterAndAuthenticate", func(t *testing.T) {
		svc := NewUserService(testDB(t))

		if err := svc.Register("ali@example.com", "hunter22", "Ali"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		token, err := svc.Authenticate("ali@example.com", "hunter22")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if token == "" {
			t.Error("Expected a token")
		}

		if _, err := svc.Authenticate("ali@example.com", "wrong"); err == nil {
			t.Error("Expected error for wrong password")
		}
		if _, err := svc.Authenticate("nobody@example.com", "hunter22"); err == nil {
			t.Error("Expected error for unknown email")
		}
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		svc := NewUserService(testDB(t))
		if err := svc.Register("ali@example.com", "hunter22", "Ali"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if err := svc.Register("ali@example.com", "other", "Imposter"); err == nil {
			t.Error("Expected unique-email violation")
		}
	})

	t.Run("ToggleBlockedMeal", func(t *testing.T) {
		db := testDB(t)
		svc := NewUserService(db)
		if err := svc.Register("ali@example.com", "hunter22", "Ali"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		user, err := svc.FindByEmail("ali@example.com")
		if err != nil {
			t.Fatal(err)
		}

		mealID := MealID("2026-01-10", Lunch, "Sarson Ka Saag")

		blocked, err := svc.ToggleBlockedMeal(user.ID, mealID)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if !blocked {
			t.Error("First toggle should block")
		}

		// The membership fact survives a fresh read.
		reloaded, err := svc.FindByID(user.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(reloaded.BlockedMeals) != 1 || reloaded.BlockedMeals[0] != mealID {
			t.Errorf("Expected persisted blocked set [%s], got %v", mealID, reloaded.BlockedMeals)
		}

		blocked, err = svc.ToggleBlockedMeal(user.ID, mealID)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if blocked {
			t.Error("Second toggle should unblock")
		}

		reloaded, _ = svc.FindByID(user.ID)
		if len(reloaded.BlockedMeals) != 0 {
			t.Errorf("Expected empty blocked set, got %v", reloaded.BlockedMeals)
		}
	})

	t.Run("ToggleUnknownUser", func(t *testing.T) {
		svc := NewUserService(testDB(t))
		if _, err := svc.ToggleBlockedMeal(999, "whatever"); err == nil {
			t.Error("Expected error for missing user")
		}
	})
}
