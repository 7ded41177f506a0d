package services

import (
	"errors"
	"time"

	"github.com/Ali924-boop/Meal-Planer/models"
	"github.com/Ali924-boop/Meal-Planer/utils"

	"gorm.io/gorm"
)

// ErrUserNotFound distinguishes a missing user from a storage failure at
// the handler layer.
var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Register(email, password, name string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
	}
	return s.db.Create(&user).Error
}

// Authenticate checks credentials and returns a signed JWT on success.
func (s *UserService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.Email)
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// ToggleBlockedMeal flips membership of mealID in the user's blocked set
// and reports the new state. Concurrent toggles on the same user resolve
// last-write-wins; the set is small enough that a plain read-modify-write
// save is fine.
func (s *UserService) ToggleBlockedMeal(userID uint, mealID string) (bool, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return false, ErrUserNotFound
	}

	idx := -1
	for i, id := range user.BlockedMeals {
		if id == mealID {
			idx = i
			break
		}
	}

	blocked := idx == -1
	if blocked {
		user.BlockedMeals = append(user.BlockedMeals, mealID)
	} else {
		user.BlockedMeals = append(user.BlockedMeals[:idx], user.BlockedMeals[idx+1:]...)
	}

	if err := s.db.Save(&user).Error; err != nil {
		return false, err
	}
	return blocked, nil
}

// StartPasswordReset stores a short-lived reset code on the user and mails
// it. Callers should respond identically whether or not the email exists.
func (s *UserService) StartPasswordReset(email string) error {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return ErrUserNotFound
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, token)
}

func (s *UserService) ResetPassword(token, newPassword string) error {
	var user models.User
	if err := s.db.First(&user, "reset_token = ?", token).Error; err != nil {
		return errors.New("invalid or expired token")
	}
	if user.ResetToken == "" || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}

// UpdateProfile applies the non-empty fields. A picture arrives as a base64
// data URL and is uploaded to S3; the stored value is the public URL.
func (s *UserService) UpdateProfile(email, name, pictureBase64 string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if name != "" {
		user.Name = name
	}
	if pictureBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(pictureBase64, user.Email)
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = url
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
