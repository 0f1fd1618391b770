package services

import (
	"errors"
	"strings"

	"github.com/skilllinker/skilllinker/internal/apperrors"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
	UserType     string `json:"user_type"`
	AgreeToTerms bool   `json:"agree_to_terms"`
}

type UpdateUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	var details []apperrors.FieldError

	if strings.TrimSpace(input.FirstName) == "" {
		details = append(details, apperrors.Required("first_name"))
	}

	if strings.TrimSpace(input.LastName) == "" {
		details = append(details, apperrors.Required("last_name"))
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if email == "" {
		details = append(details, apperrors.Required("email"))
	}

	if input.Password == "" {
		details = append(details, apperrors.Required("password"))
	}

	if input.UserType == "" {
		details = append(details, apperrors.Required("user_type"))
	} else if !types.IsValidRole(input.UserType) {
		details = append(details, apperrors.Field("user_type", "user_type must be one of assessor, moderator, sdp, admin"))
	}

	if !input.AgreeToTerms {
		details = append(details, apperrors.Field("agree_to_terms", "you must agree to the terms of service"))
	}

	if len(details) > 0 {
		return nil, apperrors.Validation(details...)
	}

	var existing models.User

	err := s.db.Where("email = ?", email).First(&existing).Error

	if err == nil {
		return nil, apperrors.Validation(apperrors.Field("email", "email already exists"))
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: string(passwordHash),
		Phone:        strings.TrimSpace(input.Phone),
		UserType:     input.UserType,
		AgreeToTerms: input.AgreeToTerms,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate fails with the same error for an unknown email and a wrong
// password, so the response never reveals which one it was.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User

	err := s.db.Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User

	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *UserService) Update(id uint, input UpdateUserInput) (*models.User, error) {
	user, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if input.FirstName != "" {
		updates["first_name"] = strings.TrimSpace(input.FirstName)
	}

	if input.LastName != "" {
		updates["last_name"] = strings.TrimSpace(input.LastName)
	}

	if input.Phone != "" {
		updates["phone"] = strings.TrimSpace(input.Phone)
	}

	if input.Email != "" {
		newEmail := strings.ToLower(strings.TrimSpace(input.Email))

		if newEmail != user.Email {
			var existing models.User

			err := s.db.Where("email = ? AND id != ?", newEmail, user.ID).First(&existing).Error

			if err == nil {
				return nil, apperrors.Validation(apperrors.Field("email", "email already exists"))
			}

			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}

		updates["email"] = newEmail
	}

	if input.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)

		if err != nil {
			return nil, err
		}

		updates["password_hash"] = string(passwordHash)
	}

	if len(updates) == 0 {
		return nil, apperrors.Validation(apperrors.Field("body", "no valid fields to update"))
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(id)
}

// SetVerified is the admin verification action.
func (s *UserService) SetVerified(id uint, verified bool) (*models.User, error) {
	user, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if err := s.db.Model(user).Update("verified", verified).Error; err != nil {
		return nil, err
	}

	user.Verified = verified

	return user, nil
}

func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)

	if err != nil {
		return err
	}

	return s.db.Select("Jobs", "Applications", "Resumes", "SentMessages", "ReceivedMessages").Delete(user).Error
}
