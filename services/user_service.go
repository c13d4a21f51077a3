package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"resort-admin/models"
	"resort-admin/utils"
)

type UserService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{DB: db, Log: log}
}

type CreateUserInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	return users, nil
}

func (s *UserService) exists(ctx context.Context, column, value string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.User{}).Where(column+" = ?", value).Count(&count).Error
	return count > 0, err
}

// duplicateMessage names the first unique field already taken by another user.
func (s *UserService) duplicateMessage(ctx context.Context, username, email string) (string, error) {
	taken, err := s.exists(ctx, "username", username)
	if err != nil {
		return "", err
	}
	if taken {
		return "Username already exists", nil
	}
	taken, err = s.exists(ctx, "email", email)
	if err != nil {
		return "", err
	}
	if taken {
		return "Email already exists", nil
	}
	return "", nil
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	msg, err := s.duplicateMessage(ctx, in.Username, in.Email)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	if msg != "" {
		return nil, utils.NewValidationError(msg)
	}

	role, err := models.ParseUserRole(in.Role)
	if err != nil {
		return nil, utils.NewValidationError(fmt.Sprintf("Invalid role: %s", in.Role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}

	user := models.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Role:      role,
		IsActive:  true,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			// lost a race with a concurrent create
			if msg, lookupErr := s.duplicateMessage(ctx, in.Username, in.Email); lookupErr == nil && msg != "" {
				return nil, utils.NewValidationError(msg)
			}
		}
		return nil, utils.NewStorageError(err)
	}

	s.Log.Info("user created",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)
	return &user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id uint, rawRole string) (*models.User, error) {
	user, err := findByID[models.User](ctx, s.DB, id, "User not found")
	if err != nil {
		return nil, err
	}

	role, err := models.ParseUserRole(rawRole)
	if err != nil {
		return nil, utils.NewValidationError(fmt.Sprintf("Invalid role: %s", rawRole))
	}

	if err := s.DB.WithContext(ctx).Model(user).Update("role", role).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	user.Role = role

	s.Log.Info("user role updated", zap.Uint("user_id", user.ID), zap.String("role", string(role)))
	return user, nil
}

// Delete removes the user row outright; users have no soft delete.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := findByID[models.User](ctx, s.DB, id, "User not found")
	if err != nil {
		return err
	}

	res := s.DB.WithContext(ctx).Delete(&models.User{}, user.ID)
	if res.Error != nil {
		return utils.NewStorageError(res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NewNotFoundError("User not found")
	}

	s.Log.Info("user deleted", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return nil
}

// Roles lists every assignable role.
func (s *UserService) Roles() []models.UserRole {
	return append([]models.UserRole(nil), models.UserRoles...)
}
