package user

import (
	"context"

	userRepo "venuely/database/repository/user"
	"venuely/models"
)

// AuthService handles dashboard sign-in and token lifecycle.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	GetByID(id string) (*models.User, error)
	UpdateFCMToken(id, token string) error
	SeedAdmin() error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo userRepo.UserRepository
}
