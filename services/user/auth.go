package user

import (
	"context"
	"errors"
	"fmt"

	"venuely/apperr"
	"venuely/config"
	userRepo "venuely/database/repository/user"
	"venuely/models"
	"venuely/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and issues an admin access token. The
// same error is returned for an unknown email and a wrong password.
func (s *DefaultAuthService) Authenticate(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, apperr.AuthError{Message: "invalid email or password"}
		}
		return nil, apperr.PersistenceError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.AuthError{Message: "invalid email or password"}
	}

	token, err := utils.GenerateToken(usr.ID, usr.Role, utils.AdminTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.LoginResponse{Token: token, User: usr}, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	if err := utils.RevokeToken(ctx, utils.HashToken(token), utils.AdminTokenTTL); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// GetByID returns the account behind a token subject.
func (s *DefaultAuthService) GetByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, apperr.NotFoundError{Resource: "user", Ref: id}
		}
		return nil, apperr.PersistenceError{Err: err}
	}
	return usr, nil
}

// UpdateFCMToken registers the admin's device token for booking pushes.
func (s *DefaultAuthService) UpdateFCMToken(id, token string) error {
	usr, err := s.GetByID(id)
	if err != nil {
		return err
	}
	usr.FCMToken = token
	if err := s.Repo.Update(usr); err != nil {
		return apperr.PersistenceError{Err: err}
	}
	return nil
}

// SeedAdmin creates the configured admin account when the users collection
// is empty, so a fresh deployment can sign in.
func (s *DefaultAuthService) SeedAdmin() error {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	n, err := s.Repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.Repo.Create(admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	utils.GetLogger().Sugar().Infof("seeded admin account %s", admin.Email)
	return nil
}
