package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/config"
	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/repository"
)

// AuthService coordinates staff login flows.
type AuthService struct {
	staff      repository.StaffRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, staffRepo repository.StaffRepository) *AuthService {
	return &AuthService{
		staff:      staffRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// LoginStaff authenticates staff and returns a role-bearing token.
func (s *AuthService) LoginStaff(ctx context.Context, email, password string) (*domain.StaffMember, string, time.Time, error) {
	staff, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if !staff.Active {
		return nil, "", time.Time{}, errors.New("staff inactive")
	}
	if err := auth.ComparePassword(staff.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(staff.ID, staff.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return staff, token, exp, nil
}

// ChangePassword rotates a staff member's password after verifying the
// current one.
func (s *AuthService) ChangePassword(ctx context.Context, staffID, currentPassword, newPassword string) error {
	staff, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(staff.PasswordHash, currentPassword); err != nil {
		return errors.New("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.staff.UpdatePassword(ctx, staffID, hash)
}
