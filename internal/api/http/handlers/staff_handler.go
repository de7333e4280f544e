package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/registration-service/internal/api/dto"
	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/service"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// StaffHandler manages staff authentication endpoints.
type StaffHandler struct {
	authService *service.AuthService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(authService *service.AuthService) *StaffHandler {
	return &StaffHandler{authService: authService}
}

// Login POST /auth/staff/login.
func (h *StaffHandler) Login(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	staff, token, expiresAt, err := h.authService.LoginStaff(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	return c.JSON(fiber.Map{"data": dto.StaffLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Staff: dto.StaffInfo{
			ID:    staff.ID,
			Name:  staff.Name,
			Email: staff.Email,
			Role:  string(staff.Role),
		},
	}})
}

// ChangePassword POST /auth/password/change.
func (h *StaffHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Staff == nil {
		return apperrors.NewUnauthorized("staff required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current_password and new_password required", nil)
	}

	if err := h.authService.ChangePassword(c.UserContext(), principal.Staff.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "password changed"}})
}
