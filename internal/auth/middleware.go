package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/repository"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Staff *domain.StaffMember
	Role  domain.StaffRole
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens *TokenManager
	staff  repository.StaffRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, staff repository.StaffRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, staff: staff}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	if claims.Subject != domain.SubjectTypeStaff {
		return apperrors.NewUnauthorized("unknown subject")
	}

	staff, err := m.staff.GetByID(c.Context(), claims.SubjectID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("staff not found")
		}
		return apperrors.MapError(err)
	}
	if !staff.Active {
		return apperrors.NewUnauthorized("staff inactive")
	}

	c.Locals(principalKey, &Principal{Staff: staff, Role: staff.Role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
