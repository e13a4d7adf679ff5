package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/pkg/auth"
	"github.com/shuttle-hr/internal/pkg/errors"
	"github.com/shuttle-hr/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	localUserID = "user_id"
	localRole   = "role"
)

// RequireAuth проверяет Bearer токен и кладет user_id и role в locals
func RequireAuth(verifier *auth.Verifier, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			logger.Debug("Rejected bearer token", zap.Error(err))
			return utils.SendError(c, errors.ErrUnauthorized.WithMessage("Invalid or expired token"))
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localRole, strings.ToUpper(claims.Role))
		return c.Next()
	}
}

// RequireRole пропускает только перечисленные роли. Ставится после RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[Role(c)]; !ok {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

// RequireAdmin - HR или master admin
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleHRAdmin, domain.RoleMasterAdmin)
}

// UserID returns the authenticated user id, or 0 outside RequireAuth.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localUserID).(int64)
	return id
}

// Role returns the authenticated role, or "" outside RequireAuth.
func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(localRole).(string)
	return role
}
