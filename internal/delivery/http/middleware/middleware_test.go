package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shuttle-hr/internal/delivery/http/middleware"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	secret = "middleware-secret"
	issuer = "shuttle-hr-test"
)

func signToken(t *testing.T, userID int64, role, key string) string {
	t.Helper()
	claims := auth.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func newApp() *fiber.App {
	app := fiber.New()
	verifier := auth.NewVerifier(secret, issuer)

	app.Get("/whoami", middleware.RequireAuth(verifier, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": middleware.UserID(c),
			"role":    middleware.Role(c),
		})
	})
	app.Get("/admin", middleware.RequireAuth(verifier, zap.NewNop()), middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func request(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireAuth(t *testing.T) {
	app := newApp()

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"no header", "", fiber.StatusUnauthorized},
		{"wrong key", signToken(t, 7, domain.RoleEmployee, "other"), fiber.StatusUnauthorized},
		{"missing user id", signToken(t, 0, domain.RoleEmployee, secret), fiber.StatusUnauthorized},
		{"valid", signToken(t, 7, domain.RoleEmployee, secret), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, request(t, app, "/whoami", tt.token))
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	app := newApp()

	assert.Equal(t, fiber.StatusForbidden, request(t, app, "/admin", signToken(t, 7, domain.RoleEmployee, secret)))
	assert.Equal(t, fiber.StatusNoContent, request(t, app, "/admin", signToken(t, 1, domain.RoleHRAdmin, secret)))
	// роль в токене приводится к верхнему регистру
	assert.Equal(t, fiber.StatusNoContent, request(t, app, "/admin", signToken(t, 1, "master_admin", secret)))
}

func TestRecovery(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.Recovery(zap.NewNop()))
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestCORS_Wildcard(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.CORS(""))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://hr.example.com")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
