package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 100, cfg.Proximity.DefaultLimit)
	assert.Equal(t, 500, cfg.Proximity.MaxLimit)
	assert.Equal(t, 300*time.Second, cfg.Cache.ActivePlanTTL)
	assert.Equal(t, 5*time.Second, cfg.Worker.StreamReadTimeout)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.NoError(t, cfg.ValidateAPI())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NEARBY_MAX_LIMIT", "50")
	t.Setenv("API_PORT", "9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Proximity.MaxLimit)
	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
}

func TestValidateAPI(t *testing.T) {
	cfg := &Config{}
	cfg.Upload.MaxBytes = 1024
	assert.Error(t, cfg.ValidateAPI())

	cfg.Auth.JWTSecret = "s"
	assert.NoError(t, cfg.ValidateAPI())

	cfg.Upload.MaxBytes = 0
	assert.Error(t, cfg.ValidateAPI())
}
