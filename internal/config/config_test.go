package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "INR", cfg.DefaultCurrency)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 5*time.Minute, cfg.HoursStale)
	assert.Equal(t, time.Hour, cfg.HoursExpire)
	assert.Equal(t, time.Hour, cfg.DaysStale)
	assert.Equal(t, 24*time.Hour, cfg.DaysExpire)
}

func TestFromEnv_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_ProductionForcesSecureCookie(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "a-real-secret")
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.CookieSecure)
}

func TestFromEnv_InvalidCurrency(t *testing.T) {
	t.Setenv("DEFAULT_CURRENCY", "EUR")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_StaleLongerThanExpire(t *testing.T) {
	t.Setenv("CACHE_HOURS_STALE", "2h")
	t.Setenv("CACHE_HOURS_EXPIRE", "1h")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_CORSList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
