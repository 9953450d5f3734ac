package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SLOT_STEP_MINUTES", "")
	t.Setenv("BOOKING_LEAD_MINUTES", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("REDIS_URL", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 30, cfg.SlotStepMinutes)
	assert.Equal(t, 60, cfg.BookingLeadMinutes)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SLOT_STEP_MINUTES", "15")
	t.Setenv("BOOKING_LEAD_MINUTES", "bogus")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 15, cfg.SlotStepMinutes)
	assert.Equal(t, 60, cfg.BookingLeadMinutes, "invalid values fall back to the default")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}
