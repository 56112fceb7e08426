package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpersFallBackToDefaults(t *testing.T) {
	t.Setenv("THRIVELOG_TEST_INT", "not-a-number")
	t.Setenv("THRIVELOG_TEST_DURATION", "soon")
	t.Setenv("THRIVELOG_TEST_BOOL", "maybe")

	assert.Equal(t, 7, envInt("THRIVELOG_TEST_INT", 7))
	assert.Equal(t, time.Minute, envDuration("THRIVELOG_TEST_DURATION", time.Minute))
	assert.True(t, envBool("THRIVELOG_TEST_BOOL", true))
	assert.Equal(t, "x", envString("THRIVELOG_TEST_MISSING", "x"))
}

func TestEnvHelpersParseValues(t *testing.T) {
	t.Setenv("THRIVELOG_TEST_INT", "42")
	t.Setenv("THRIVELOG_TEST_DURATION", "90s")
	t.Setenv("THRIVELOG_TEST_BOOL", "false")

	assert.Equal(t, 42, envInt("THRIVELOG_TEST_INT", 7))
	assert.Equal(t, 90*time.Second, envDuration("THRIVELOG_TEST_DURATION", time.Minute))
	assert.False(t, envBool("THRIVELOG_TEST_BOOL", true))
}

func TestSanitizedDropsSecrets(t *testing.T) {
	cfg := &Config{
		AppName:           "Thrivelog",
		JWTSecret:         "secret",
		Auth0ClientSecret: "auth0-secret",
		GeminiAPIKey:      "key",
		RedisPassword:     "pw",
		DBConnection:      "postgres://user:pw@host/db",
	}

	s := cfg.Sanitized()
	assert.Equal(t, "Thrivelog", s.AppName)
	assert.Empty(t, s.JWTSecret)
	assert.Empty(t, s.Auth0ClientSecret)
	assert.Empty(t, s.GeminiAPIKey)
	assert.Empty(t, s.RedisPassword)
	assert.Empty(t, s.DBConnection)
}

func TestFeatureToggles(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.Auth0Enabled())
	assert.False(t, cfg.AIEnabled())

	cfg.Auth0Domain, cfg.Auth0ClientID, cfg.Auth0ClientSecret = "tenant.auth0.com", "id", "secret"
	cfg.GeminiAPIKey = "key"
	assert.True(t, cfg.Auth0Enabled())
	assert.True(t, cfg.AIEnabled())
}
