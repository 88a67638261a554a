package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DEFAULT_SESSION", "DEFAULT_COUNTRY_CODE", "SEND_TIMEOUT", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "primary", cfg.DefaultSession)
	assert.Equal(t, "91", cfg.CountryCode)
	assert.Equal(t, 30*time.Second, cfg.SendTimeout)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadSendTimeout(t *testing.T) {
	t.Setenv("SEND_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, Load().SendTimeout)

	t.Setenv("SEND_TIMEOUT", "garbage")
	assert.Equal(t, 30*time.Second, Load().SendTimeout)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://admin.example.com, https://staging.example.com ,")

	cfg := Load()

	assert.Equal(t, []string{"https://admin.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
}
