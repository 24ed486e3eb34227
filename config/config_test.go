package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://app.example.com")
	t.Setenv("ENV", "development")
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "traveldb", cfg.MongoDB)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigin)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.MailConfigured())
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("MONGODB_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestAddrAlreadyPrefixed(t *testing.T) {
	cfg := Config{Port: ":5000"}
	assert.Equal(t, ":5000", cfg.Addr())
}

func TestMailConfigured(t *testing.T) {
	cfg := Config{EmailUser: "u@x.com", EmailPass: "p"}
	assert.True(t, cfg.MailConfigured())
}
