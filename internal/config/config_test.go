package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "secret-token")
	t.Setenv("NOTION_DATABASE_ID", "db-1")
	t.Setenv("GROQ_API_KEY", "groq-key")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Quiz.CacheTTL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	assert.Equal(t, "secret-token", cfg.Notion.Token)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("QUIZ_CACHE_TTL", "90s")
	t.Setenv("GROQ_MODEL", "mixtral-8x7b")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Quiz.CacheTTL)
	assert.Equal(t, "mixtral-8x7b", cfg.Groq.Model)
}

func TestLoadConfigMissingCredentials(t *testing.T) {
	setRequired(t)
	t.Setenv("NOTION_TOKEN", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsZeroTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("QUIZ_CACHE_TTL", "0s")

	_, err := LoadConfig()
	assert.Error(t, err)
}
