package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 5, cfg.LLM.QuestionCount)
	assert.Equal(t, 200, cfg.LLM.QuestionMaxTokens)
	assert.InDelta(t, 0.7, cfg.LLM.QuestionTemperature, 0.0001)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "memory", cfg.Session.LockBackend)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("LLM_QUESTION_COUNT", "3")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SESSION_LOCK_BACKEND", "redis")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 3, cfg.LLM.QuestionCount)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "redis", cfg.Session.LockBackend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "LLM_API_KEY")
}

func TestValidate_RejectsUnknownBackends(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "sqlite"
	cfg.Session.LockBackend = "etcd"
	assert.Error(t, cfg.Validate())
}
