package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// sin env seteado caen todos los defaults
	for _, k := range []string{"MONGO_URI", "MONGO_DB", "REDIS_ADDR", "JWT_SECRET", "HTTP_PORT", "ADMIN_CODE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "critique", cfg.MongoDB)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.NotEmpty(t, cfg.AdminCode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGO_DB", "critique_test")
	t.Setenv("HTTP_PORT", "9090")

	cfg := Load()
	assert.Equal(t, "critique_test", cfg.MongoDB)
	assert.Equal(t, "9090", cfg.HTTPPort)
}
