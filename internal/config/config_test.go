package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-tracker/internal/constants"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "disk", cfg.BlobBackend)
	assert.Equal(t, constants.TokenTTL, cfg.TokenTTL)
	assert.False(t, cfg.IsProduction())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("BLOB_BACKEND", "s3")
	t.Setenv("S3_USE_PATH_STYLE", "false")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_SECRET", "prod-secret")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "s3", cfg.BlobBackend)
	assert.False(t, cfg.S3UsePathStyle)
	assert.True(t, cfg.IsProduction())
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")

	cfg := Load()

	assert.Equal(t, constants.TokenTTL, cfg.TokenTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }},
		{"unknown backend", func(c *Config) { c.BlobBackend = "ftp" }},
		{"empty upload dir", func(c *Config) { c.UploadDir = "" }},
		{"empty bucket", func(c *Config) { c.BlobBackend = "s3"; c.S3Bucket = "" }},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }},
		{"default secret in release", func(c *Config) { c.GinMode = "release" }},
		{"non-positive ttl", func(c *Config) { c.TokenTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
