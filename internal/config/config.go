package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yukikurage/task-tracker/internal/constants"
)

// DefaultJWTSecret is only meant for local development.
const DefaultJWTSecret = "default-secret-key-change-me"

type Config struct {
	Port       string
	GinMode    string
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	TokenTTL   time.Duration
	LogLevel   string
	LogFormat  string

	BlobBackend    string
	UploadDir      string
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "tasks.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "taskuser"),
		DBPassword: getEnv("DB_PASSWORD", "taskpassword"),
		DBName:     getEnv("DB_NAME", "task_tracker"),
		JWTSecret:  getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:   getEnvDuration("TOKEN_TTL", constants.TokenTTL),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),

		BlobBackend:    getEnv("BLOB_BACKEND", "disk"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		S3Bucket:       getEnv("S3_BUCKET", "task-files"),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3UsePathStyle: getEnvBool("S3_USE_PATH_STYLE", true),
	}
}

// IsProduction reports whether cookies must be marked Secure.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// Validate checks the combinations Load cannot reject on its own.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.BlobBackend {
	case "disk":
		if c.UploadDir == "" {
			return errors.New("UPLOAD_DIR is required for the disk blob backend")
		}
	case "s3":
		if c.S3Bucket == "" {
			return errors.New("S3_BUCKET is required for the s3 blob backend")
		}
	default:
		return fmt.Errorf("unsupported BLOB_BACKEND %q", c.BlobBackend)
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.IsProduction() && c.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set in release mode")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
