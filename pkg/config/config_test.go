package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "8080")
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("TRANSLATE_API_KEY", "translate-key")
	os.Setenv("USERNAME_CACHE_TTL", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "translate-key", cfg.TranslateAPIKey)
	assert.Equal(t, 90*time.Second, cfg.UsernameCacheTTL)

	// Cleanup
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_PASSWORD")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("REDIS_PORT")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("TRANSLATE_API_KEY")
	os.Unsetenv("USERNAME_CACHE_TTL")
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("USERNAME_CACHE_TTL")
	os.Unsetenv("RATE_LIMIT_PER_MINUTE")
	os.Unsetenv("S3_POST_IMAGES_BUCKET")
	os.Unsetenv("S3_AVATARS_BUCKET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 5*time.Minute, cfg.UsernameCacheTTL)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.Equal(t, "post-images", cfg.PostImagesBucket)
	assert.Equal(t, "avatars", cfg.AvatarsBucket)
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	os.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	os.Setenv("USERNAME_CACHE_TTL", "soon")
	defer os.Unsetenv("RATE_LIMIT_PER_MINUTE")
	defer os.Unsetenv("USERNAME_CACHE_TTL")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.Equal(t, 5*time.Minute, cfg.UsernameCacheTTL)
}
