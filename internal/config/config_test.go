package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI())
	assert.Equal(t, "files_manager", cfg.DBName)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "/tmp/files_manager", cfg.FolderPath)
	assert.Equal(t, "local", cfg.Storage)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "27018")
	t.Setenv("FOLDER_PATH", "/var/lib/cabinet")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("S3_BUCKET_NAME", "cabinet-blobs")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "mongodb://db.internal:27018", cfg.MongoURI())
	assert.Equal(t, "/var/lib/cabinet", cfg.FolderPath)
	assert.Equal(t, "s3", cfg.Storage)
	assert.Equal(t, "cabinet-blobs", cfg.S3.BucketName)
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("CABINET_TEST_KEY", "set")

	assert.Equal(t, "set", getEnv("CABINET_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("CABINET_TEST_MISSING", "fallback"))
}
