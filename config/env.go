// Package config reads service configuration from the environment,
// with a .env file loaded once on top of the real environment (real
// variables win). Every knob has a development-friendly default so the
// service boots with no configuration at all: sqlite on disk, local
// file storage, no Redis.
package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Load reads the optional .env file. Missing files are fine; existing
// environment variables are never overwritten. Safe to call more than
// once.
func Load() {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// Get returns the value of key, or fallback when unset or empty.
func Get(key, fallback string) string {
	Load()
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt returns the integer value of key, or fallback when unset or
// not a valid integer.
func GetInt(key string, fallback int) int {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// AppPort is the HTTP listen port.
func AppPort() string { return Get("APP_PORT", "8080") }

// AppEnv is the runtime environment: "development" or "production".
// It selects the log format, nothing else.
func AppEnv() string { return Get("APP_ENV", "development") }

// DatabaseDriver selects the record store driver:
// sqlite (default), postgres, mysql or sqlserver.
func DatabaseDriver() string { return Get("DB_DRIVER", "sqlite") }

// DatabaseDSN is the driver-specific connection string. The sqlite
// default keeps the store in a local file.
func DatabaseDSN() string { return Get("DB_DSN", "pos.db") }

// StorageDisk selects the blob store driver: "local" or "s3".
func StorageDisk() string { return Get("STORAGE_DISK", "local") }

// StorageLocalRoot is the directory the local driver writes under.
func StorageLocalRoot() string { return Get("STORAGE_LOCAL_ROOT", "storage") }

// StorageURL is the public base URL blobs are served from when using
// the local driver.
func StorageURL() string { return Get("STORAGE_URL", "http://localhost:8080/storage") }

func StorageS3Bucket() string   { return Get("S3_BUCKET", "") }
func StorageS3Region() string   { return Get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { return Get("S3_KEY", "") }
func StorageS3Secret() string   { return Get("S3_SECRET", "") }
func StorageS3Endpoint() string { return Get("S3_ENDPOINT", "") }
func StorageS3URL() string      { return Get("S3_URL", "") }

// UploadBucket is the key prefix (or bucket folder) product images are
// stored under.
func UploadBucket() string { return Get("UPLOAD_BUCKET", "product_images") }

// RedisAddr is the Redis host:port backing the rate limiter. Empty
// disables Redis entirely.
func RedisAddr() string { return Get("REDIS_ADDR", "") }

// RedisPassword is the Redis auth password, if any.
func RedisPassword() string { return Get("REDIS_PASSWORD", "") }
