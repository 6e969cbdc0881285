package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr       string
	CORSOrigin string
	// Content origin: "dir", "git" or "bucket"
	Origin     string
	ContentDir string
	Watch      bool
	GitDir     string
	GitRef     string
	// MinIO Configuration
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	// Redis - empty disables the shared content cache
	RedisURL   string
	ContentTTL time.Duration
	// Meilisearch - empty URL disables it, search falls back to a scan
	MeiliURL       string
	MeiliMasterKey string
}

func Load() Config {
	return Config{
		Addr:           getenv("ALMANAC_ADDR", ":8707"),
		CORSOrigin:     getenv("ALMANAC_CORS_ORIGIN", "*"),
		Origin:         getenv("ALMANAC_ORIGIN", "dir"),
		ContentDir:     getenv("ALMANAC_DIR", "./data/kb"),
		Watch:          getenvBool("ALMANAC_WATCH", true),
		GitDir:         getenv("ALMANAC_GIT_DIR", "./data/content.git"),
		GitRef:         getenv("ALMANAC_GIT_REF", "main"),
		MinioEndpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", "almanac"),
		MinioUseSSL:    getenvBool("MINIO_USE_SSL", false),
		RedisURL:       getenv("REDIS_URL", ""),
		ContentTTL:     time.Duration(getenvInt("ALMANAC_CONTENT_TTL_SECONDS", 3600)) * time.Second,
		MeiliURL:       getenv("MEILI_URL", ""),
		MeiliMasterKey: getenv("MEILI_MASTER_KEY", ""),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
