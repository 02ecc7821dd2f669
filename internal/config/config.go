// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the site service.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	// IP geolocation endpoints; %s is replaced with the visitor IP.
	GeoPrimaryURL  string
	GeoFallbackURL string

	SessionTTLHours        int
	CacheWarmIntervalHours int

	// Object storage is optional as a group: when Endpoint is empty the
	// upload endpoint is disabled and everything else still works.
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3PublicBaseURL string
	S3UseSSL        bool
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("SITE_PORT")
	if port == "" {
		port = "8080"
	}

	sessionTTL, err := positiveIntEnv("SESSION_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}

	warmInterval, err := positiveIntEnv("CACHE_WARM_INTERVAL_HOURS", 1)
	if err != nil {
		return nil, err
	}

	primary := os.Getenv("GEO_PRIMARY_URL")
	if primary == "" {
		primary = "https://ipapi.co/%s/json/"
	}
	fallback := os.Getenv("GEO_FALLBACK_URL")
	if fallback == "" {
		fallback = "https://ipwho.is/%s"
	}

	s3Endpoint := os.Getenv("S3_ENDPOINT")
	if s3Endpoint != "" {
		for _, key := range []string{"S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_PUBLIC_BASE_URL"} {
			if os.Getenv(key) == "" {
				return nil, fmt.Errorf("%s is required when S3_ENDPOINT is set", key)
			}
		}
	}

	return &Config{
		Port:                   port,
		DatabaseURL:            dbURL,
		RedisURL:               redisURL,
		GeoPrimaryURL:          primary,
		GeoFallbackURL:         fallback,
		SessionTTLHours:        sessionTTL,
		CacheWarmIntervalHours: warmInterval,
		S3Endpoint:             s3Endpoint,
		S3AccessKey:            os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:            os.Getenv("S3_SECRET_KEY"),
		S3Bucket:               os.Getenv("S3_BUCKET"),
		S3PublicBaseURL:        os.Getenv("S3_PUBLIC_BASE_URL"),
		S3UseSSL:               os.Getenv("S3_USE_SSL") != "false",
	}, nil
}

func positiveIntEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, s)
	}
	return v, nil
}
