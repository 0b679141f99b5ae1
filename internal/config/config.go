// Package config loads process configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultJWTExpirationMillis is 24 hours, matching the token lifetime the
// frontend expects between logins.
const defaultJWTExpirationMillis = 86400000

// Config carries every runtime setting. It is built once in main and passed
// down explicitly; nothing below main reads the environment.
type Config struct {
	AppPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret string
	// JWTExpiration is the token TTL, configured in milliseconds via
	// JWT_EXPIRATION and applied uniformly to all issued tokens.
	JWTExpiration time.Duration

	TranslationFolder string
	TrustedProxies    []string
	RunMigrations     bool
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort: getEnv("APP_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "taskmaster"),
		DBPassword: getEnv("DB_PASSWORD", "taskmaster"),
		DBName:     getEnv("DB_NAME", "taskmaster"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: jwtExpiration(os.Getenv("JWT_EXPIRATION")),

		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		RunMigrations:     os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// jwtExpiration parses a millisecond count; bad or missing values fall back
// to the default rather than issuing never-expiring tokens.
func jwtExpiration(raw string) time.Duration {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms <= 0 {
		ms = defaultJWTExpirationMillis
	}
	return time.Duration(ms) * time.Millisecond
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
