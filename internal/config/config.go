// Package config loads run configuration from the environment and the
// operator's credentials file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/fortuna/rinkside/internal/etl"
)

// Config carries everything a single pipeline run needs.
type Config struct {
	CredentialsPath string
	DBHost          string
	DBPort          string
	DBName          string
	DBSSLMode       string
	APIBaseURL      string
	ExcludedCity    string
	RedisURL        string // empty disables the profile cache
	LogLevel        string
	HTTPTimeout     time.Duration
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		CredentialsPath: getEnv("RINKSIDE_CREDENTIALS", "credentials.csv"),
		DBHost:          getEnv("RINKSIDE_DB_HOST", "localhost"),
		DBPort:          getEnv("RINKSIDE_DB_PORT", "5432"),
		DBName:          getEnv("RINKSIDE_DB_NAME", "nhl"),
		DBSSLMode:       getEnv("RINKSIDE_DB_SSLMODE", "disable"),
		APIBaseURL:      getEnv("RINKSIDE_API_BASE", "https://statsapi.web.nhl.com/api/v1"),
		ExcludedCity:    getEnv("RINKSIDE_EXCLUDED_CITY", "Seattle"),
		RedisURL:        getEnv("RINKSIDE_REDIS_URL", ""),
		LogLevel:        getEnv("RINKSIDE_LOG_LEVEL", "info"),
		HTTPTimeout:     30 * time.Second,
	}
}

// Credentials is the two-field record read from the credentials file.
type Credentials struct {
	User   string
	Secret string
}

// ReadCredentials parses the credentials file: a single line of the form
// "userid, secret". Anything else is a config error and fatal to the run.
func ReadCredentials(path string) (Credentials, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, etl.Wrap(err, etl.KindConfig, "reading credentials file %s", path)
	}

	line := strings.TrimSpace(strings.SplitN(string(content), "\n", 2)[0])
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return Credentials{}, etl.New(etl.KindConfig, "credentials file %s: expected 2 fields, got %d", path, len(fields))
	}

	creds := Credentials{
		User:   strings.TrimSpace(fields[0]),
		Secret: strings.TrimSpace(fields[1]),
	}
	if creds.User == "" || creds.Secret == "" {
		return Credentials{}, etl.New(etl.KindConfig, "credentials file %s: empty field", path)
	}
	return creds, nil
}

// DSN builds the Postgres connection string for the configured database.
func (c *Config) DSN(creds Credentials) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(creds.User), url.QueryEscape(creds.Secret),
		c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
