// Package config provides configuration for the admin console
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the admin console
type Config struct {
	Backend       BackendConfig
	Database      DatabaseConfig
	Server        ServerConfig
	Logging       LoggingConfig
	CORS          CORSConfig
	Session       SessionConfig
	Notifications NotificationsConfig
	Scheduler     SchedulerConfig
}

// BackendConfig holds settings of the LMS REST backend the console talks to
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DatabaseConfig holds activity log database settings.
// The activity log is disabled when Host is empty.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig holds settings of the persisted administrator session
type SessionConfig struct {
	TokenPath string
}

// NotificationsConfig holds settings of transient notifications and delete confirmations
type NotificationsConfig struct {
	TTL                   time.Duration
	DeleteConfirmationTTL time.Duration
}

// SchedulerConfig holds housekeeping scheduler settings
type SchedulerConfig struct {
	// CatalogRefreshCron is an optional cron expression for background catalog reloads
	CatalogRefreshCron string
	HousekeepingCron   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Backend configuration
	backendURL := os.Getenv("BACKEND_BASE_URL")
	if backendURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}
	cfg.Backend.BaseURL = strings.TrimRight(backendURL, "/")

	timeout, err := getDuration("BACKEND_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	cfg.Backend.Timeout = timeout

	// Server configuration
	serverPort, err := getInt("SERVER_PORT", "8080")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port = serverPort

	rateLimit, err := getInt("RATE_LIMIT_PER_MINUTE", "100")
	if err != nil {
		return nil, err
	}
	cfg.Server.RateLimitPerMinute = rateLimit

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Session configuration
	tokenPath := os.Getenv("SESSION_TOKEN_PATH")
	if tokenPath == "" {
		tokenPath = ".admin-session"
	}
	cfg.Session.TokenPath = tokenPath

	// Notifications configuration
	notificationTTL, err := getDuration("NOTIFICATION_TTL", "10s")
	if err != nil {
		return nil, err
	}
	cfg.Notifications.TTL = notificationTTL

	confirmationTTL, err := getDuration("DELETE_CONFIRMATION_TTL", "2m")
	if err != nil {
		return nil, err
	}
	cfg.Notifications.DeleteConfirmationTTL = confirmationTTL

	// Scheduler configuration
	cfg.Scheduler.CatalogRefreshCron = os.Getenv("CATALOG_REFRESH_CRON") // optional
	housekeeping := os.Getenv("HOUSEKEEPING_CRON")
	if housekeeping == "" {
		housekeeping = "@every 30s"
	}
	cfg.Scheduler.HousekeepingCron = housekeeping

	// Database configuration (optional, for the activity log)
	cfg.Database.Host = os.Getenv("DB_HOST")
	if cfg.Database.Host != "" {
		dbPort, err := getInt("DB_PORT", "3306")
		if err != nil {
			return nil, err
		}
		cfg.Database.Port = dbPort

		cfg.Database.User = os.Getenv("DB_USER")
		if cfg.Database.User == "" {
			return nil, fmt.Errorf("DB_USER is required when DB_HOST is set")
		}
		cfg.Database.Password = os.Getenv("DB_PASSWORD")
		cfg.Database.DBName = os.Getenv("DB_NAME")
		if cfg.Database.DBName == "" {
			return nil, fmt.Errorf("DB_NAME is required when DB_HOST is set")
		}
	}

	return cfg, nil
}

// ActivityLogEnabled reports whether the activity log database is configured
func (c *Config) ActivityLogEnabled() bool {
	return c.Database.Host != ""
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// parseOrigins parses comma-separated origins, defaulting to allow all
func parseOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getInt(key, defaultValue string) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getDuration(key, defaultValue string) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
