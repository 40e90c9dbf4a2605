package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedError bool
		errorContains string
		check         func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env: map[string]string{
				"BACKEND_BASE_URL": "http://backend:3000/api/",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://backend:3000/api", cfg.Backend.BaseURL)
				assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 100, cfg.Server.RateLimitPerMinute)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
				assert.Equal(t, ".admin-session", cfg.Session.TokenPath)
				assert.Equal(t, 10*time.Second, cfg.Notifications.TTL)
				assert.Equal(t, 2*time.Minute, cfg.Notifications.DeleteConfirmationTTL)
				assert.Equal(t, "@every 30s", cfg.Scheduler.HousekeepingCron)
				assert.Empty(t, cfg.Scheduler.CatalogRefreshCron)
				assert.False(t, cfg.ActivityLogEnabled())
			},
		},
		{
			name:          "missing backend url",
			env:           map[string]string{},
			expectedError: true,
			errorContains: "BACKEND_BASE_URL is required",
		},
		{
			name: "invalid timeout",
			env: map[string]string{
				"BACKEND_BASE_URL": "http://backend",
				"BACKEND_TIMEOUT":  "soon",
			},
			expectedError: true,
			errorContains: "invalid BACKEND_TIMEOUT",
		},
		{
			name: "invalid port",
			env: map[string]string{
				"BACKEND_BASE_URL": "http://backend",
				"SERVER_PORT":      "eighty",
			},
			expectedError: true,
			errorContains: "invalid SERVER_PORT",
		},
		{
			name: "origins parsed",
			env: map[string]string{
				"BACKEND_BASE_URL":     "http://backend",
				"CORS_ALLOWED_ORIGINS": " http://a.test, ,http://b.test ",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
			},
		},
		{
			name: "activity log database",
			env: map[string]string{
				"BACKEND_BASE_URL": "http://backend",
				"DB_HOST":          "db",
				"DB_USER":          "admin",
				"DB_PASSWORD":      "secret",
				"DB_NAME":          "console",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.ActivityLogEnabled())
				assert.Equal(t, 3306, cfg.Database.Port)
				assert.Equal(t, "admin:secret@tcp(db:3306)/console?parseTime=true&charset=utf8mb4", cfg.DSN())
			},
		},
		{
			name: "database without user",
			env: map[string]string{
				"BACKEND_BASE_URL": "http://backend",
				"DB_HOST":          "db",
				"DB_NAME":          "console",
			},
			expectedError: true,
			errorContains: "DB_USER is required",
		},
	}

	keys := []string{
		"BACKEND_BASE_URL", "BACKEND_TIMEOUT", "SERVER_PORT", "RATE_LIMIT_PER_MINUTE", "LOG_LEVEL",
		"CORS_ALLOWED_ORIGINS", "SESSION_TOKEN_PATH", "NOTIFICATION_TTL", "DELETE_CONFIRMATION_TTL",
		"CATALOG_REFRESH_CRON", "HOUSEKEEPING_CRON", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range keys {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
