package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URL", "PORT", "REDIS_URL", "ANALYTICS_CACHE_TTL", "ANALYTICS_SOURCE", "LEGACY_API_URL",
		"JWT_SECRET", "CORS_ALLOWED_ORIGINS", "CONTEXT_TIMEOUT", "EMAIL_PROVIDER",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("GO_ENV", "production")
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{"JWT_SECRET": "s"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, AnalyticsSourcePostgres, cfg.AnalyticsSource)
				assert.Equal(t, 5*time.Minute, cfg.AnalyticsCacheTTL)
				assert.Equal(t, 5*time.Second, cfg.ContextTimeout)
				assert.Empty(t, cfg.CORSAllowedOrigins)
			},
		},
		{
			name: "explicit values",
			env: map[string]string{
				"JWT_SECRET":           "s",
				"PORT":                 "9000",
				"ANALYTICS_SOURCE":     "Legacy",
				"LEGACY_API_URL":       "https://legacy.test/api",
				"ANALYTICS_CACHE_TTL":  "30s",
				"CORS_ALLOWED_ORIGINS": "https://a.test, https://b.test,,",
				"EMAIL_PROVIDER":       "SES",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9000", cfg.Port)
				assert.Equal(t, AnalyticsSourceLegacy, cfg.AnalyticsSource)
				assert.Equal(t, 30*time.Second, cfg.AnalyticsCacheTTL)
				assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
				assert.Equal(t, "ses", cfg.EmailProvider)
			},
		},
		{"legacy without url", map[string]string{"JWT_SECRET": "s", "ANALYTICS_SOURCE": "legacy"}, "LEGACY_API_URL", nil},
		{"unknown source", map[string]string{"JWT_SECRET": "s", "ANALYTICS_SOURCE": "mongo"}, "ANALYTICS_SOURCE", nil},
		{"bad duration", map[string]string{"JWT_SECRET": "s", "CONTEXT_TIMEOUT": "soon"}, "CONTEXT_TIMEOUT", nil},
		{"missing secret in production", map[string]string{}, "JWT_SECRET", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			cfg, err := Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
