package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kenod/invoice-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":              "",
		"PORT":                 "",
		"CURRENCY_CODE":        "",
		"CORS_ALLOWED_ORIGINS": "",
		"OBS_LOG_FORMAT":       "",
		"OBS_ENABLE_TRACING":   "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "CZK", cfg.CurrencyCode)
	require.Empty(t, cfg.CORSAllowedOrigins)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "invoice", cfg.MetricsNamespace)
	require.True(t, cfg.MetricsEnabled)
	require.False(t, cfg.TracingEnabled)
	require.InDelta(t, 1.0, cfg.TracingSamplingRatio, 1e-9)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":                    "production",
		"PORT":                       "9090",
		"CURRENCY_CODE":              "EUR",
		"CORS_ALLOWED_ORIGINS":       "https://a.example, https://b.example",
		"OBS_ENABLE_PROMETHEUS":      "off",
		"OBS_ENABLE_TRACING":         "true",
		"OBS_TRACING_SAMPLING_RATIO": "0.25",
		"SHUTDOWN_TIMEOUT":           "3s",
	})
	require.NoError(t, err)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, "EUR", cfg.CurrencyCode)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.False(t, cfg.MetricsEnabled)
	require.True(t, cfg.TracingEnabled)
	require.InDelta(t, 0.25, cfg.TracingSamplingRatio, 1e-9)
	require.Equal(t, "3s", cfg.ShutdownTimeout.String())
}
