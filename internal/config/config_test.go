package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WEATHER_CONFIG_FILE", "OPENWEATHER_API_KEY", "VITE_OPENWEATHER_API_KEY",
		"OPENWEATHER_BASE_URL", "HTTP_TIMEOUT", "PORT", "LOG_LEVEL", "LOG_FORMAT",
		"FORECAST_TIMEZONE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	var cfgErr *weather.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENWEATHER_API_KEY", "k")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("unexpected logging defaults %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ForecastZone != time.Local {
		t.Errorf("expected Local forecast zone, got %v", cfg.ForecastZone)
	}
	if cfg.OpenWeatherBaseURL != "" {
		t.Errorf("expected empty base URL to defer to the provider default, got %q", cfg.OpenWeatherBaseURL)
	}
}

func TestLoadFallbackKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_OPENWEATHER_API_KEY", "vite-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "vite-key" {
		t.Fatalf("expected fallback key, got %q", cfg.OpenWeatherAPIKey)
	}
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "weather.toml")
	content := `
[server]
port = "9090"
read_timeout_seconds = 3

[provider]
api_key = "from-file"
base_url = "http://localhost:1234"
timeout_seconds = 4

[logging]
level = "debug"
format = "console"

[forecast]
timezone = "UTC"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WEATHER_CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("HTTP_TIMEOUT", "2500ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "from-file" {
		t.Errorf("expected key from file, got %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.Port != "7070" {
		t.Errorf("expected env port to win, got %q", cfg.Port)
	}
	if cfg.HTTPTimeout != 2500*time.Millisecond {
		t.Errorf("expected env timeout to win, got %v", cfg.HTTPTimeout)
	}
	if cfg.ReadTimeout != 3*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Errorf("unexpected server timeouts %v/%v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.OpenWeatherBaseURL != "http://localhost:1234" {
		t.Errorf("unexpected base URL %q", cfg.OpenWeatherBaseURL)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "console" {
		t.Errorf("unexpected logging %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ForecastZone.String() != "UTC" {
		t.Errorf("expected UTC zone, got %v", cfg.ForecastZone)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"timeout":  {"HTTP_TIMEOUT", "soon"},
		"zero":     {"HTTP_TIMEOUT", "0s"},
		"format":   {"LOG_FORMAT", "xml"},
		"timezone": {"FORECAST_TIMEZONE", "Mars/Olympus_Mons"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("OPENWEATHER_API_KEY", "k")
			t.Setenv(kv[0], kv[1])

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", kv[0], kv[1])
			}
		})
	}
}

func TestGetenvDurationAcceptsSeconds(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "15")
	d, err := getenvDuration("SOME_TIMEOUT", time.Second)
	if err != nil || d != 15*time.Second {
		t.Fatalf("expected 15s, got %v (%v)", d, err)
	}
}
