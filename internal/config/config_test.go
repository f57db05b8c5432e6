package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// isolate runs the test in an empty directory so no stray .env is read.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{"DB_PATH", "STORAGE_DRIVER", "STATIC_PATH", "LOG_LEVEL", "LOG_FORMAT", "JWT_SECRET", "ADMIN_PASSWORD", "TIMEZONE", "PORT", "SYNC_INTERVAL"} {
		t.Setenv(key, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, time.Duration(0), cfg.Storage.SyncInterval)
	assert.Len(t, cfg.Auth.JWTSecret, 64, "a random secret is generated when none is set")
	assert.Empty(t, cfg.Auth.AdminPassword, "there is no built-in admin password")
}

func TestGeneratePassword(t *testing.T) {
	p1, err := GeneratePassword()
	require.NoError(t, err)
	p2, err := GeneratePassword()
	require.NoError(t, err)

	assert.Len(t, p1, 24)
	assert.NotEqual(t, p1, p2)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "billtracker.yaml")
	writeFile(t, path, `
server:
  port: 9090
storage:
  driver: file
  path: /var/lib/billtracker
  sync_interval: 30s
log:
  level: debug
  format: json
rates:
  to_base:
    MVR: "0.07"
timezone: Indian/Maldives
`)
	t.Setenv("PORT", "7070")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port, "env overrides the file")
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/billtracker", cfg.Storage.Path)
	assert.Equal(t, 30*time.Second, cfg.Storage.SyncInterval)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)

	rates, err := cfg.CalculatorRates()
	require.NoError(t, err)
	assert.True(t, rates.ToBase[models.CurrencyMVR].Equal(decimal.RequireFromString("0.07")))

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Indian/Maldives", loc.String())
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "DB_PATH=/tmp/from-dotenv.db\n")
	// godotenv never overrides variables that are already set, and Setenv
	// with an empty value counts as set, so unset it for this test.
	os.Unsetenv("DB_PATH")
	t.Cleanup(func() { os.Unsetenv("DB_PATH") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.Storage.Path)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad driver", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"bad port", map[string]string{"PORT": "eighty"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{"bad interval", map[string]string{"SYNC_INTERVAL": "often"}},
		{"short admin password", map[string]string{"ADMIN_PASSWORD": "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestCalculatorRatesRejectsNonPositive(t *testing.T) {
	cfg := Default()
	cfg.Rates.ToBase["MVR"] = "0"
	_, err := cfg.CalculatorRates()
	assert.Error(t, err)
}

func TestCalculatorRatesRequiresEveryCurrency(t *testing.T) {
	cfg := Default()
	cfg.Rates = RatesConfig{Base: "MVR"}
	_, err := cfg.CalculatorRates()
	assert.ErrorContains(t, err, "no rate from USD to MVR")

	cfg.Rates.ToBase = map[string]string{"usd": "15.42"}
	rates, err := cfg.CalculatorRates()
	require.NoError(t, err)
	assert.Equal(t, models.CurrencyMVR, rates.Base)
	assert.True(t, rates.ToBase[models.CurrencyUSD].Equal(decimal.RequireFromString("15.42")))
	assert.True(t, rates.ToBase[models.CurrencyMVR].Equal(decimal.NewFromInt(1)))
}

func TestLoadRejectsMissingRate(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "billtracker.yaml")
	writeFile(t, path, "rates:\n  base: MVR\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "warn", "error", ""} {
		_, err := ParseLevel(name)
		assert.NoError(t, err, name)
	}
}
