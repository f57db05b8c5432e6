// Package config loads runtime settings for the bill tracker.
//
// Settings are layered: built-in defaults, then an optional .env file, then
// an optional YAML file, then environment variables. Later layers win.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jay4webdev/Bill-Tracker/internal/auth"
	"github.com/jay4webdev/Bill-Tracker/internal/calculator"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

// Config holds every setting the server and CLI need.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
	Rates   RatesConfig   `yaml:"rates"`

	// Timezone is the IANA zone used to decide what "today" is.
	Timezone string `yaml:"timezone"`
}

type ServerConfig struct {
	Port       int    `yaml:"port"`
	StaticPath string `yaml:"static_path"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	// Path is the SQLite file for the sqlite driver and the data directory
	// for the file driver.
	Path string `yaml:"path"`
	// SyncInterval enables periodic reloads from a shared backend. Zero
	// disables them.
	SyncInterval time.Duration `yaml:"sync_interval"`
}

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenTTL      time.Duration `yaml:"token_ttl"`
	AdminUsername string        `yaml:"admin_username"`
	// AdminPassword is used only when the admin account is first seeded.
	// Empty means a random one is generated at that point.
	AdminPassword string `yaml:"admin_password"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" | "json"
}

// RatesConfig lists conversion rates into Base as decimal strings.
type RatesConfig struct {
	Base   string            `yaml:"base"`
	ToBase map[string]string `yaml:"to_base"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       8080,
			StaticPath: "./frontend/static",
		},
		Storage: StorageConfig{
			Driver: DriverSQLite,
			Path:   "./data/bills.db",
		},
		Auth: AuthConfig{
			TokenTTL:      24 * time.Hour,
			AdminUsername: "admin",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Rates: RatesConfig{
			Base:   string(models.CurrencyUSD),
			ToBase: map[string]string{string(models.CurrencyMVR): "0.065"},
		},
		Timezone: "UTC",
	}
}

// Load builds a Config. path names an optional YAML file; an empty path
// skips that layer. A .env file in the working directory is read if present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Warn("No JWT secret configured. Generating a random one; sessions will not survive a restart.")
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		cfg.Auth.JWTSecret = hex.EncodeToString(secret)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("DB_PATH", &c.Storage.Path)
	setString("STORAGE_DRIVER", &c.Storage.Driver)
	setString("STATIC_PATH", &c.Server.StaticPath)
	setString("LOG_LEVEL", &c.Log.Level)
	setString("LOG_FORMAT", &c.Log.Format)
	setString("JWT_SECRET", &c.Auth.JWTSecret)
	setString("ADMIN_PASSWORD", &c.Auth.AdminPassword)
	setString("TIMEZONE", &c.Timezone)

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("SYNC_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SYNC_INTERVAL %q: %w", v, err)
		}
		c.Storage.SyncInterval = d
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Server.Port)
	}
	switch c.Storage.Driver {
	case DriverSQLite, DriverFile:
	default:
		return fmt.Errorf("unknown storage driver %q: must be %q or %q", c.Storage.Driver, DriverSQLite, DriverFile)
	}
	if c.Storage.Path == "" {
		return errors.New("storage path is required")
	}
	if c.Storage.SyncInterval < 0 {
		return errors.New("storage sync_interval must not be negative")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth token_ttl must be positive")
	}
	if strings.TrimSpace(c.Auth.AdminUsername) == "" {
		return errors.New("auth admin_username is required")
	}
	if c.Auth.AdminPassword != "" && len(c.Auth.AdminPassword) < auth.MinPasswordLength {
		return fmt.Errorf("auth admin_password must be at least %d characters", auth.MinPasswordLength)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q: must be text or json", c.Log.Format)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.CalculatorRates(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// CalculatorRates converts the configured rates for the dashboard. Every
// bill currency needs a rate into the base.
func (c *Config) CalculatorRates() (calculator.Rates, error) {
	base := models.Currency(strings.ToUpper(c.Rates.Base))
	rates := calculator.Rates{
		Base:   base,
		ToBase: map[models.Currency]decimal.Decimal{base: decimal.NewFromInt(1)},
	}
	for code, raw := range c.Rates.ToBase {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return calculator.Rates{}, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		if !rate.IsPositive() {
			return calculator.Rates{}, fmt.Errorf("rate for %s must be positive", code)
		}
		rates.ToBase[models.Currency(strings.ToUpper(code))] = rate
	}
	for _, c := range models.Currencies() {
		if _, ok := rates.ToBase[c]; !ok {
			return calculator.Rates{}, fmt.Errorf("no rate from %s to %s", c, base)
		}
	}
	return rates, nil
}

// GeneratePassword returns a random password for a freshly seeded admin
// account.
func GeneratePassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
