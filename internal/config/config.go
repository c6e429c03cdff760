package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName            string
	AppEnv             string
	AppPort            string
	DatabaseURL        string
	RedisURL           string
	JWTSecret          string
	AdminPasscode      string
	AdminTokenTTL      time.Duration
	RegisterDedupTTL   time.Duration
	RegisterRateMax    int
	RegisterRateWindow time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("JADWAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Jadwal API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("admin.token_ttl", "12h")
	v.SetDefault("register.dedup_ttl", "30s")
	v.SetDefault("register.rate_max", 20)
	v.SetDefault("register.rate_window", "1m")

	tokenTTL, err := time.ParseDuration(v.GetString("admin.token_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid admin token ttl: %w", err)
	}

	dedupTTL, err := time.ParseDuration(v.GetString("register.dedup_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid register dedup ttl: %w", err)
	}

	rateWindow, err := time.ParseDuration(v.GetString("register.rate_window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid register rate window: %w", err)
	}

	cfg := Config{
		AppName:            v.GetString("app.name"),
		AppEnv:             v.GetString("app.env"),
		AppPort:            v.GetString("app.port"),
		DatabaseURL:        v.GetString("database.url"),
		RedisURL:           v.GetString("redis.url"),
		JWTSecret:          v.GetString("jwt.secret"),
		AdminPasscode:      v.GetString("admin.passcode"),
		AdminTokenTTL:      tokenTTL,
		RegisterDedupTTL:   dedupTTL,
		RegisterRateMax:    v.GetInt("register.rate_max"),
		RegisterRateWindow: rateWindow,
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.AdminPasscode == "" {
		return Config{}, fmt.Errorf("admin passcode must be provided")
	}

	if cfg.RegisterRateMax <= 0 {
		cfg.RegisterRateMax = 20
	}

	return cfg, nil
}
