// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from environment variables.
// It attempts to load from .env file first (for local development),
// then parses environment variables into the Config struct.
func Load() (*Config, error) {
	// In production (Docker/K8s), environment variables are injected directly
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	} else {
		logrus.Infof("loaded environment variables from .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}

// Validate performs custom validation on the configuration.
func (c *Config) Validate() error {
	ports := map[string]int{
		"HTTP_PORT":    c.HTTPPort,
		"GRPC_PORT":    c.GRPCPort,
		"METRICS_PORT": c.MetricsPort,
	}
	for name, port := range ports {
		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid %s: %d (must be 1-65535)", name, port)
		}
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive")
	}
	if c.AuthCacheTTL < 0 {
		return fmt.Errorf("AUTH_CACHE_TTL must be non-negative")
	}

	if c.MaxLives < 0 {
		return fmt.Errorf("MAX_LIVES must be non-negative, got %d", c.MaxLives)
	}
	if c.PuzzleRetention < time.Hour {
		return fmt.Errorf("PUZZLE_RETENTION must be at least 1h, got %s", c.PuzzleRetention)
	}
	if _, err := time.LoadLocation(c.DailyTimezone); err != nil {
		return fmt.Errorf("invalid DAILY_TIMEZONE %q: %w", c.DailyTimezone, err)
	}

	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be non-negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst == 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}

	if c.WalletAddressPrefix == "" {
		return fmt.Errorf("WALLET_ADDRESS_PREFIX is required")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}

	return nil
}

// Location returns the timezone that decides the daily puzzle's date.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DailyTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
