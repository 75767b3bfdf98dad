// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		HTTPPort:            3001,
		GRPCPort:            6565,
		MetricsPort:         8080,
		LogLevel:            "info",
		RateLimitRPS:        20,
		RateLimitBurst:      40,
		JWTSecret:           "secret",
		JWTExpiration:       168 * time.Hour,
		MaxLives:            4,
		PuzzleRetention:     168 * time.Hour,
		DailyTimezone:       "UTC",
		WalletAddressPrefix: "cosmos",
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPPort != 3001 || cfg.MaxLives != 4 || cfg.DailyTimezone != "UTC" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when JWT_SECRET is missing")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad http port", func(c *Config) { c.HTTPPort = 0 }, "HTTP_PORT"},
		{"blank secret", func(c *Config) { c.JWTSecret = "  " }, "JWT_SECRET"},
		{"negative lives", func(c *Config) { c.MaxLives = -1 }, "MAX_LIVES"},
		{"lives disabled", func(c *Config) { c.MaxLives = 0 }, ""},
		{"short retention", func(c *Config) { c.PuzzleRetention = 0 }, "PUZZLE_RETENTION"},
		{"bad timezone", func(c *Config) { c.DailyTimezone = "Mars/Olympus" }, "DAILY_TIMEZONE"},
		{"burst missing", func(c *Config) { c.RateLimitBurst = 0 }, "RATE_LIMIT_BURST"},
		{"limiter off", func(c *Config) { c.RateLimitRPS = 0; c.RateLimitBurst = 0 }, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, expected to mention %s", err, tt.wantErr)
			}
		})
	}
}
