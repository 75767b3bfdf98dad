// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import "time"

// Config holds all application configuration loaded from environment variables
// with github.com/caarlos0/env. Range checks that struct tags cannot express
// live in Validate.
type Config struct {
	// ============================================================
	// Server configuration
	// ============================================================
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"3001"`
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"6565"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"word-groups"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Per-client request rate on the REST API. 0 disables limiting.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	// ============================================================
	// Redis configuration
	// ============================================================
	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisMaxRetries   int    `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	RedisRetryDelayMs int    `env:"REDIS_RETRY_DELAY_MS" envDefault:"1000"`

	// ============================================================
	// Authentication
	// ============================================================
	JWTSecret     string        `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"168h"`
	AuthCacheTTL  time.Duration `env:"AUTH_CACHE_TTL" envDefault:"5m"`

	// Wallet addresses must start with this prefix followed by "1".
	WalletAddressPrefix string `env:"WALLET_ADDRESS_PREFIX" envDefault:"cosmos"`

	// ============================================================
	// Game configuration
	// ============================================================
	// MaxLives is the number of wrong guesses allowed per puzzle. 0 disables lives.
	MaxLives        int           `env:"MAX_LIVES" envDefault:"4"`
	PuzzleRetention time.Duration `env:"PUZZLE_RETENTION" envDefault:"168h"`
	DailyTimezone   string        `env:"DAILY_TIMEZONE" envDefault:"UTC"`

	// ============================================================
	// Pipeline and catalog files
	// ============================================================
	ConfigPath        string `env:"CONFIG_PATH" envDefault:"config/pipeline.yaml"`
	RewardCatalogPath string `env:"REWARD_CATALOG_PATH" envDefault:"config/rewards.yaml"`

	// ============================================================
	// Chain gateway. Without a URL rewards are minted by the mock minter.
	// ============================================================
	ChainMintURL     string        `env:"CHAIN_MINT_URL"`
	ChainMintTimeout time.Duration `env:"CHAIN_MINT_TIMEOUT" envDefault:"10s"`

	// ============================================================
	// Telemetry configuration
	// ============================================================
	OtelEnabled     bool   `env:"OTEL_ENABLED" envDefault:"true"`
	OtelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"word-groups"`
	ZipkinEndpoint  string `env:"OTEL_EXPORTER_ZIPKIN_ENDPOINT"`
}
