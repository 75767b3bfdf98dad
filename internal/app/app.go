// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-word-groups/internal/bootstrap"
	"github.com/AccelByte/extend-word-groups/internal/config"
	"github.com/AccelByte/extend-word-groups/internal/server"
	"github.com/AccelByte/extend-word-groups/pkg/account"
	"github.com/AccelByte/extend-word-groups/pkg/auth"
	"github.com/AccelByte/extend-word-groups/pkg/game"
	"github.com/AccelByte/extend-word-groups/pkg/handler"
	"github.com/AccelByte/extend-word-groups/pkg/leaderboard"
	"github.com/AccelByte/extend-word-groups/pkg/pipeline"
	"github.com/AccelByte/extend-word-groups/pkg/puzzle"
	"github.com/AccelByte/extend-word-groups/pkg/service"
	"github.com/AccelByte/extend-word-groups/pkg/shop"
	"github.com/AccelByte/extend-word-groups/pkg/state"
	"github.com/cenkalti/backoff/v4"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	actionBuiltin "github.com/AccelByte/extend-word-groups/pkg/action/builtin"
)

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	httpServer        *server.HTTPServer
	grpcServer        *server.GRPCServer
	metricsServer     *server.MetricsServer
	redisClient       *redis.Client
	shutdownTelemetry func(context.Context) error
}

// stores are the Redis-backed collections shared by the services.
type stores struct {
	accounts    *service.RedisAccountStore
	puzzles     *service.RedisPuzzleStore
	progress    *service.RedisProgressStore
	leaderboard *service.RedisLeaderboard
	rewards     *service.RedisRewardStore
	daily       *service.RedisDailyTracker
}

// New creates and initializes a new application instance.
//
// Components are initialized in dependency order:
//  1. Redis
//  2. Stores and the reward catalog
//  3. Achievement pipeline (signal, rule, action)
//  4. Domain services
//  5. Servers (HTTP, gRPC health, metrics)
//  6. Telemetry
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	if err := app.initRedis(ctx); err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}

	st := app.initStores()

	catalog, err := service.LoadRewardCatalog(cfg.RewardCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load reward catalog from %s: %w", cfg.RewardCatalogPath, err)
	}
	logrus.Infof("loaded %d rewards from %s", len(catalog), cfg.RewardCatalogPath)

	manager, err := app.initPipeline(st)
	if err != nil {
		return nil, err
	}

	services, resolver, err := app.initServices(ctx, st, catalog, manager)
	if err != nil {
		return nil, err
	}

	app.httpServer = server.NewHTTPServer(server.HTTPConfig{
		Port:           cfg.HTTPPort,
		ServiceName:    cfg.ServiceName,
		Environment:    cfg.Environment,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, handler.New(services), resolver)
	if err := app.httpServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup HTTP server: %w", err)
	}

	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort, service.NewHealthChecker(app.redisClient))
	if err := app.grpcServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, "/metrics")
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	if cfg.OtelEnabled {
		shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.OtelServiceName, cfg.Environment, cfg.ZipkinEndpoint, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to setup telemetry: %w", err)
		}
		app.shutdownTelemetry = shutdownTelemetry
	}

	logrus.Info("application initialized successfully")

	return app, nil
}

// initRedis connects to Redis, retrying with exponential backoff.
func (a *App) initRedis(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:         a.cfg.RedisHost + ":" + a.cfg.RedisPort,
		Password:     a.cfg.RedisPassword,
		DB:           a.cfg.RedisDB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(a.cfg.RedisRetryDelayMs) * time.Millisecond
	maxRetries := backoff.WithMaxRetries(backoff.WithContext(b, ctx), uint64(a.cfg.RedisMaxRetries))

	err := backoff.Retry(
		func() error {
			_, err := client.Ping(ctx).Result()
			if err != nil {
				logrus.Warnf("Redis connection failed: %v, retrying...", err)
				return err
			}
			return nil
		},
		maxRetries,
	)

	if err != nil {
		_ = client.Close()
		return err
	}

	a.redisClient = client
	logrus.Infof("Redis client initialized (%s:%s db %d)", a.cfg.RedisHost, a.cfg.RedisPort, a.cfg.RedisDB)
	return nil
}

func (a *App) initStores() *stores {
	return &stores{
		accounts:    service.NewRedisAccountStore(a.redisClient),
		puzzles:     service.NewRedisPuzzleStore(a.redisClient, service.RedisPuzzleStoreConfig{Retention: a.cfg.PuzzleRetention}),
		progress:    service.NewRedisProgressStore(a.redisClient),
		leaderboard: service.NewRedisLeaderboard(a.redisClient),
		rewards:     service.NewRedisRewardStore(a.redisClient),
		daily:       service.NewRedisDailyTracker(a.redisClient),
	}
}

// initPipeline builds signal processor, rule engine and action executor from
// the pipeline file and checks that every enabled entry was registered.
func (a *App) initPipeline(st *stores) (*pipeline.Manager, error) {
	pipelineConfig, err := pipeline.LoadConfig(a.cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline config from %s: %w", a.cfg.ConfigPath, err)
	}
	logrus.Infof("loaded pipeline configuration from %s", a.cfg.ConfigPath)

	processor := bootstrap.InitSignalProcessor(st.accounts, st.progress, st.daily)

	ruleEngine, ruleRegistry, err := bootstrap.InitRuleEngine(pipelineConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to init rule engine: %w", err)
	}

	actionExecutor, actionRegistry, err := bootstrap.InitActionExecutor(pipelineConfig, &actionBuiltin.Dependencies{
		Accounts: st.accounts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init action executor: %w", err)
	}

	manager := bootstrap.InitPipeline(processor, ruleEngine, actionExecutor, pipelineConfig)

	if err := pipeline.ValidateWiring(ruleRegistry, actionRegistry, pipelineConfig); err != nil {
		return nil, fmt.Errorf("pipeline wiring validation failed: %w", err)
	}
	logrus.Info("pipeline wiring validation passed")

	return manager, nil
}

func (a *App) initServices(ctx context.Context, st *stores, catalog []state.Reward, events pipeline.Publisher) (handler.Services, *auth.Resolver, error) {
	tokens, err := auth.NewTokenIssuer(a.cfg.JWTSecret, a.cfg.JWTExpiration)
	if err != nil {
		return handler.Services{}, nil, fmt.Errorf("failed to init token issuer: %w", err)
	}

	var sessions *auth.SessionCache
	if a.cfg.AuthCacheTTL > 0 {
		sessions = auth.NewSessionCache(a.cfg.AuthCacheTTL)
	}
	resolver := auth.NewResolver(tokens, sessions)

	generator, err := puzzle.NewGenerator(puzzle.DefaultCategories)
	if err != nil {
		return handler.Services{}, nil, fmt.Errorf("failed to init puzzle generator: %w", err)
	}

	location := a.cfg.Location()

	accounts := account.NewService(st.accounts, tokens, service.NewPrefixWalletVerifier(a.cfg.WalletAddressPrefix), events)

	games := game.NewService(game.Dependencies{
		Puzzles:     st.puzzles,
		Progress:    st.progress,
		Leaderboard: st.leaderboard,
		Daily:       st.daily,
		Generator:   generator,
		Accounts:    accounts,
		Events:      events,
	}, game.Config{MaxLives: a.cfg.MaxLives, Location: location})

	shopService := shop.NewService(shop.Dependencies{
		Rewards:  st.rewards,
		Accounts: st.accounts,
		Puzzles:  st.puzzles,
		Progress: st.progress,
		Minter:   a.initMinter(),
		Events:   events,
	}, shop.Config{Catalog: catalog, Location: location})

	seeded, err := shopService.SeedIfEmpty(ctx)
	if err != nil {
		return handler.Services{}, nil, fmt.Errorf("failed to seed reward catalog: %w", err)
	}
	if seeded > 0 {
		logrus.Infof("seeded %d rewards", seeded)
	}

	return handler.Services{
		Accounts:    accounts,
		Games:       games,
		Shop:        shopService,
		Leaderboard: leaderboard.NewService(st.leaderboard, st.accounts),
		Health:      service.NewHealthChecker(a.redisClient),
	}, resolver, nil
}

// initMinter talks to the chain gateway when one is configured.
func (a *App) initMinter() service.Minter {
	if a.cfg.ChainMintURL == "" {
		logrus.Warn("CHAIN_MINT_URL not set, on-chain rewards use the mock minter")
		return service.NewMockMinter()
	}
	return service.NewHTTPMinter(service.HTTPMinterConfig{
		Endpoint: a.cfg.ChainMintURL,
		Timeout:  a.cfg.ChainMintTimeout,
	})
}
