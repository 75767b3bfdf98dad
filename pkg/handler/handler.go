// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/AccelByte/extend-word-groups/pkg/account"
	"github.com/AccelByte/extend-word-groups/pkg/auth"
	"github.com/AccelByte/extend-word-groups/pkg/common"
	"github.com/AccelByte/extend-word-groups/pkg/game"
	"github.com/AccelByte/extend-word-groups/pkg/leaderboard"
	"github.com/AccelByte/extend-word-groups/pkg/service"
	"github.com/AccelByte/extend-word-groups/pkg/shop"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// Handler serves the REST API.
type Handler struct {
	accounts    *account.Service
	games       *game.Service
	shop        *shop.Service
	leaderboard *leaderboard.Service
	health      HealthChecker
}

type Services struct {
	Accounts    *account.Service
	Games       *game.Service
	Shop        *shop.Service
	Leaderboard *leaderboard.Service
	Health      HealthChecker
}

func New(services Services) *Handler {
	return &Handler{
		accounts:    services.Accounts,
		games:       services.Games,
		shop:        services.Shop,
		leaderboard: services.Leaderboard,
		health:      services.Health,
	}
}

// RegisterRoutes mounts every route under /api. Identity must already be resolved
// by the Identity middleware.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/health", h.Health)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.POST("/wallet-connect", h.WalletConnect)
	authGroup.GET("/profile", RequireAuth(), h.Profile)

	games := api.Group("/games")
	games.GET("/new", h.NewGame)
	games.GET("/daily", h.DailyChallenge)
	games.POST("/guess", h.SubmitGuess)
	games.GET("/stats", h.GameStats)

	progress := api.Group("/progress")
	progress.GET("/active", h.ActiveGames)
	progress.GET("/stats", h.PlayerStats)
	progress.POST("/:puzzleId/reset", h.ResetGame)

	users := api.Group("/users")
	users.GET("/progression", h.Progression)
	users.GET("/inventory", RequireAuth(), h.Inventory)
	users.POST("/items/use", RequireAuth(), h.UseItem)

	rewards := api.Group("/rewards")
	rewards.GET("", h.ListRewards)
	rewards.POST("/init", h.InitRewards)
	rewards.POST("/purchase", RequireAuth(), h.PurchaseReward)
	rewards.POST("/claim", RequireAuth(), h.ClaimReward)
	rewards.GET("/:id", h.GetReward)

	board := api.Group("/leaderboard")
	board.GET("/global", h.GlobalLeaderboard)
	board.GET("/rank", h.PlayerRank)
}

func (h *Handler) Health(c *gin.Context) {
	if h.health != nil {
		if err := h.health.Check(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Server is running", "redis": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Server is running", "redis": "ok"})
}

// statusFor maps a service error to an HTTP status. Level gates and balance
// checks are reported as bad requests with their message.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error. Unclassified errors are logged and hidden from the client.
func fail(c *gin.Context, scope *common.Scope, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		scope.TraceError(err)
		scope.Log.Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(code, gin.H{"message": "An unexpected error occurred"})
		return
	}

	var serviceErr *service.Error
	message := err.Error()
	if errors.As(err, &serviceErr) {
		message = serviceErr.Message
	}
	scope.Log.Debugf("%s %s rejected: %s", c.Request.Method, c.FullPath(), message)
	c.JSON(code, gin.H{"message": message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func identityOf(c *gin.Context) auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(auth.Identity); ok {
			return identity
		}
	}
	logrus.Warn("request reached a handler without a resolved identity")
	return auth.Identity{PlayerID: auth.AnonymousPlayer}
}
