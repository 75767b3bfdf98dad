// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/auth"
	"github.com/AccelByte/extend-word-groups/pkg/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPConfig configures the REST server.
type HTTPConfig struct {
	Port           int
	ServiceName    string
	Environment    string
	RateLimitRPS   float64
	RateLimitBurst int
}

// HTTPServer serves the REST API.
type HTTPServer struct {
	server   *http.Server
	config   HTTPConfig
	handler  *handler.Handler
	resolver *auth.Resolver
}

// NewHTTPServer creates a new REST server instance.
func NewHTTPServer(config HTTPConfig, h *handler.Handler, resolver *auth.Resolver) *HTTPServer {
	return &HTTPServer{
		config:   config,
		handler:  h,
		resolver: resolver,
	}
}

// Setup builds the gin engine and its middleware chain.
func (s *HTTPServer) Setup() error {
	if s.config.Environment != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), handler.RequestLogger())
	if s.config.RateLimitRPS > 0 {
		engine.Use(handler.NewRateLimiter(s.config.RateLimitRPS, s.config.RateLimitBurst).Middleware())
		logrus.Infof("rate limiting enabled: %.1f req/s, burst %d", s.config.RateLimitRPS, s.config.RateLimitBurst)
	}
	engine.Use(handler.Identity(s.resolver))

	s.handler.RegisterRoutes(engine)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           otelhttp.NewHandler(engine, s.config.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Start begins serving the REST API.
func (s *HTTPServer) Start(ctx context.Context) error {
	go func() {
		logrus.Infof("HTTP server listening on port %d", s.config.Port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down HTTP server...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("HTTP server stopped")
	return nil
}
