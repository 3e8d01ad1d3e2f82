// Package api exposes the connectivity checks over a small HTTP interface.
// Every check request runs the probe sequence on demand; nothing is stored
// between requests.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"checkconnect/internal/configuration"
	"checkconnect/internal/helper"
)

type Server struct {
	router     *gin.Engine
	server     *http.Server
	cfg        configuration.Config
	configPath string
}

func NewServer(props ServerProperties, cfg configuration.Config, configPath string) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(accessLogger())

	s := &Server{
		router:     router,
		cfg:        cfg,
		configPath: configPath,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", props.Bind, props.Port),
			Handler:      router.Handler(),
			ReadTimeout:  props.ReadTimeout,
			WriteTimeout: props.WriteTimeout,
			IdleTimeout:  props.IdleTimeout,
		},
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.HealthCheckHandler)

	v1 := s.router.Group("/api/v1")
	v1.GET("/check", s.RunChecksHandler)
	v1.GET("/config", s.GetConfigHandler)
	v1.PUT("/config", s.UpdateConfigHandler)
}

func (s *Server) Start() error {
	log.Info().Str("address", s.server.Addr).Msg("Starting api server")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start api server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown() {
	log.Info().Msg("Stopping API server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error stopping API server")
	}

	log.Info().Msg("API server stopped successfully")
}

func accessLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := helper.RequestID()
		start := time.Now()

		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	}
}
