// Package api is the driving adapter: a Fiber HTTP server exposing the
// health check and the multiplexed /bfhl endpoint.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/example/bfhl-service/modules/compute"
	"github.com/example/bfhl-service/modules/oracle"
	"github.com/example/bfhl-service/modules/stats"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
)

// APIModule exposes the REST endpoints using Fiber.
type APIModule struct {
	app           *fiber.App
	computePort   compute.ComputePort
	oraclePort    oracle.OraclePort
	statsPort     stats.StatsPort
	port          string
	officialEmail string
	logger        types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*APIModule)(nil)
	_ mono.DependentModule       = (*APIModule)(nil)
	_ mono.HealthCheckableModule = (*APIModule)(nil)
)

// NewModule creates a new APIModule.
func NewModule(cfg Config, logger types.Logger) *APIModule {
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.OfficialEmail == "" {
		cfg.OfficialEmail = DefaultOfficialEmail
	}
	return &APIModule{
		port:          cfg.Port,
		officialEmail: cfg.OfficialEmail,
		logger:        logger,
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"compute", "oracle", "stats"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "compute":
		m.computePort = compute.NewComputeAdapter(container)
	case "oracle":
		m.oraclePort = oracle.NewOracleAdapter(container)
	case "stats":
		m.statsPort = stats.NewStatsAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.computePort == nil || m.oraclePort == nil || m.statsPort == nil {
		return fmt.Errorf("module dependencies not set")
	}

	m.setupApp()

	// Start server in goroutine
	go func() {
		if err := m.app.Listen(":" + m.port); err != nil {
			m.logger.Error("HTTP server error", "error", err)
		}
	}()

	m.logger.Info("HTTP server started", "port", m.port)
	return nil
}

// setupApp builds the Fiber application with middleware and routes.
func (m *APIModule) setupApp() {
	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          m.errorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(m.requestLogger())

	m.setupRoutes()
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	m.logger.Info("Shutting down HTTP server")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// errorHandler converts Fiber routing errors (404, 405, body-size limits)
// into the standard envelope so every response the client sees is valid JSON.
func (m *APIModule) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	msg := "Internal server error"
	switch code {
	case fiber.StatusNotFound:
		msg = "Endpoint not found"
	case fiber.StatusMethodNotAllowed:
		msg = "Method not allowed"
	}

	return m.fail(c, code, msg)
}

// requestLogger returns a middleware logging one line per request with a
// correlation ID.
func (m *APIModule) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()
		c.Set("X-Request-ID", requestID)

		started := time.Now()
		err := c.Next()

		m.logger.Info("Request handled",
			"requestID", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"durationMS", time.Since(started).Milliseconds())
		return err
	}
}
