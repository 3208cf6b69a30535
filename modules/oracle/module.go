// Package oracle wraps the external text-generation provider behind the
// ask-question request-reply service, constrained to one-word answers.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/bfhl-service/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"golang.org/x/sync/singleflight"
)

// Module provides the oracle service.
type Module struct {
	config   Config
	asker    Asker
	sfGroup  singleflight.Group // Collapses identical in-flight questions
	eventBus mono.EventBus
	logger   types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
)

// NewModule creates a new oracle module backed by the Gemini API.
func NewModule(cfg Config, logger types.Logger) *Module {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxQuestionLength <= 0 {
		cfg.MaxQuestionLength = DefaultMaxQuestionLength
	}
	return &Module{
		config: cfg,
		asker:  newGeminiClient(cfg),
		logger: logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "oracle"
}

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.QuestionAnsweredV1.ToBase(),
	}
}

// RegisterServices registers the ask-question service with the service
// container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "ask-question", json.Unmarshal, json.Marshal, m.handleAsk,
	); err != nil {
		return fmt.Errorf("failed to register ask-question service: %w", err)
	}

	m.logger.Info("Registered services", "services", "ask-question")
	return nil
}

// Start initializes the module.
func (m *Module) Start(_ context.Context) error {
	if m.config.APIKey == "" {
		// The service still starts; AI requests fail with an upstream
		// error envelope until a key is configured.
		m.logger.Warn("GEMINI_API_KEY not set, AI operation will return errors")
	}
	m.logger.Info("Oracle module started",
		"model", m.config.Model,
		"timeout", m.config.Timeout)
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Oracle module stopped")
	return nil
}
