// Package stats consumes operation events and tracks in-memory usage
// counters. Counters reset on restart; nothing is persisted.
package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/bfhl-service/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

// Module implements the usage stats consumer module.
type Module struct {
	store  *UsageStore
	logger types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.EventConsumerModule   = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
)

// NewModule creates a new stats module.
func NewModule(logger types.Logger) *Module {
	return &Module{
		store:  NewUsageStore(),
		logger: logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "stats"
}

// RegisterEventConsumers registers handlers for operation events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	completedDef, ok := registry.GetEventByName("OperationCompleted", "v1", "compute")
	if !ok {
		return fmt.Errorf("event OperationCompleted.v1 not found")
	}
	if err := registry.RegisterEventConsumer(completedDef, m.handleOperationCompleted, m); err != nil {
		return fmt.Errorf("failed to register OperationCompleted consumer: %w", err)
	}

	answeredDef, ok := registry.GetEventByName("QuestionAnswered", "v1", "oracle")
	if !ok {
		return fmt.Errorf("event QuestionAnswered.v1 not found")
	}
	if err := registry.RegisterEventConsumer(answeredDef, m.handleQuestionAnswered, m); err != nil {
		return fmt.Errorf("failed to register QuestionAnswered consumer: %w", err)
	}

	m.logger.Info("Registered event consumers",
		"events", []string{"OperationCompleted.v1", "QuestionAnswered.v1"})
	return nil
}

// handleOperationCompleted processes OperationCompleted events.
func (m *Module) handleOperationCompleted(_ context.Context, msg *mono.Msg) error {
	var event events.OperationCompletedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		m.logger.Error("Failed to unmarshal OperationCompleted event", "error", err)
		return nil // Don't retry on unmarshal errors
	}

	m.store.Record(event.Operation, event.CompletedAt)
	m.logger.Debug("Recorded operation",
		"operation", event.Operation,
		"durationMS", event.DurationMS)
	return nil
}

// handleQuestionAnswered processes QuestionAnswered events.
func (m *Module) handleQuestionAnswered(_ context.Context, msg *mono.Msg) error {
	var event events.QuestionAnsweredEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		m.logger.Error("Failed to unmarshal QuestionAnswered event", "error", err)
		return nil
	}

	m.store.Record("AI", event.AnsweredAt)
	m.logger.Debug("Recorded answered question", "durationMS", event.DurationMS)
	return nil
}

// RegisterServices registers the stats services with the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := container.RegisterRequestReplyService("get-usage-summary", m.handleGetSummary); err != nil {
		return fmt.Errorf("failed to register get-usage-summary service: %w", err)
	}

	m.logger.Info("Registered services", "services", "get-usage-summary")
	return nil
}

// handleGetSummary handles get-usage-summary service requests.
func (m *Module) handleGetSummary(_ context.Context, _ *mono.Msg) ([]byte, error) {
	return json.Marshal(m.store.GetSummary())
}

// Start initializes the stats module.
func (m *Module) Start(_ context.Context) error {
	m.logger.Info("Stats module started")
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	summary := m.store.GetSummary()
	m.logger.Info("Stats module stopped", "totalRequests", summary.TotalRequests)
	return nil
}

// Store returns the usage store.
func (m *Module) Store() *UsageStore {
	return m.store
}
