// Package compute provides the arithmetic core of the service: fibonacci
// sequence generation, prime filtering, and lcm/hcf folding, exposed as
// request-reply services.
package compute

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/bfhl-service/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// Module provides the compute services (core domain).
type Module struct {
	config   Config
	eventBus mono.EventBus
	logger   types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
)

// NewModule creates a new compute module with the given input bounds.
func NewModule(cfg Config, logger types.Logger) *Module {
	if cfg.MaxFibonacciN <= 0 || cfg.MaxFibonacciN > DefaultMaxFibonacciN {
		cfg.MaxFibonacciN = DefaultMaxFibonacciN
	}
	if cfg.MaxArraySize <= 0 {
		cfg.MaxArraySize = DefaultMaxArraySize
	}
	return &Module{
		config: cfg,
		logger: logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "compute"
}

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.OperationCompletedV1.ToBase(),
	}
}

// RegisterServices registers the compute services with the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "fibonacci", json.Unmarshal, json.Marshal, m.handleFibonacci,
	); err != nil {
		return fmt.Errorf("failed to register fibonacci service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "filter-primes", json.Unmarshal, json.Marshal, m.handleFilterPrimes,
	); err != nil {
		return fmt.Errorf("failed to register filter-primes service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "lcm", json.Unmarshal, json.Marshal, m.handleLCM,
	); err != nil {
		return fmt.Errorf("failed to register lcm service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "hcf", json.Unmarshal, json.Marshal, m.handleHCF,
	); err != nil {
		return fmt.Errorf("failed to register hcf service: %w", err)
	}

	m.logger.Info("Registered services",
		"services", "fibonacci, filter-primes, lcm, hcf")
	return nil
}

// Start initializes the module.
func (m *Module) Start(_ context.Context) error {
	m.logger.Info("Compute module started",
		"maxFibonacciN", m.config.MaxFibonacciN,
		"maxArraySize", m.config.MaxArraySize)
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Compute module stopped")
	return nil
}
