package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
)

// StatsPort defines the interface for reading usage stats.
type StatsPort interface {
	GetSummary(ctx context.Context) (*Summary, error)
}

// statsAdapter implements StatsPort using the service container.
type statsAdapter struct {
	container mono.ServiceContainer
}

// NewStatsAdapter creates a new adapter for the stats service.
func NewStatsAdapter(container mono.ServiceContainer) StatsPort {
	return &statsAdapter{
		container: container,
	}
}

// GetSummary fetches the aggregate usage counters.
func (a *statsAdapter) GetSummary(ctx context.Context) (*Summary, error) {
	client, err := a.container.GetRequestReplyService("get-usage-summary")
	if err != nil {
		return nil, fmt.Errorf("failed to get get-usage-summary service: %w", err)
	}

	resp, err := client.Call(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("get-usage-summary call failed: %w", err)
	}

	var summary Summary
	if err := json.Unmarshal(resp.Data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &summary, nil
}
