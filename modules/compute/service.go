package compute

import (
	"context"
	"fmt"
	"time"

	"github.com/example/bfhl-service/events"
	"github.com/go-monolith/mono"
)

// handleFibonacci handles the fibonacci request-reply service.
func (m *Module) handleFibonacci(_ context.Context, req FibonacciRequest, _ *mono.Msg) (FibonacciResponse, error) {
	started := time.Now()

	if req.N < 0 {
		return FibonacciResponse{Error: "fibonacci requires a non-negative integer"}, nil
	}
	if req.N > int64(m.config.MaxFibonacciN) {
		return FibonacciResponse{
			Error: fmt.Sprintf("fibonacci N must be <= %d", m.config.MaxFibonacciN),
		}, nil
	}

	seq := fibonacci(int(req.N))
	m.publishCompleted("fibonacci", int(req.N), started)
	return FibonacciResponse{Sequence: seq}, nil
}

// handleFilterPrimes handles the filter-primes request-reply service.
// An empty input array is valid and yields an empty result.
func (m *Module) handleFilterPrimes(_ context.Context, req FilterPrimesRequest, _ *mono.Msg) (FilterPrimesResponse, error) {
	started := time.Now()

	if len(req.Numbers) > m.config.MaxArraySize {
		return FilterPrimesResponse{
			Error: fmt.Sprintf("array size must be <= %d", m.config.MaxArraySize),
		}, nil
	}

	primes := filterPrimes(req.Numbers)
	m.publishCompleted("prime", len(req.Numbers), started)
	return FilterPrimesResponse{Primes: primes}, nil
}

// handleLCM handles the lcm request-reply service.
func (m *Module) handleLCM(_ context.Context, req FoldRequest, _ *mono.Msg) (FoldResponse, error) {
	started := time.Now()

	if msg := m.checkFoldInput(req.Numbers); msg != "" {
		return FoldResponse{Error: msg}, nil
	}

	result, err := foldLCM(req.Numbers)
	if err != nil {
		return FoldResponse{Error: "lcm result exceeds integer range"}, nil
	}

	m.publishCompleted("lcm", len(req.Numbers), started)
	return FoldResponse{Result: result}, nil
}

// handleHCF handles the hcf request-reply service.
func (m *Module) handleHCF(_ context.Context, req FoldRequest, _ *mono.Msg) (FoldResponse, error) {
	started := time.Now()

	if msg := m.checkFoldInput(req.Numbers); msg != "" {
		return FoldResponse{Error: msg}, nil
	}

	m.publishCompleted("hcf", len(req.Numbers), started)
	return FoldResponse{Result: foldHCF(req.Numbers)}, nil
}

// checkFoldInput validates the shared lcm/hcf input contract: non-empty,
// bounded length, positive elements only. Returns an error message or "".
func (m *Module) checkFoldInput(nums []int64) string {
	if len(nums) == 0 {
		return "requires a non-empty array"
	}
	if len(nums) > m.config.MaxArraySize {
		return fmt.Sprintf("array size must be <= %d", m.config.MaxArraySize)
	}
	for _, n := range nums {
		if n <= 0 {
			return "array must contain positive integers only"
		}
	}
	return ""
}

// publishCompleted emits an OperationCompleted event. Publishing is
// best-effort and never fails the operation.
func (m *Module) publishCompleted(operation string, inputSize int, started time.Time) {
	if m.eventBus == nil {
		return
	}
	event := events.OperationCompletedEvent{
		Operation:   operation,
		InputSize:   inputSize,
		DurationMS:  time.Since(started).Milliseconds(),
		CompletedAt: time.Now(),
	}
	if err := events.OperationCompletedV1.Publish(m.eventBus, event, nil); err != nil {
		m.logger.Warn("Failed to publish OperationCompleted event",
			"operation", operation, "error", err)
	}
}
