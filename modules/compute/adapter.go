package compute

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
)

// ComputePort defines the interface for interacting with the compute module.
// Consumers should use this interface instead of directly referencing the
// Module.
type ComputePort interface {
	Fibonacci(ctx context.Context, n int64) ([]int64, error)
	FilterPrimes(ctx context.Context, numbers []int64) ([]int64, error)
	LCM(ctx context.Context, numbers []int64) (int64, error)
	HCF(ctx context.Context, numbers []int64) (int64, error)
}

// computeAdapter implements ComputePort using the service container.
type computeAdapter struct {
	container mono.ServiceContainer
}

// NewComputeAdapter creates a new adapter for the compute services.
func NewComputeAdapter(container mono.ServiceContainer) ComputePort {
	return &computeAdapter{
		container: container,
	}
}

// Fibonacci returns the first n Fibonacci numbers.
func (a *computeAdapter) Fibonacci(ctx context.Context, n int64) ([]int64, error) {
	var resp FibonacciResponse
	if err := a.call(ctx, "fibonacci", FibonacciRequest{N: n}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, mapServiceError(resp.Error)
	}
	if resp.Sequence == nil {
		resp.Sequence = []int64{}
	}
	return resp.Sequence, nil
}

// FilterPrimes returns the primes of numbers in their original order.
func (a *computeAdapter) FilterPrimes(ctx context.Context, numbers []int64) ([]int64, error) {
	var resp FilterPrimesResponse
	if err := a.call(ctx, "filter-primes", FilterPrimesRequest{Numbers: numbers}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, mapServiceError(resp.Error)
	}
	if resp.Primes == nil {
		resp.Primes = []int64{}
	}
	return resp.Primes, nil
}

// LCM returns the least common multiple of numbers.
func (a *computeAdapter) LCM(ctx context.Context, numbers []int64) (int64, error) {
	return a.fold(ctx, "lcm", numbers)
}

// HCF returns the greatest common divisor of numbers.
func (a *computeAdapter) HCF(ctx context.Context, numbers []int64) (int64, error) {
	return a.fold(ctx, "hcf", numbers)
}

func (a *computeAdapter) fold(ctx context.Context, service string, numbers []int64) (int64, error) {
	var resp FoldResponse
	if err := a.call(ctx, service, FoldRequest{Numbers: numbers}, &resp); err != nil {
		return 0, err
	}
	if resp.Error != "" {
		return 0, mapServiceError(resp.Error)
	}
	return resp.Result, nil
}

// call invokes a request-reply service and decodes the reply into out.
func (a *computeAdapter) call(ctx context.Context, service string, req any, out any) error {
	client, err := a.container.GetRequestReplyService(service)
	if err != nil {
		return fmt.Errorf("failed to get %s service: %w", service, err)
	}

	reqData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Call(ctx, reqData)
	if err != nil {
		return fmt.Errorf("%s call failed: %w", service, err)
	}

	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s response: %w", service, err)
	}
	return nil
}

// mapServiceError converts service error strings back to sentinel errors.
// This is necessary because errors lose their type information when sent
// over NATS.
func mapServiceError(msg string) error {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "fibonacci"):
		return fmt.Errorf("%s: %w", msg, ErrCountOutOfRange)
	case strings.Contains(lower, "array size"):
		return fmt.Errorf("%s: %w", msg, ErrTooManyElements)
	case strings.Contains(lower, "non-empty"):
		return fmt.Errorf("%s: %w", msg, ErrEmptyInput)
	case strings.Contains(lower, "positive integers"):
		return fmt.Errorf("%s: %w", msg, ErrNonPositiveElement)
	case strings.Contains(lower, "integer range"):
		return fmt.Errorf("%s: %w", msg, ErrOverflow)
	}

	return fmt.Errorf("%s", msg)
}
