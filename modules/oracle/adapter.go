package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
)

// OraclePort defines the interface for interacting with the oracle module.
type OraclePort interface {
	Ask(ctx context.Context, question string) (string, error)
}

// oracleAdapter implements OraclePort using the service container.
type oracleAdapter struct {
	container mono.ServiceContainer
}

// NewOracleAdapter creates a new adapter for the oracle service.
func NewOracleAdapter(container mono.ServiceContainer) OraclePort {
	return &oracleAdapter{
		container: container,
	}
}

// Ask forwards the question to the ask-question service and returns the
// single-word answer.
func (a *oracleAdapter) Ask(ctx context.Context, question string) (string, error) {
	client, err := a.container.GetRequestReplyService("ask-question")
	if err != nil {
		return "", fmt.Errorf("failed to get ask-question service: %w", err)
	}

	reqData, err := json.Marshal(AskRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Call(ctx, reqData)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var response AskResponse
	if err := json.Unmarshal(resp.Data, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if response.Error != "" {
		return "", mapServiceError(response.Error)
	}
	return response.Answer, nil
}

// mapServiceError converts service error strings back to sentinel errors.
// Errors lose their type information when sent over NATS.
func mapServiceError(msg string) error {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "non-empty"):
		return fmt.Errorf("%s: %w", msg, ErrEmptyQuestion)
	case strings.Contains(lower, "characters"):
		return fmt.Errorf("%s: %w", msg, ErrQuestionTooLong)
	case strings.Contains(lower, "not configured"):
		return fmt.Errorf("%s: %w", msg, ErrNotConfigured)
	}

	return fmt.Errorf("%s: %w", msg, ErrUpstream)
}
