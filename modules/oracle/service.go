package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/bfhl-service/events"
	"github.com/go-monolith/mono"
)

// handleAsk handles the ask-question request-reply service. Identical
// questions in flight at the same time share a single upstream call via
// singleflight.
func (m *Module) handleAsk(ctx context.Context, req AskRequest, _ *mono.Msg) (AskResponse, error) {
	started := time.Now()

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return AskResponse{Error: "AI requires a non-empty string"}, nil
	}
	if len(req.Question) > m.config.MaxQuestionLength {
		return AskResponse{
			Error: fmt.Sprintf("AI string must be <= %d characters", m.config.MaxQuestionLength),
		}, nil
	}

	val, err, shared := m.sfGroup.Do(question, func() (any, error) {
		return m.asker.Ask(ctx, question)
	})
	if err != nil {
		m.logger.Error("Upstream ask failed", "error", err)
		return AskResponse{Error: fmt.Sprintf("AI service error: %v", err)}, nil
	}
	if shared {
		m.logger.Debug("Shared in-flight upstream call", "questionLen", len(question))
	}

	answer, ok := val.(string)
	if !ok || answer == "" {
		return AskResponse{Error: "AI service error: no response"}, nil
	}

	m.publishAnswered(len(question), started)
	return AskResponse{Answer: answer}, nil
}

// publishAnswered emits a QuestionAnswered event. Publishing is best-effort
// and never fails the operation.
func (m *Module) publishAnswered(questionLen int, started time.Time) {
	if m.eventBus == nil {
		return
	}
	event := events.QuestionAnsweredEvent{
		QuestionLen: questionLen,
		DurationMS:  time.Since(started).Milliseconds(),
		AnsweredAt:  time.Now(),
	}
	if err := events.QuestionAnsweredV1.Publish(m.eventBus, event, nil); err != nil {
		m.logger.Warn("Failed to publish QuestionAnswered event", "error", err)
	}
}
