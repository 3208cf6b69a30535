package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// QuestionAnsweredEvent is emitted when the oracle module answers a question.
type QuestionAnsweredEvent struct {
	QuestionLen int       `json:"question_len"`
	DurationMS  int64     `json:"duration_ms"`
	AnsweredAt  time.Time `json:"answered_at"`
}

// QuestionAnsweredV1 is the typed event definition for answered questions.
// Subject: events.oracle.v1.question-answered
var QuestionAnsweredV1 = helper.EventDefinition[QuestionAnsweredEvent](
	"oracle", "QuestionAnswered", "v1",
)
