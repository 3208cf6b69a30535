package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// OperationCompletedEvent is emitted when a compute operation finishes
// successfully.
type OperationCompletedEvent struct {
	Operation   string    `json:"operation"`
	InputSize   int       `json:"input_size"`
	DurationMS  int64     `json:"duration_ms"`
	CompletedAt time.Time `json:"completed_at"`
}

// OperationCompletedV1 is the typed event definition for compute completions.
// Subject: events.compute.v1.operation-completed
var OperationCompletedV1 = helper.EventDefinition[OperationCompletedEvent](
	"compute", "OperationCompleted", "v1",
)
