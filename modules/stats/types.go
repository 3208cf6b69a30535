package stats

import (
	"sync"
	"time"
)

// OperationStats tracks usage for a single operation.
type OperationStats struct {
	Operation  string    `json:"operation"`
	Count      int64     `json:"count"`
	LastUsedAt time.Time `json:"last_used_at,omitempty"`
}

// Summary is the aggregate usage view served by get-usage-summary.
type Summary struct {
	TotalRequests int64                     `json:"total_requests"`
	Operations    map[string]OperationStats `json:"operations"`
}

// UsageStore provides thread-safe storage for usage counters.
type UsageStore struct {
	mu         sync.RWMutex
	operations map[string]*OperationStats
	total      int64
}

// NewUsageStore creates an empty usage store.
func NewUsageStore() *UsageStore {
	return &UsageStore{
		operations: make(map[string]*OperationStats),
	}
}

// Record increments the counter for an operation.
func (s *UsageStore) Record(operation string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.operations[operation]
	if !ok {
		st = &OperationStats{Operation: operation}
		s.operations[operation] = st
	}
	st.Count++
	st.LastUsedAt = at
	s.total++
}

// GetSummary returns a snapshot of all counters.
func (s *UsageStore) GetSummary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ops := make(map[string]OperationStats, len(s.operations))
	for name, st := range s.operations {
		ops[name] = *st
	}
	return Summary{
		TotalRequests: s.total,
		Operations:    ops,
	}
}
