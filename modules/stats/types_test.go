package stats

import (
	"sync"
	"testing"
	"time"
)

func TestUsageStore_Record(t *testing.T) {
	store := NewUsageStore()
	now := time.Now()

	store.Record("lcm", now)
	store.Record("lcm", now.Add(time.Second))
	store.Record("fibonacci", now)

	summary := store.GetSummary()

	if summary.TotalRequests != 3 {
		t.Errorf("TotalRequests = %d, want 3", summary.TotalRequests)
	}
	if got := summary.Operations["lcm"].Count; got != 2 {
		t.Errorf("lcm count = %d, want 2", got)
	}
	if got := summary.Operations["fibonacci"].Count; got != 1 {
		t.Errorf("fibonacci count = %d, want 1", got)
	}
	if !summary.Operations["lcm"].LastUsedAt.Equal(now.Add(time.Second)) {
		t.Errorf("lcm LastUsedAt = %v, want %v", summary.Operations["lcm"].LastUsedAt, now.Add(time.Second))
	}
}

func TestUsageStore_EmptySummary(t *testing.T) {
	summary := NewUsageStore().GetSummary()

	if summary.TotalRequests != 0 {
		t.Errorf("TotalRequests = %d, want 0", summary.TotalRequests)
	}
	if len(summary.Operations) != 0 {
		t.Errorf("Operations = %v, want empty", summary.Operations)
	}
}

func TestUsageStore_ConcurrentRecord(t *testing.T) {
	store := NewUsageStore()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Record("prime", now)
		}()
	}
	wg.Wait()

	if got := store.GetSummary().TotalRequests; got != 50 {
		t.Errorf("TotalRequests = %d, want 50", got)
	}
}
