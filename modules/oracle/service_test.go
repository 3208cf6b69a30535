package oracle

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)         {}
func (m *mockLogger) Info(msg string, args ...any)          {}
func (m *mockLogger) Warn(msg string, args ...any)          {}
func (m *mockLogger) Error(msg string, args ...any)         {}
func (m *mockLogger) With(args ...any) types.Logger         { return m }
func (m *mockLogger) WithError(err error) types.Logger      { return m }
func (m *mockLogger) WithModule(module string) types.Logger { return m }

// fakeAsker implements Asker without network access.
type fakeAsker struct {
	answer string
	err    error
	calls  atomic.Int64
	block  chan struct{}
}

func (f *fakeAsker) Ask(_ context.Context, question string) (string, error) {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	return f.answer, f.err
}

func newTestModule(asker Asker) *Module {
	m := NewModule(Config{APIKey: "test-key", MaxQuestionLength: 50}, &mockLogger{})
	m.asker = asker
	return m
}

func TestHandleAsk(t *testing.T) {
	m := newTestModule(&fakeAsker{answer: "Paris"})

	resp, err := m.handleAsk(context.Background(), AskRequest{Question: "Capital of France?"}, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Error)
	assert.Equal(t, "Paris", resp.Answer)
}

func TestHandleAsk_EmptyQuestion(t *testing.T) {
	m := newTestModule(&fakeAsker{answer: "unused"})

	resp, err := m.handleAsk(context.Background(), AskRequest{Question: "   "}, nil)
	require.NoError(t, err)
	assert.Equal(t, "AI requires a non-empty string", resp.Error)
}

func TestHandleAsk_QuestionTooLong(t *testing.T) {
	m := newTestModule(&fakeAsker{answer: "unused"})

	resp, err := m.handleAsk(context.Background(),
		AskRequest{Question: strings.Repeat("x", 51)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "AI string must be <= 50 characters", resp.Error)
}

func TestHandleAsk_UpstreamFailure(t *testing.T) {
	m := newTestModule(&fakeAsker{err: ErrUpstream})

	resp, err := m.handleAsk(context.Background(), AskRequest{Question: "anything"}, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Answer)
	assert.Contains(t, resp.Error, "AI service error")
}

func TestHandleAsk_CollapsesIdenticalQuestions(t *testing.T) {
	asker := &fakeAsker{answer: "Blue", block: make(chan struct{})}
	m := newTestModule(asker)

	const workers = 5
	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([]AskResponse, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			resp, err := m.handleAsk(context.Background(),
				AskRequest{Question: "Color of the sky?"}, nil)
			assert.NoError(t, err)
			results[i] = resp
		}(i)
	}

	// Release all workers at once, give them time to pile up on the
	// shared in-flight call, then let it complete.
	close(start)
	time.Sleep(100 * time.Millisecond)
	close(asker.block)
	wg.Wait()

	for _, resp := range results {
		assert.Equal(t, "Blue", resp.Answer)
	}
	assert.Less(t, asker.calls.Load(), int64(workers))
}
