package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *geminiClient {
	return newGeminiClient(Config{
		APIKey:  "test-key",
		Model:   DefaultModel,
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	})
}

func fakeGemini(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Contains(t, r.URL.RawQuery, "key=test-key")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
	}))
}

func TestGeminiClient_Ask(t *testing.T) {
	srv := fakeGemini(t, "Paris.\n")
	defer srv.Close()

	word, err := newTestClient(srv.URL).Ask(context.Background(), "What is the capital of France?")
	require.NoError(t, err)
	assert.Equal(t, "Paris", word)
}

func TestGeminiClient_Ask_MultiWordReply(t *testing.T) {
	srv := fakeGemini(t, "The answer is blue")
	defer srv.Close()

	word, err := newTestClient(srv.URL).Ask(context.Background(), "What color is the sky?")
	require.NoError(t, err)
	assert.Equal(t, "The", word)
}

func TestGeminiClient_Ask_NoAPIKey(t *testing.T) {
	client := newGeminiClient(Config{BaseURL: "http://invalid", Timeout: time.Second})

	_, err := client.Ask(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGeminiClient_Ask_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Ask(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGeminiClient_Ask_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Ask(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGeminiClient_Ask_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Close immediately so the call fails

	_, err := newTestClient(srv.URL).Ask(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestExtractWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain word", "Paris", "Paris"},
		{"trailing punctuation", "Paris.", "Paris"},
		{"surrounding whitespace", "  Blue \n", "Blue"},
		{"quoted", `"Seven"`, "Seven"},
		{"multiple words", "Light blue", "Light"},
		{"only punctuation", "...", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractWord(tt.in); got != tt.want {
				t.Errorf("extractWord(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
