package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// oneWordInstruction prefixes every question sent upstream.
const oneWordInstruction = "Answer the following question with ONLY ONE WORD, no punctuation, no explanation: "

// answerTrimSet is the punctuation stripped from the model reply before the
// first word is extracted.
const answerTrimSet = ".,!?;:\"'-"

// Asker answers a free-form question with a single word. It is the narrow
// seam between the ask service and the upstream provider, so tests can fake
// it without network access.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// geminiClient implements Asker against the Gemini generateContent API.
type geminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// newGeminiClient creates an Asker backed by the Gemini API.
func newGeminiClient(cfg Config) *geminiClient {
	return &geminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Ask sends the question with the one-word instruction and extracts the
// first word of the reply.
func (g *geminiClient) Ask(ctx context.Context, question string) (string, error) {
	if g.apiKey == "" {
		return "", ErrNotConfigured
	}

	reqBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": oneWordInstruction + question},
				},
			},
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, strings.NewReader(string(reqJSON)))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: api error %d", ErrUpstream, resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: parse response: %v", ErrUpstream, err)
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	word := extractWord(text.String())
	if word == "" {
		return "", fmt.Errorf("%w: empty text in response", ErrUpstream)
	}
	return word, nil
}

// extractWord trims surrounding whitespace and punctuation from the model
// reply and returns its first whitespace-separated word.
func extractWord(text string) string {
	cleaned := strings.Trim(strings.TrimSpace(text), answerTrimSet)
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], answerTrimSet)
}
