package oracle

import "time"

// Defaults for the oracle configuration. All are env-overridable.
const (
	DefaultModel   = "gemma-3-12b-it"
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultTimeout = 15 * time.Second

	// DefaultMaxQuestionLength bounds the question accepted by the ask
	// service.
	DefaultMaxQuestionLength = 5000
)

// Config holds the oracle module configuration.
type Config struct {
	APIKey            string
	Model             string
	BaseURL           string
	Timeout           time.Duration
	MaxQuestionLength int
}

// DefaultConfig returns the default oracle configuration. The API key has no
// default and must come from the environment.
func DefaultConfig() Config {
	return Config{
		Model:             DefaultModel,
		BaseURL:           DefaultBaseURL,
		Timeout:           DefaultTimeout,
		MaxQuestionLength: DefaultMaxQuestionLength,
	}
}

// AskRequest asks the upstream model a free-form question.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse carries the single-word answer.
type AskResponse struct {
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}
