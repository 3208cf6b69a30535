package api

// DefaultOfficialEmail identifies the service in every envelope when
// OFFICIAL_EMAIL is not set.
const DefaultOfficialEmail = "bfhl@example.com"

// Envelope is the fixed JSON wrapper used for every response, success or
// failure. Exactly one of Data/Error is present, matching IsSuccess.
type Envelope struct {
	IsSuccess     bool   `json:"is_success"`
	OfficialEmail string `json:"official_email"`
	Data          any    `json:"data,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Config holds the api module configuration.
type Config struct {
	Port          string
	OfficialEmail string
}

// DefaultConfig returns the default api configuration.
func DefaultConfig() Config {
	return Config{
		Port:          "3000",
		OfficialEmail: DefaultOfficialEmail,
	}
}
