package helicone

import "time"

// Config holds everything the gateway client needs. It is built once at
// startup from the service configuration; the client never reads the
// environment.
type Config struct {
	APIKey       string // Helicone gateway credential
	GoogleAPIKey string // upstream model credential
	GatewayURL   string
	TargetURL    string
	Model        string
	AppName      string
	Temperature  float64
	MaxTokens    int
	CacheEnabled bool
	Timeout      time.Duration
}

// GenerateRequest is the request body proxied to the model provider.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment of a content message.
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig holds the generation settings.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateResponse is the response body from the model provider.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}
