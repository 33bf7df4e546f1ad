package helicone

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"storefront-chatbot/pkg/log"
)

// Client calls the upstream model through the Helicone observability
// gateway. Credentials and metadata travel as request headers, never in
// the payload body. Each call is a single attempt with a bounded timeout;
// there are no retries.
type Client struct {
	cfg        Config
	l          log.Logger
	httpClient *http.Client
}

var _ Completer = (*Client)(nil)

// New creates a gateway client, filling unset config fields with defaults.
func New(cfg Config, l log.Logger) *Client {
	if cfg.GatewayURL == "" {
		cfg.GatewayURL = DefaultGatewayURL
	}
	if cfg.TargetURL == "" {
		cfg.TargetURL = DefaultTargetURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		cfg:        cfg,
		l:          l,
		httpClient: &http.Client{},
	}
}

// SetGatewayURL overrides the gateway URL for testing purposes.
func (c *Client) SetGatewayURL(url string) {
	c.cfg.GatewayURL = url
}

// statusError is a non-200 reply from the gateway.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("gateway status %d: %s", e.code, e.body)
}

// errMalformedResponse marks a 200 reply whose body did not carry a
// readable answer.
var errMalformedResponse = errors.New("malformed gateway response")

// Complete sends the prompt to the model through the gateway and returns
// the answer text. It never returns an error: timeouts, transport
// failures, non-200 statuses and unparseable bodies all come back as
// deterministic apology strings, each logged with the call's request id.
func (c *Client) Complete(ctx context.Context, prompt, userID, sessionID string) string {
	requestID := uuid.NewString()
	start := time.Now()

	answer, err := c.generate(ctx, prompt, requestID, userID, sessionID)
	if err != nil {
		return c.apologize(ctx, requestID, err)
	}

	c.l.Infof(ctx, "helicone: request %s succeeded, response length %d, took %s",
		requestID, len(answer), time.Since(start).Round(time.Millisecond))
	return answer
}

func (c *Client) generate(ctx context.Context, prompt, requestID, userID, sessionID string) (string, error) {
	body, err := json.Marshal(GenerateRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:     c.cfg.Temperature,
			MaxOutputTokens: c.cfg.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GatewayURL, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to build gateway request: %w", err)
	}
	c.setHeaders(httpReq, requestID, userID, sessionID, len(prompt))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return "", &statusError{code: resp.StatusCode, body: string(raw)}
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", errMalformedResponse, err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidate text", errMalformedResponse)
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// setHeaders attaches credentials and observability metadata. Everything
// here is a request annotation; the payload body stays credential-free.
func (c *Client) setHeaders(req *http.Request, requestID, userID, sessionID string, promptLength int) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.GoogleAPIKey)
	req.Header.Set("Helicone-Auth", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Helicone-Target-URL", c.cfg.TargetURL)
	req.Header.Set("Helicone-Cache-Enabled", strconv.FormatBool(c.cfg.CacheEnabled))
	req.Header.Set("Helicone-Property-Model", c.cfg.Model)
	req.Header.Set("Helicone-Property-Application", c.cfg.AppName)
	req.Header.Set("Helicone-Property-Request-Id", requestID)
	req.Header.Set("Helicone-Property-User-Id", userID)
	req.Header.Set("Helicone-Property-Session-Id", sessionID)
	req.Header.Set("Helicone-Property-Prompt-Length", strconv.Itoa(promptLength))
}

// apologize maps a failure to its user-facing apology and logs the cause.
func (c *Client) apologize(ctx context.Context, requestID string, err error) string {
	var statusErr *statusError
	var netErr net.Error

	switch {
	case errors.As(err, &statusErr):
		c.l.Errorf(ctx, "helicone: request %s failed with status %d: %s", requestID, statusErr.code, statusErr.body)
		return fmt.Sprintf(apologyStatusFormat, statusErr.code)

	case errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()):
		c.l.Errorf(ctx, "helicone: request %s timed out after %s", requestID, c.cfg.Timeout)
		return ApologyTimeout

	case errors.Is(err, errMalformedResponse):
		c.l.Errorf(ctx, "helicone: request %s returned an unparseable body: %v", requestID, err)
		return ApologyParse

	default:
		c.l.Errorf(ctx, "helicone: request %s transport failure: %v", requestID, err)
		return ApologyConnection
	}
}
