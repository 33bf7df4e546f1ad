package helicone_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-chatbot/pkg/helicone"
	"storefront-chatbot/pkg/log"
)

// recordingLogger captures formatted log lines for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) record(template string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(template, args...))
}

func (r *recordingLogger) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func (r *recordingLogger) Debug(ctx context.Context, args ...any)  {}
func (r *recordingLogger) Info(ctx context.Context, args ...any)   {}
func (r *recordingLogger) Warn(ctx context.Context, args ...any)   {}
func (r *recordingLogger) Error(ctx context.Context, args ...any)  {}
func (r *recordingLogger) Fatal(ctx context.Context, args ...any)  {}
func (r *recordingLogger) DPanic(ctx context.Context, args ...any) {}
func (r *recordingLogger) Panic(ctx context.Context, args ...any)  {}
func (r *recordingLogger) Debugf(ctx context.Context, template string, args ...any) {
	r.record(template, args...)
}
func (r *recordingLogger) Infof(ctx context.Context, template string, args ...any) {
	r.record(template, args...)
}
func (r *recordingLogger) Warnf(ctx context.Context, template string, args ...any) {
	r.record(template, args...)
}
func (r *recordingLogger) Errorf(ctx context.Context, template string, args ...any) {
	r.record(template, args...)
}
func (r *recordingLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (r *recordingLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (r *recordingLogger) Panicf(ctx context.Context, template string, args ...any)  {}

var _ log.Logger = (*recordingLogger)(nil)

func testConfig() helicone.Config {
	return helicone.Config{
		APIKey:       "hk-test",
		GoogleAPIKey: "gk-test",
		TargetURL:    "https://generativelanguage.googleapis.com",
		Model:        "gemini-2.0-flash",
		AppName:      "starky-shop-chatbot",
		CacheEnabled: true,
	}
}

const answerBody = `{"candidates":[{"content":{"role":"model","parts":[{"text":"Our belts ship worldwide."}]}}]}`

func TestComplete_Success(t *testing.T) {
	var gotHeaders http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(answerBody))
	}))
	defer ts.Close()

	l := &recordingLogger{}
	client := helicone.New(testConfig(), l)
	client.SetGatewayURL(ts.URL)

	answer := client.Complete(context.Background(), "do you ship belts", "u1", "s1")
	require.Equal(t, "Our belts ship worldwide.", answer)

	// Credentials and metadata are carried as headers, not payload.
	assert.Equal(t, "Bearer gk-test", gotHeaders.Get("Authorization"))
	assert.Equal(t, "Bearer hk-test", gotHeaders.Get("Helicone-Auth"))
	assert.Equal(t, "https://generativelanguage.googleapis.com", gotHeaders.Get("Helicone-Target-Url"))
	assert.Equal(t, "true", gotHeaders.Get("Helicone-Cache-Enabled"))
	assert.Equal(t, "gemini-2.0-flash", gotHeaders.Get("Helicone-Property-Model"))
	assert.Equal(t, "starky-shop-chatbot", gotHeaders.Get("Helicone-Property-Application"))
	assert.Equal(t, "u1", gotHeaders.Get("Helicone-Property-User-Id"))
	assert.Equal(t, "s1", gotHeaders.Get("Helicone-Property-Session-Id"))
	assert.Equal(t, "17", gotHeaders.Get("Helicone-Property-Prompt-Length"))
	assert.NotEmpty(t, gotHeaders.Get("Helicone-Property-Request-Id"))

	// The success log correlates via the same request id.
	requestID := gotHeaders.Get("Helicone-Property-Request-Id")
	require.Len(t, l.all(), 1)
	assert.Contains(t, l.all()[0], requestID)
	assert.Contains(t, l.all()[0], "succeeded")
}

func TestComplete_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer ts.Close()

	l := &recordingLogger{}
	client := helicone.New(testConfig(), l)
	client.SetGatewayURL(ts.URL)

	answer := client.Complete(context.Background(), "hello", "u1", "s1")
	assert.Contains(t, answer, "502")
	assert.Contains(t, answer, "Sorry")

	require.Len(t, l.all(), 1)
	assert.Contains(t, l.all()[0], "502")
}

func TestComplete_MalformedBody(t *testing.T) {
	cases := map[string]string{
		"Not JSON":      `<html>oops</html>`,
		"No Candidates": `{"candidates":[]}`,
		"Empty Parts":   `{"candidates":[{"content":{"parts":[]}}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(body))
			}))
			defer ts.Close()

			client := helicone.New(testConfig(), &recordingLogger{})
			client.SetGatewayURL(ts.URL)

			answer := client.Complete(context.Background(), "hello", "u1", "s1")
			assert.Equal(t, helicone.ApologyParse, answer)
		})
	}
}

func TestComplete_Timeout(t *testing.T) {
	release := make(chan struct{})
	var mu sync.Mutex
	var reqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		reqID = r.Header.Get("Helicone-Property-Request-Id")
		mu.Unlock()
		<-release
	}))
	defer ts.Close()
	defer close(release)

	cfg := testConfig()
	cfg.Timeout = 50 * time.Millisecond

	l := &recordingLogger{}
	client := helicone.New(cfg, l)
	client.SetGatewayURL(ts.URL)

	answer := client.Complete(context.Background(), "slow question", "u1", "s1")
	require.Equal(t, helicone.ApologyTimeout, answer)

	// The timeout log references the call's request id.
	require.Len(t, l.all(), 1)
	mu.Lock()
	id := reqID
	mu.Unlock()
	assert.Contains(t, l.all()[0], id)
	assert.Contains(t, l.all()[0], "timed out")
}

func TestComplete_ConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	l := &recordingLogger{}
	client := helicone.New(testConfig(), l)
	client.SetGatewayURL(ts.URL)

	answer := client.Complete(context.Background(), "hello", "u1", "s1")
	assert.Equal(t, helicone.ApologyConnection, answer)

	require.Len(t, l.all(), 1)
	assert.True(t, strings.Contains(l.all()[0], "transport failure"))
}
