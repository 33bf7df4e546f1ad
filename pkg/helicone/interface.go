package helicone

import "context"

// Completer is the LLM gateway interface consumed by the routing layer.
// Implementations never return an error: every failure is translated into
// a user-facing apology string.
type Completer interface {
	Complete(ctx context.Context, prompt, userID, sessionID string) string
}
