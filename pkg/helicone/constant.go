package helicone

import "time"

const (
	// DefaultGatewayURL is the Helicone proxy endpoint for the default model.
	DefaultGatewayURL = "https://gateway.helicone.ai/v1beta/models/gemini-2.0-flash:generateContent"

	// DefaultTargetURL is the upstream model provider the gateway forwards to.
	DefaultTargetURL = "https://generativelanguage.googleapis.com"

	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-2.0-flash"

	// DefaultTemperature is the default sampling temperature.
	DefaultTemperature = 0.7

	// DefaultMaxTokens is the default output token cap.
	DefaultMaxTokens = 1000

	// DefaultTimeout bounds every gateway call. A slow upstream must not
	// hold a worker past this.
	DefaultTimeout = 30 * time.Second
)

// User-facing apologies for each failure cause. These are the only things
// a shopper ever sees when the gateway call fails; diagnostics go to the
// log, keyed by request id.
const (
	ApologyParse      = "Sorry, I couldn't process the response from our assistant. Please try asking again."
	ApologyTimeout    = "Sorry, that request timed out. Please try again in a moment."
	ApologyConnection = "Sorry, I couldn't reach our assistant right now. Please try again later."
)

// apologyStatusFormat renders the non-200 apology; it carries the status
// code so the shopper can report something actionable.
const apologyStatusFormat = "Sorry, our assistant is having trouble right now (error %d). Please try again later."
