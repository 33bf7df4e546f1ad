package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	// ErrEmptyMessage is a caller usage error, not a system fault; it is
	// reported to the client without any processing or failure logging.
	ErrEmptyMessage = errors.New("no message provided")
)
