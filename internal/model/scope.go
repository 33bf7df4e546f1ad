package model

const (
	// AnonymousUserID is assumed when the caller sends no user_id.
	AnonymousUserID = "anonymous"

	// DefaultSessionID is assumed when the caller sends no session_id.
	DefaultSessionID = "default"
)

// Scope carries the request caller identity through the pipeline.
type Scope struct {
	UserID    string
	SessionID string
}

// NewScope builds a Scope, filling in the anonymous/default identifiers
// for missing fields.
func NewScope(userID, sessionID string) Scope {
	if userID == "" {
		userID = AnonymousUserID
	}
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	return Scope{UserID: userID, SessionID: sessionID}
}

// Anonymous reports whether the scope identifies no real user.
func (s Scope) Anonymous() bool {
	return s.UserID == "" || s.UserID == AnonymousUserID
}
