package chat

import "errors"

// Turn is one role-tagged message of the client-held conversation history.
// The client resends the full history on every request; nothing is kept
// server-side between calls.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var (
	ErrMissingMessage  = errors.New("message is required")
	ErrMissingDocument = errors.New("no resume uploaded")
)
