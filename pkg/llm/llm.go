package llm

import (
	"context"
	"errors"
)

// Roles accepted in a chat completion exchange.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry of a chat completion exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Failure classes shared by provider adapters so callers can tell a missing
// credential apart from an upstream failure.
var (
	ErrNotConfigured = errors.New("api key is not configured")
	ErrEmptyReply    = errors.New("model returned no usable content")
)
