package chat

import (
	"context"
	"strings"

	"github.com/pranathimaddineni/portfolio/pkg/llm"
)

// UseCase describes the application use case for one conversation turn.
type UseCase interface {
	Respond(ctx context.Context, message, documentText string, history []Turn) (string, error)
}

type service struct {
	llm llm.ChatModel
}

// NewService creates the default implementation.
func NewService(model llm.ChatModel) UseCase {
	return &service{llm: model}
}

// Respond validates the inputs, assembles the bounded envelope and delegates
// to the completion provider. Provider failures are surfaced unretried.
func (s *service) Respond(ctx context.Context, message, documentText string, history []Turn) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrMissingMessage
	}
	if strings.TrimSpace(documentText) == "" {
		return "", ErrMissingDocument
	}
	return s.llm.Complete(ctx, BuildEnvelope(documentText, history, message))
}
