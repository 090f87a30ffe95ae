package checkers

import (
	"context"
	"errors"
)

// CredentialChecker reports whether the completion provider credential is
// present in process configuration.
type CredentialChecker struct {
	apiKey string
}

func NewCredentialChecker(apiKey string) *CredentialChecker {
	return &CredentialChecker{apiKey: apiKey}
}

func (c *CredentialChecker) Name() string { return "openai" }

func (c *CredentialChecker) Check(_ context.Context) error {
	if c.apiKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	return nil
}
