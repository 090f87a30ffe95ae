package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranathimaddineni/portfolio/pkg/llm"
)

type stubModel struct {
	calls int
	got   [][]llm.Message
	reply string
	err   error
}

func (s *stubModel) Complete(_ context.Context, messages []llm.Message) (string, error) {
	s.calls++
	s.got = append(s.got, messages)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestRespondMissingMessage(t *testing.T) {
	stub := &stubModel{reply: "never used"}
	svc := NewService(stub)

	for _, message := range []string{"", "   \n\t"} {
		_, err := svc.Respond(context.Background(), message, "resume body", nil)
		assert.ErrorIs(t, err, ErrMissingMessage)
	}
	assert.Zero(t, stub.calls, "provider must not be invoked on validation failure")
}

func TestRespondMissingDocument(t *testing.T) {
	stub := &stubModel{reply: "never used"}
	svc := NewService(stub)

	_, err := svc.Respond(context.Background(), "What skills are listed?", "  ", nil)

	assert.ErrorIs(t, err, ErrMissingDocument)
	assert.Zero(t, stub.calls)
}

func TestRespondForwardsTrailingWindow(t *testing.T) {
	stub := &stubModel{reply: "ok"}
	svc := NewService(stub)

	var history []Turn
	for i := 1; i <= 15; i++ {
		history = append(history, Turn{Role: "user", Content: fmt.Sprintf("turn-%d", i)})
	}

	_, err := svc.Respond(context.Background(), "current", "resume body", history)
	require.NoError(t, err)

	require.Len(t, stub.got, 1)
	envelope := stub.got[0]
	require.Len(t, envelope, 12)
	assert.Equal(t, "turn-6", envelope[1].Content)
	assert.Equal(t, "turn-15", envelope[10].Content)
	assert.Equal(t, "current", envelope[11].Content)
}

func TestRespondAnswersAboutSkills(t *testing.T) {
	stub := &stubModel{reply: "The resume lists Python and Go among the candidate's skills."}
	svc := NewService(stub)

	reply, err := svc.Respond(context.Background(),
		"What skills are listed?",
		"Jane Doe. Skills: Python, Go, PostgreSQL.",
		nil)

	require.NoError(t, err)
	assert.Contains(t, reply, "Python")
	require.Len(t, stub.got, 1)
	assert.Contains(t, stub.got[0][0].Content, "Skills: Python, Go, PostgreSQL.")
}

func TestRespondSurfacesProviderError(t *testing.T) {
	providerErr := errors.New("openai http 503: overloaded")
	svc := NewService(&stubModel{err: providerErr})

	_, err := svc.Respond(context.Background(), "hello", "resume body", nil)

	assert.ErrorIs(t, err, providerErr)
}
