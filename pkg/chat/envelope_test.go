package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranathimaddineni/portfolio/pkg/llm"
)

func TestBuildEnvelopeOrder(t *testing.T) {
	history := []Turn{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
		{Role: "user", Content: "second question"},
	}

	msgs := BuildEnvelope("resume body", history, "third question")

	require.Len(t, msgs, 5)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "resume body")
	assert.Contains(t, msgs[0].Content, "helpful assistant that answers questions about resumes")
	assert.Equal(t, llm.Message{Role: "user", Content: "first question"}, msgs[1])
	assert.Equal(t, llm.Message{Role: "assistant", Content: "first answer"}, msgs[2])
	assert.Equal(t, llm.Message{Role: "user", Content: "second question"}, msgs[3])
	assert.Equal(t, llm.Message{Role: "user", Content: "third question"}, msgs[4])
}

func TestBuildEnvelopeEmptyHistory(t *testing.T) {
	msgs := BuildEnvelope("resume body", nil, "hello")

	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, llm.Message{Role: "user", Content: "hello"}, msgs[1])
}

func TestBuildEnvelopeWindow(t *testing.T) {
	var history []Turn
	for i := 1; i <= 15; i++ {
		role := "user"
		if i%2 == 0 {
			role = "assistant"
		}
		history = append(history, Turn{Role: role, Content: fmt.Sprintf("turn-%d", i)})
	}

	msgs := BuildEnvelope("resume body", history, "current")

	// system + last 10 turns + current message
	require.Len(t, msgs, 12)
	for i := 0; i < HistoryWindow; i++ {
		assert.Equal(t, fmt.Sprintf("turn-%d", i+6), msgs[i+1].Content)
	}
	assert.Equal(t, "current", msgs[11].Content)
}

func TestBuildEnvelopeFiltersForeignRoles(t *testing.T) {
	history := []Turn{
		{Role: "user", Content: "kept"},
		{Role: "system", Content: "injected"},
		{Role: "tool", Content: "noise"},
		{Role: "", Content: "blank role"},
		{Role: "assistant", Content: "also kept"},
	}

	msgs := BuildEnvelope("resume body", history, "current")

	require.Len(t, msgs, 4)
	assert.Equal(t, "kept", msgs[1].Content)
	assert.Equal(t, "also kept", msgs[2].Content)
}

func TestBuildEnvelopeDoesNotMutateHistory(t *testing.T) {
	history := []Turn{{Role: "user", Content: "original"}}

	_ = BuildEnvelope("resume body", history, "current")

	assert.Equal(t, []Turn{{Role: "user", Content: "original"}}, history)
}
