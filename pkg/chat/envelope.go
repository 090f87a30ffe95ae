package chat

import (
	"fmt"

	"github.com/pranathimaddineni/portfolio/pkg/llm"
)

// HistoryWindow bounds how many trailing history turns are forwarded to the
// provider; older turns are discarded first.
const HistoryWindow = 10

// SystemPromptTemplate is the fixed instruction the resume text is embedded
// into. The wording is part of the product behavior; do not reflow it.
const SystemPromptTemplate = `You are a helpful assistant that answers questions about resumes. The user has uploaded a resume, and you should answer questions based on the information in that resume. Here is the resume content:

%s

Answer questions about this resume accurately and helpfully. If the information is not in the resume, say so.`

// BuildEnvelope assembles the ordered message sequence for one completion
// call: system instruction, then the last HistoryWindow turns filtered to
// user/assistant roles in their original order, then the current message as
// the final user turn. The envelope is rebuilt from scratch on every call.
func BuildEnvelope(documentText string, history []Turn, message string) []llm.Message {
	recent := history
	if len(recent) > HistoryWindow {
		recent = recent[len(recent)-HistoryWindow:]
	}

	messages := make([]llm.Message, 0, len(recent)+2)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: fmt.Sprintf(SystemPromptTemplate, documentText),
	})
	for _, t := range recent {
		// Defensive filter against malformed client state.
		if t.Role != llm.RoleUser && t.Role != llm.RoleAssistant {
			continue
		}
		messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})
	return messages
}
