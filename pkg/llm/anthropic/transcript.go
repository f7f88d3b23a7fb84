package anthropic

import (
	"strings"

	"ai-chatapp-be/pkg/llm"
)

const (
	humanMarker     = "\n\nHuman: "
	assistantMarker = "\n\nAssistant: "
)

// BuildTranscript serializes structured turns into the legacy completion
// prompt format. The marker before each turn depends on lookahead to the
// next turn's role, and consecutive same-role turns are NOT merged.
// Existing conversations depend on this exact byte layout, so keep the
// quirks.
//
// [user:"Hi", assistant:"Hello", user:"How are you?"] serializes to
// "\n\nHuman: Hi\n\nAssistant: Hello\n\nHuman: How are you?\n\nAssistant: ".
func BuildTranscript(history []llm.Message, systemPrompt string) string {
	var b strings.Builder

	if systemPrompt != "" {
		b.WriteString(systemPrompt)
	}
	b.WriteString(humanMarker)

	for i, msg := range history {
		b.WriteString(msg.Content)

		if i+1 >= len(history) {
			continue
		}
		next := history[i+1].Role
		if msg.Role == llm.RoleUser {
			if next == llm.RoleAssistant {
				b.WriteString(assistantMarker)
			} else {
				b.WriteString(humanMarker)
			}
		} else {
			if next == llm.RoleUser {
				b.WriteString(humanMarker)
			} else {
				b.WriteString(assistantMarker)
			}
		}
	}

	// Trailing marker tells the model where its completion starts.
	b.WriteString(assistantMarker)
	return b.String()
}
