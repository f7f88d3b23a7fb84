package anthropic

import (
	"testing"

	"ai-chatapp-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func TestBuildTranscript(t *testing.T) {
	tests := []struct {
		name         string
		history      []llm.Message
		systemPrompt string
		want         string
	}{
		{
			name: "alternating turns ending with user",
			history: []llm.Message{
				{Role: llm.RoleUser, Content: "Hi"},
				{Role: llm.RoleAssistant, Content: "Hello"},
				{Role: llm.RoleUser, Content: "How are you?"},
			},
			want: "\n\nHuman: Hi\n\nAssistant: Hello\n\nHuman: How are you?\n\nAssistant: ",
		},
		{
			name: "single user turn",
			history: []llm.Message{
				{Role: llm.RoleUser, Content: "Hi"},
			},
			want: "\n\nHuman: Hi\n\nAssistant: ",
		},
		{
			name:    "empty history",
			history: nil,
			want:    "\n\nHuman: \n\nAssistant: ",
		},
		{
			name: "consecutive user turns are not merged",
			history: []llm.Message{
				{Role: llm.RoleUser, Content: "First"},
				{Role: llm.RoleUser, Content: "Second"},
			},
			want: "\n\nHuman: First\n\nHuman: Second\n\nAssistant: ",
		},
		{
			name: "consecutive assistant turns keep the assistant marker",
			history: []llm.Message{
				{Role: llm.RoleUser, Content: "Q"},
				{Role: llm.RoleAssistant, Content: "A1"},
				{Role: llm.RoleAssistant, Content: "A2"},
			},
			want: "\n\nHuman: Q\n\nAssistant: A1\n\nAssistant: A2\n\nAssistant: ",
		},
		{
			name: "system prompt becomes the preamble",
			history: []llm.Message{
				{Role: llm.RoleUser, Content: "Hi"},
			},
			systemPrompt: "You are terse.",
			want:         "You are terse.\n\nHuman: Hi\n\nAssistant: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildTranscript(tt.history, tt.systemPrompt)
			assert.Equal(t, tt.want, got)
		})
	}
}
