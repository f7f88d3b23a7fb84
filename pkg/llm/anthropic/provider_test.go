package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-chatapp-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompleteServer(t *testing.T, completion string, gotReq *completeRequest, gotHeaders http.Header) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range r.Header {
			gotHeaders[k] = v
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(gotReq))
		require.NoError(t, json.NewEncoder(w).Encode(completeResponse{Completion: completion}))
	}))
}

func TestChatSendsTranscriptAndHeaders(t *testing.T) {
	var gotReq completeRequest
	gotHeaders := http.Header{}
	srv := newCompleteServer(t, " Hello!", &gotReq, gotHeaders)
	defer srv.Close()

	p := NewAnthropicProvider("test-key", "claude-3-opus-20240229")
	p.BaseURL = srv.URL

	result, err := p.Chat(context.Background(),
		[]llm.Message{{Role: llm.RoleUser, Content: "Hi"}},
		llm.WithSystemPrompt("You are terse."),
	)
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotHeaders.Get("x-api-key"))
	assert.Equal(t, apiVersion, gotHeaders.Get("anthropic-version"))
	assert.Equal(t, "claude-3-opus-20240229", gotReq.Model)
	assert.Equal(t, defaultMaxTokens, gotReq.MaxTokens)
	assert.Equal(t, "You are terse.\n\nHuman: Hi\n\nAssistant: ", gotReq.Prompt)
	assert.Equal(t, " Hello!", result.Content)
	assert.Zero(t, result.TokensUsed)
}

func TestChatKeepsEmptyCompletionVerbatim(t *testing.T) {
	var gotReq completeRequest
	srv := newCompleteServer(t, "", &gotReq, http.Header{})
	defer srv.Close()

	p := NewAnthropicProvider("test-key", "claude-3-opus-20240229")
	p.BaseURL = srv.URL

	result, err := p.Chat(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "Hi"}})
	require.NoError(t, err)
	assert.Equal(t, "", result.Content)
}
