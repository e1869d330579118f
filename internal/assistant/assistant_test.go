package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appsupport/ai-assistant-backend/internal/provider"
)

// stubProvider records the prompts it receives.
type stubProvider struct {
	completion provider.Completion
	err        error
	system     string
	user       string
}

func (s *stubProvider) Model() string { return "stub" }

func (s *stubProvider) Complete(_ context.Context, system, user string) (provider.Completion, error) {
	s.system, s.user = system, user
	if s.err != nil {
		return provider.Completion{}, s.err
	}
	return s.completion, nil
}

func TestAnswerEmptyCorpus(t *testing.T) {
	bot := New("", provider.Mock{Text: "never reached"})
	res := bot.Answer(context.Background(), Request{Question: "anything at all"})
	require.False(t, res.OK)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.NotEmpty(t, res.Err)
}

func TestAnswerBlankQuestion(t *testing.T) {
	bot := New("some documentation", provider.Mock{})
	for _, q := range []string{"", "   ", "\n\t "} {
		res := bot.Answer(context.Background(), Request{Question: q})
		require.False(t, res.OK, "question %q", q)
		assert.Equal(t, http.StatusBadRequest, res.Status)
	}
}

func TestAnswerSuccessMapping(t *testing.T) {
	stub := &stubProvider{completion: provider.Completion{Text: "Hello", Model: "m1", TokensUsed: 42}}
	bot := New("The app exports reports as PDF.", stub)

	res := bot.Answer(context.Background(), Request{
		Question: "  How do I export?  ",
		History:  json.RawMessage(`[{"role":"user","content":"hi"},{"role":"bot","content":"hello"}]`),
	})

	require.True(t, res.OK)
	assert.Equal(t, "Hello", res.Answer)
	assert.Equal(t, "m1", res.Model)
	assert.Equal(t, 42, res.TokensUsed)

	assert.Equal(t, SystemInstruction, stub.system)
	assert.Contains(t, stub.user, "The app exports reports as PDF.")
	assert.Contains(t, stub.user, "User: hi\nAI: hello")
	assert.Contains(t, stub.user, "How do I export?")
}

func TestAnswerMalformedHistoryStillSucceeds(t *testing.T) {
	stub := &stubProvider{completion: provider.Completion{Text: "ok", Model: "m1"}}
	bot := New("docs", stub)

	res := bot.Answer(context.Background(), Request{
		Question: "q",
		History:  json.RawMessage(`"not a list"`),
	})

	require.True(t, res.OK)
	assert.Contains(t, stub.user, NoHistoryPlaceholder)
}

func TestAnswerUpstreamFailure(t *testing.T) {
	stub := &stubProvider{err: errors.New("groq error: 500 Internal Server Error")}
	bot := New("docs", stub)

	res := bot.Answer(context.Background(), Request{Question: "q"})
	require.False(t, res.OK)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.NotEmpty(t, res.Err)
}
