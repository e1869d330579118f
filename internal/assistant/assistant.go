// Package assistant turns a question plus optional conversation history into
// one model prompt and maps the model's reply into a stable result.
package assistant

import (
	"context"
	"net/http"
	"strings"

	"github.com/appsupport/ai-assistant-backend/internal/provider"
)

// Assistant answers questions strictly from an immutable documentation
// corpus. An empty corpus is a valid degraded state: every Answer call then
// fails with a 500 until the documentation is fixed out of band.
type Assistant struct {
	corpus string
	chat   provider.ChatProvider
}

// New builds an assistant over the given corpus. The corpus is injected
// rather than read from ambient state so tests can supply arbitrary corpora.
func New(corpus string, chat provider.ChatProvider) *Assistant {
	return &Assistant{corpus: corpus, chat: chat}
}

// Answer validates the request, builds the prompt and calls the model. Every
// failure path is mapped into a Result; no error escapes this boundary.
func (a *Assistant) Answer(ctx context.Context, req Request) Result {
	if a.corpus == "" {
		return failure("Application documentation is missing or could not be loaded.", http.StatusInternalServerError)
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return failure("Missing 'question' in request.", http.StatusBadRequest)
	}

	history := FormatHistory(ParseHistory(req.History))
	prompt := BuildPrompt(a.corpus, history, question)

	completion, err := a.chat.Complete(ctx, SystemInstruction, prompt)
	if err != nil {
		return failure(err.Error(), http.StatusInternalServerError)
	}
	return success(completion)
}

func success(c provider.Completion) Result {
	return Result{OK: true, Answer: c.Text, Model: c.Model, TokensUsed: c.TokensUsed}
}

func failure(msg string, status int) Result {
	return Result{Err: msg, Status: status}
}
