// Package provider abstracts the external chat-completion API.
package provider

import "context"

// Completion is one model reply.
type Completion struct {
	Text       string
	Model      string
	TokensUsed int
}

// ChatProvider produces a completion for a system instruction plus a single
// user turn.
type ChatProvider interface {
	Model() string
	Complete(ctx context.Context, system, user string) (Completion, error)
}

// Mock replies without calling any external API. Useful for offline
// development and tests.
type Mock struct {
	Text       string
	TokensUsed int
	Err        error
}

func (m Mock) Model() string { return "mock-assistant" }

func (m Mock) Complete(_ context.Context, _, user string) (Completion, error) {
	if m.Err != nil {
		return Completion{}, m.Err
	}
	text := m.Text
	if text == "" {
		text = "Understood. (mock) You asked: \"" + user + "\""
	}
	return Completion{Text: text, Model: m.Model(), TokensUsed: m.TokensUsed}, nil
}
