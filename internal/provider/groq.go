package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// DefaultGroqURL is the Groq OpenAI-compatible chat-completions endpoint.
const DefaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"

const defaultGroqModel = "meta-llama/llama-4-scout-17b-16e-instruct"

// Fixed decoding parameters: low randomness, bounded answer length.
const (
	temperature = 0.2
	maxTokens   = 1000
)

// Groq calls the Groq chat-completions API.
type Groq struct {
	apiKey string
	model  string
	url    string
	client *http.Client
}

// NewGroq builds a Groq client. Model and url fall back to defaults when
// empty; the API key is required.
func NewGroq(apiKey, model, url string) (*Groq, error) {
	if apiKey == "" {
		return nil, errors.New("groq: empty API key")
	}
	if model == "" {
		model = defaultGroqModel
	}
	if url == "" {
		url = DefaultGroqURL
	}
	return &Groq{
		apiKey: apiKey,
		model:  model,
		url:    url,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (g *Groq) Model() string { return g.model }

// Complete sends one chat-completion request and extracts the first choice's
// text, the reported model and the total token usage. The request carries ctx
// so an aborted caller cancels the outbound call.
func (g *Groq) Complete(ctx context.Context, system, user string) (Completion, error) {
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	payload := struct {
		Model       string    `json:"model"`
		Messages    []message `json:"messages"`
		Temperature float64   `json:"temperature"`
		MaxTokens   int       `json:"max_tokens"`
	}{
		Model: g.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(b))
	if err != nil {
		return Completion{}, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Completion{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error.Message != "" {
			return Completion{}, errors.New(e.Error.Message)
		}
		return Completion{}, errors.New("groq error: " + resp.Status)
	}

	var out struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Completion{}, err
	}
	if len(out.Choices) == 0 {
		return Completion{}, errors.New("empty completion from groq")
	}

	model := out.Model
	if model == "" {
		model = g.model
	}
	return Completion{
		Text:       out.Choices[0].Message.Content,
		Model:      model,
		TokensUsed: out.Usage.TotalTokens,
	}, nil
}
