package assistant

import "encoding/json"

// Request is the JSON body of POST /ai-assistant. History arrives as raw JSON
// so malformed shapes degrade to an empty history instead of a bind error.
type Request struct {
	Question string          `json:"question"`
	History  json.RawMessage `json:"history"`
}

// Turn is one prior exchange supplied by the client.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Result is the outcome of one Answer call. OK discriminates the two shapes:
// a successful answer or a failure with an HTTP-style status.
type Result struct {
	OK         bool
	Answer     string
	Model      string
	TokensUsed int
	Err        string
	Status     int
}

// SuccessResponse is the wire shape for an answered question.
type SuccessResponse struct {
	Success    bool   `json:"success"`
	Answer     string `json:"answer"`
	ModelUsed  string `json:"model_used"`
	TokensUsed int    `json:"tokens_used"`
}

// ErrorResponse is the wire shape for every failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
