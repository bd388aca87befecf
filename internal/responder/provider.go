// Package responder generates the pet's chat replies. The default
// provider returns the rule-based draft unchanged; LLM-backed providers
// rephrase it in the pet's voice using conversation history.
package responder

import "context"

// Provider is the core abstraction for reply generation.
type Provider interface {
	// Reply produces the pet's reply for the given request.
	Reply(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes what to send to the provider.
type Request struct {
	// System is the system prompt. Carries the pet's persona and
	// constraints.
	System string

	// Messages is the conversation history, ending with the user's
	// latest message.
	Messages []Message

	// Draft is the rule-based reply composed by the caller. The canned
	// provider returns it verbatim; LLM providers receive it as
	// guidance and may rephrase it.
	Draft string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the provider's output.
type Response struct {
	// Text is the generated reply.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
