package provider

import "context"

// Role tags a chat message with its speaker.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged message in a completion request.
type Message struct {
	Role    Role
	Content string
}

func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

/*
Request describes one completion call.  JSONOnly asks the provider to honor a
JSON-object response mode where the underlying API supports one; providers
without a native mode rely on the prompt alone.
*/
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int64
	JSONOnly    bool
}

/*
Interface abstracts a text-completion capability.  Implementations issue one
synchronous round trip per call and surface transport errors unwrapped; the
caller owns retry policy.
*/
type Interface interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Embedder represents a service capable of generating embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
