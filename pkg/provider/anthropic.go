package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/theapemachine/recall-go/pkg/errors"
)

// defaultAnthropicMaxTokens applies when the request leaves MaxTokens unset;
// the Anthropic API requires an explicit cap.
const defaultAnthropicMaxTokens = 1024

/*
AnthropicProvider is a provider for the Anthropic API.
*/
type AnthropicProvider struct {
	client *anthropic.Client
}

type AnthropicProviderOption func(*AnthropicProvider)

func NewAnthropicProvider(options ...AnthropicProviderOption) (*AnthropicProvider, error) {
	prvdr := &AnthropicProvider{}

	for _, option := range options {
		option(prvdr)
	}

	if prvdr.client == nil {
		key := os.Getenv("ANTHROPIC_API_KEY")

		if key == "" {
			return nil, errors.ErrMissingCredential
		}

		client := anthropic.NewClient(option.WithAPIKey(key))
		prvdr.client = &client
	}

	return prvdr, nil
}

/*
Complete issues one message round trip.  The Messages API has no JSON-object
response mode, so JSONOnly requests lean on the prompt and any code fences in
the reply are stripped before returning.
*/
func (prvdr *AnthropicProvider) Complete(ctx context.Context, req Request) (string, error) {
	message, err := prvdr.client.Messages.New(ctx, prvdr.buildParams(req))

	if err != nil {
		return "", err
	}

	text := collectText(message)

	if text == "" {
		return "", fmt.Errorf("message contained no text blocks")
	}

	if req.JSONOnly {
		text = StripFences(text)
	}

	return text, nil
}

func (prvdr *AnthropicProvider) buildParams(req Request) anthropic.MessageNewParams {
	maxTokens := req.MaxTokens

	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(req.Temperature),
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{Text: msg.Content})
		case RoleAssistant:
			params.Messages = append(
				params.Messages,
				anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)),
			)
		default:
			params.Messages = append(
				params.Messages,
				anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)),
			)
		}
	}

	// The Messages API rejects an empty message list, which happens when the
	// caller sends a system-only prompt.
	if len(params.Messages) == 0 {
		params.Messages = append(
			params.Messages,
			anthropic.NewUserMessage(anthropic.NewTextBlock("Respond to the system instructions.")),
		)
	}

	return params
}

func collectText(message *anthropic.Message) string {
	builder := &strings.Builder{}

	for _, block := range message.Content {
		if block.Type == "text" {
			builder.WriteString(block.Text)
		}
	}

	return builder.String()
}

/*
StripFences removes a surrounding markdown code fence from model output, a
habit of providers without a native JSON mode.
*/
func StripFences(text string) string {
	trimmed := strings.TrimSpace(text)

	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")

	// Drop a language tag on the opening fence, e.g. ```json.
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}

	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}

func WithAnthropicClient(client *anthropic.Client) AnthropicProviderOption {
	return func(prvdr *AnthropicProvider) {
		prvdr.client = client
	}
}
