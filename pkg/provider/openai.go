package provider

import (
	"context"
	"fmt"
	"os"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/theapemachine/recall-go/pkg/errors"
)

/*
roleMap compresses buildParams' switch.
*/
var roleMap = map[Role]func(string) openai.ChatCompletionMessageParamUnion{
	RoleSystem:    openai.SystemMessage[string],
	RoleUser:      openai.UserMessage[string],
	RoleAssistant: openai.AssistantMessage[string],
}

/*
OpenAIProvider is a provider for the OpenAI API.
*/
type OpenAIProvider struct {
	client *openai.Client
}

type OpenAIProviderOption func(*OpenAIProvider)

/*
NewOpenAIProvider constructs a provider, reading OPENAI_API_KEY from the
environment unless a client is injected.  A missing credential is a fatal
construction-time error, never a deferred runtime one.
*/
func NewOpenAIProvider(options ...OpenAIProviderOption) (*OpenAIProvider, error) {
	prvdr := &OpenAIProvider{}

	for _, option := range options {
		option(prvdr)
	}

	if prvdr.client == nil {
		key := os.Getenv("OPENAI_API_KEY")

		if key == "" {
			return nil, errors.ErrMissingCredential
		}

		client := newOpenAIClient(key)
		prvdr.client = &client
	}

	return prvdr, nil
}

func newOpenAIClient(key string) openai.Client {
	return openai.NewClient(option.WithAPIKey(key))
}

// Complete issues one chat completion round trip and returns the raw text of
// the first choice.
func (prvdr *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	completion, err := prvdr.client.Chat.Completions.New(ctx, prvdr.buildParams(req))

	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

func (prvdr *OpenAIProvider) buildParams(req Request) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    convertMessages(req.Messages),
		Temperature: openai.Float(req.Temperature),
	}

	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}

	if req.JSONOnly {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	return params
}

func convertMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for _, msg := range messages {
		if fn, ok := roleMap[msg.Role]; ok {
			out = append(out, fn(msg.Content))
		}
	}

	return out
}

// OpenAIEmbedder generates embeddings through the OpenAI embeddings API.
type OpenAIEmbedder struct {
	api   openai.Client
	Model string
}

type OpenAIEmbedderOption func(*OpenAIEmbedder)

func NewOpenAIEmbedder(options ...OpenAIEmbedderOption) (*OpenAIEmbedder, error) {
	embedder := &OpenAIEmbedder{Model: "text-embedding-3-small"}

	for _, option := range options {
		option(embedder)
	}

	if embedder.api.Options == nil {
		key := os.Getenv("OPENAI_API_KEY")

		if key == "" {
			return nil, errors.ErrMissingCredential
		}

		embedder.api = newOpenAIClient(key)
	}

	return embedder, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.Model),
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: []string{text}},
	})
	if err != nil {
		return nil, err
	}
	return toFloat32(resp.Data[0].Embedding), nil
}

func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.Model),
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
	})
	if err != nil {
		return nil, err
	}

	out := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		out[i] = toFloat32(d.Embedding)
	}
	return out, nil
}

func toFloat32(f []float64) []float32 {
	out := make([]float32, len(f))
	for i, v := range f {
		out[i] = float32(v)
	}
	return out
}

func WithOpenAIClient(client *openai.Client) OpenAIProviderOption {
	return func(prvdr *OpenAIProvider) {
		prvdr.client = client
	}
}

func WithOpenAIEmbedderModel(model string) OpenAIEmbedderOption {
	return func(e *OpenAIEmbedder) {
		e.Model = model
	}
}

func WithOpenAIEmbedderClient(client *openai.Client) OpenAIEmbedderOption {
	return func(e *OpenAIEmbedder) {
		e.api = *client
	}
}
