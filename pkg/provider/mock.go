package provider

import (
	"context"
	"hash/fnv"
)

/*
MockProvider is a scripted Interface implementation for tests.  It records
every request it receives and replays the configured response or error.
*/
type MockProvider struct {
	Response string
	Err      error
	Requests []Request
}

func (prvdr *MockProvider) Complete(ctx context.Context, req Request) (string, error) {
	prvdr.Requests = append(prvdr.Requests, req)

	if prvdr.Err != nil {
		return "", prvdr.Err
	}

	return prvdr.Response, nil
}

// MockEmbedder generates deterministic embeddings for testing.
type MockEmbedder struct{}

func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// Embed creates a deterministic embedding seeded by a hash of the text, so
// identical texts always map to identical vectors.
func (e *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	hasher := fnv.New32a()
	hasher.Write([]byte(text))
	seed := hasher.Sum32()

	embedding := make([]float32, 8)
	for i := range embedding {
		seed = seed*1664525 + 1013904223
		embedding[i] = float32(seed%1000) / 1000.0
	}
	return embedding, nil
}

func (e *MockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		embedding, _ := e.Embed(ctx, text)
		out[i] = embedding
	}
	return out, nil
}
