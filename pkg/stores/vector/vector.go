/*
Package vector maintains an embedded semantic index over ingested frames,
backed by chromem-go.  The index is a supplement to the entity store: writes
to it are best-effort and reads power the semantic Search operation only.
*/
package vector

import (
	"context"
	"encoding/json"
	"fmt"

	chromem "github.com/philippgille/chromem-go"
	"github.com/theapemachine/recall-go/pkg/provider"
	"github.com/theapemachine/recall-go/pkg/record"
)

const collectionName = "frames"

// Index wraps a chromem-go collection plus the embedder that feeds it.
type Index struct {
	db       *chromem.DB
	col      *chromem.Collection
	embedder provider.Embedder
}

// New creates an empty in-memory index.
func New(embedder provider.Embedder) (*Index, error) {
	db := chromem.NewDB()

	// No embedding func: we supply embeddings ourselves.  Default cosine
	// distance.
	col, err := db.CreateCollection(collectionName, nil, nil)

	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &Index{db: db, col: col, embedder: embedder}, nil
}

// Add embeds the frame's JSON serialization and stores it, keyed by frame ID.
func (ix *Index) Add(ctx context.Context, frame record.Frame) error {
	content, err := json.Marshal(frame)

	if err != nil {
		return fmt.Errorf("serialize frame: %w", err)
	}

	embedding, err := ix.embedder.Embed(ctx, string(content))

	if err != nil {
		return fmt.Errorf("embed frame: %w", err)
	}

	doc := chromem.Document{
		ID:        frame.ID,
		Content:   string(content),
		Embedding: embedding,
		Metadata:  map[string]string{"entity": frame.Entity},
	}

	if err := ix.col.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("add document: %w", err)
	}

	return nil
}

// Search returns up to limit frames ranked by similarity to the query.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]record.Frame, error) {
	if ix.col.Count() == 0 {
		return nil, nil
	}

	embedding, err := ix.embedder.Embed(ctx, query)

	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	// chromem requires nResults <= collection size.
	if count := ix.col.Count(); limit > count {
		limit = count
	}

	results, err := ix.col.QueryEmbedding(ctx, embedding, limit, nil, nil)

	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}

	frames := make([]record.Frame, 0, len(results))

	for _, result := range results {
		var frame record.Frame

		if err := json.Unmarshal([]byte(result.Content), &frame); err != nil {
			continue
		}

		frames = append(frames, frame)
	}

	return frames, nil
}
