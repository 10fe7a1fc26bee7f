/*
Package recall orchestrates the text-to-memory pipeline: extraction of
structured records from free text, ingestion into an entity store, and
context-grounded question answering.  Every public operation is synchronous,
issues at most one completion round trip, and returns the uniform
record.QueryResult envelope instead of raising.
*/
package recall

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/recall-go/pkg/errors"
	"github.com/theapemachine/recall-go/pkg/provider"
	"github.com/theapemachine/recall-go/pkg/record"
	"github.com/theapemachine/recall-go/pkg/stores"
	"github.com/theapemachine/recall-go/pkg/stores/vector"
)

const (
	defaultModel        = "gpt-4o"
	defaultTemperature  = 0.3
	defaultMaxTokens    = 500
	defaultContextLimit = 5
	defaultSeparator    = " "
)

/*
Service wires a completion provider and an entity store into the public
operations.  The semantic index is optional; when absent, Search reports a
retrieval failure and ingestion skips indexing.
*/
type Service struct {
	completion   provider.Interface
	store        stores.EntityStore
	index        *vector.Index
	extractModel string
	answerModel  string
	temperature  float64
	maxTokens    int64
	contextLimit int
	separator    string
}

type ServiceOption func(*Service)

func NewService(completion provider.Interface, store stores.EntityStore, options ...ServiceOption) *Service {
	srv := &Service{
		completion:   completion,
		store:        store,
		extractModel: defaultModel,
		answerModel:  defaultModel,
		temperature:  defaultTemperature,
		maxTokens:    defaultMaxTokens,
		contextLimit: defaultContextLimit,
		separator:    defaultSeparator,
	}

	for _, option := range options {
		option(srv)
	}

	return srv
}

/*
ConvertText converts free text into a structured record without persisting
it.  The returned envelope carries the record on success.
*/
func (srv *Service) ConvertText(ctx context.Context, text string) record.QueryResult {
	rec, err := srv.extract(ctx, text)

	if err != nil {
		log.Error("failed to convert text", "error", err)
		return record.Failure(err)
	}

	result := record.Ok("Text converted successfully")
	result.Record = rec
	return result
}

/*
AddToDB extracts a record from the text and hands it to the store.  The
record's identity transfers to the store on success; the envelope echoes the
record and the stored frame.  Two calls with identical text issue two
independent extractions and two independent writes.
*/
func (srv *Service) AddToDB(ctx context.Context, text string) record.QueryResult {
	rec, err := srv.extract(ctx, text)

	if err != nil {
		log.Error("failed to convert text", "error", err)
		return record.Failure(err)
	}

	log.Info("converted text to record", "entity", rec.Name, "category", rec.Category)

	frame, err := srv.store.AddEntity(ctx, rec)

	if err != nil {
		ingErr := &errors.IngestionError{Err: err}
		log.Error("failed to add entity", "entity", rec.Name, "error", err)
		return record.Failure(ingErr)
	}

	if srv.index != nil {
		// Indexing is best-effort; the write contract is the store's alone.
		if err := srv.index.Add(ctx, frame); err != nil {
			log.Warn("failed to index frame", "frame", frame.ID, "error", err)
		}
	}

	result := record.Ok("Successfully added to database")
	result.Record = rec
	result.Data = []record.Frame{frame}
	return result
}

/*
QueryEntity returns the stored frames for one entity.  An absent entity is a
failure envelope with a not-found message, never an empty-data success.
*/
func (srv *Service) QueryEntity(ctx context.Context, name string) record.QueryResult {
	frames, err := srv.store.QueryFrames(ctx, name)

	if err != nil {
		retErr := &errors.RetrievalError{Err: err}
		log.Error("failed to query entity", "entity", name, "error", err)
		return record.Failure(retErr)
	}

	if len(frames) == 0 {
		return record.QueryResult{
			Message: fmt.Sprintf("No entity found with name: %s", name),
		}
	}

	result := record.Ok("Entity found")
	result.Data = frames
	return result
}

/*
QueryByText answers a free-text question grounded in stored context.  An
empty store short-circuits with a fixed message and never invokes the
completion capability.
*/
func (srv *Service) QueryByText(ctx context.Context, question string) record.QueryResult {
	contextText, entities, err := srv.buildContext(ctx)

	if err != nil {
		log.Error("failed to build context", "error", err)
		return record.Failure(err)
	}

	if entities == 0 {
		result := record.Ok("Database is empty")
		result.Response = NoInformationMessage
		return result
	}

	answer, err := srv.completion.Complete(ctx, provider.Request{
		Model:       srv.answerModel,
		Messages:    []provider.Message{provider.SystemMessage(BuildAnswerPrompt(contextText, question))},
		Temperature: srv.temperature,
		MaxTokens:   srv.maxTokens,
	})

	if err != nil {
		ansErr := &errors.AnswerError{Err: err}
		log.Error("failed to answer question", "error", err)
		return record.Failure(ansErr)
	}

	result := record.Ok("Query processed successfully")
	result.Response = answer
	return result
}

// ListAllEntities returns every entity name in store-listing order.
func (srv *Service) ListAllEntities(ctx context.Context) record.QueryResult {
	names, err := srv.store.ListEntities(ctx)

	if err != nil {
		retErr := &errors.RetrievalError{Err: err}
		log.Error("failed to list entities", "error", err)
		return record.Failure(retErr)
	}

	if names == nil {
		names = []string{}
	}

	result := record.Ok("Entities retrieved successfully")
	result.Entities = names
	return result
}

/*
Search runs a semantic query over the frame index and returns the closest
frames.  It requires an index to have been attached at construction.
*/
func (srv *Service) Search(ctx context.Context, query string, limit int) record.QueryResult {
	if srv.index == nil {
		retErr := &errors.RetrievalError{Err: fmt.Errorf("semantic index not configured")}
		return record.Failure(retErr)
	}

	frames, err := srv.index.Search(ctx, query, limit)

	if err != nil {
		retErr := &errors.RetrievalError{Err: err}
		log.Error("semantic search failed", "error", err)
		return record.Failure(retErr)
	}

	result := record.Ok("Search completed")
	result.Data = frames
	return result
}

/*
extract issues the JSON-mode completion call and decodes the result.  Any
transport or decode error surfaces as a single ExtractionError; no partial
record is ever returned.
*/
func (srv *Service) extract(ctx context.Context, text string) (*record.StructuredRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &errors.ExtractionError{Err: fmt.Errorf("input text must not be empty")}
	}

	raw, err := srv.completion.Complete(ctx, provider.Request{
		Model: srv.extractModel,
		Messages: []provider.Message{
			provider.SystemMessage(ExtractionPrompt),
			provider.UserMessage(text),
		},
		Temperature: srv.temperature,
		JSONOnly:    true,
	})

	if err != nil {
		return nil, &errors.ExtractionError{Err: err}
	}

	rec, err := record.Decode([]byte(provider.StripFences(raw)))

	if err != nil {
		malformed := &errors.MalformedOutputError{Raw: raw, Err: err}

		var missing *record.MissingKeysError

		if stderrors.As(err, &missing) {
			malformed.Missing = missing.Keys
		}

		return nil, &errors.ExtractionError{Err: malformed}
	}

	return rec, nil
}

/*
buildContext serializes the frames of the first contextLimit entities (in
store-listing order) and joins the non-empty blocks with the separator.  The
cutoff applies to the raw entity list: entities without frames are skipped
but still consume a slot.  The second return value is the raw entity count.
*/
func (srv *Service) buildContext(ctx context.Context) (string, int, error) {
	names, err := srv.store.ListEntities(ctx)

	if err != nil {
		return "", 0, &errors.RetrievalError{Err: err}
	}

	if len(names) == 0 {
		return "", 0, nil
	}

	limit := srv.contextLimit

	if limit > len(names) {
		limit = len(names)
	}

	blocks := make([]string, 0, limit)

	for _, name := range names[:limit] {
		frames, err := srv.store.QueryFrames(ctx, name)

		if err != nil {
			return "", 0, &errors.RetrievalError{Err: err}
		}

		if len(frames) == 0 {
			continue
		}

		serialized, err := json.MarshalIndent(frames, "", "  ")

		if err != nil {
			return "", 0, &errors.RetrievalError{Err: err}
		}

		blocks = append(blocks, string(serialized))
	}

	return strings.Join(blocks, srv.separator), len(names), nil
}

func WithModels(extractModel, answerModel string) ServiceOption {
	return func(srv *Service) {
		srv.extractModel = extractModel
		srv.answerModel = answerModel
	}
}

func WithTemperature(temperature float64) ServiceOption {
	return func(srv *Service) {
		srv.temperature = temperature
	}
}

func WithMaxTokens(maxTokens int64) ServiceOption {
	return func(srv *Service) {
		srv.maxTokens = maxTokens
	}
}

// WithContextLimit overrides the default 5-entity context cutoff.
func WithContextLimit(limit int) ServiceOption {
	return func(srv *Service) {
		if limit > 0 {
			srv.contextLimit = limit
		}
	}
}

// WithSeparator overrides the default single-space context join.
func WithSeparator(separator string) ServiceOption {
	return func(srv *Service) {
		srv.separator = separator
	}
}

// WithIndex attaches a semantic frame index.
func WithIndex(index *vector.Index) ServiceOption {
	return func(srv *Service) {
		srv.index = index
	}
}
