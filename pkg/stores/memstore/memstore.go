/*
Package memstore provides a small in-memory EntityStore.  It keeps the data
structures minimal: a frames map keyed by entity name plus an ordered name
slice, guarded by a single RWMutex.  Good enough for unit tests and demos;
persistent deployments should use the sqlite store.
*/
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/recall-go/pkg/record"
)

// Store is an in-memory EntityStore keeping insertion order.
type Store struct {
	mu     sync.RWMutex
	frames map[string][]record.Frame
	order  []string
}

// New returns an empty Store instance.
func New() *Store {
	return &Store{
		frames: make(map[string][]record.Frame),
	}
}

// AddEntity appends a new frame for the record's entity.  The entity name is
// registered on first sight; later ingestions keep its original position.
func (s *Store) AddEntity(ctx context.Context, rec *record.StructuredRecord) (record.Frame, error) {
	if err := rec.Validate(); err != nil {
		return record.Frame{}, err
	}

	frame := record.Frame{
		ID:            uuid.NewString(),
		Entity:        rec.Name,
		Category:      rec.Category,
		Properties:    rec.Properties,
		Relationships: rec.Relationships,
		CreatedAt:     time.Now().UTC(),
	}

	s.mu.Lock()
	if _, ok := s.frames[rec.Name]; !ok {
		s.order = append(s.order, rec.Name)
	}
	s.frames[rec.Name] = append(s.frames[rec.Name], frame)
	s.mu.Unlock()

	return frame, nil
}

// ListEntities returns entity names in first-insertion order.
func (s *Store) ListEntities(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	s.mu.RUnlock()
	return out, nil
}

// QueryFrames returns the entity's frames in insertion order, or an empty
// slice when the entity is unknown.
func (s *Store) QueryFrames(ctx context.Context, entity string) ([]record.Frame, error) {
	s.mu.RLock()
	frames := s.frames[entity]
	out := make([]record.Frame, len(frames))
	copy(out, frames)
	s.mu.RUnlock()
	return out, nil
}
