/*
Package stores defines the narrow interface the recall pipeline expects from
an entity store.  The pipeline treats implementations as black boxes: it has
no visibility into persistence format or consistency model, only into the
three operations below.
*/
package stores

import (
	"context"

	"github.com/theapemachine/recall-go/pkg/record"
)

/*
EntityStore persists structured records as frames grouped by entity name.

AddEntity always appends a new frame; deduplication is the store's own
business, and neither implementation in this module performs any.
ListEntities returns each known entity name once, in first-insertion order.
QueryFrames returns an empty slice (not an error) for an unknown entity.
*/
type EntityStore interface {
	AddEntity(ctx context.Context, rec *record.StructuredRecord) (record.Frame, error)
	ListEntities(ctx context.Context) ([]string, error)
	QueryFrames(ctx context.Context, entity string) ([]record.Frame, error)
}
