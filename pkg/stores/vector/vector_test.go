package vector

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theapemachine/recall-go/pkg/provider"
	"github.com/theapemachine/recall-go/pkg/record"
)

func testFrame(id, entity string) record.Frame {
	return record.Frame{
		ID:       id,
		Entity:   entity,
		Category: record.Semantic,
		Properties: map[string]record.PropertyValue{
			"kind": record.Scalar("test"),
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestSearchEmptyIndex(t *testing.T) {
	index, err := New(provider.NewMockEmbedder())
	require.NoError(t, err)

	frames, err := index.Search(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestAddAndSearch(t *testing.T) {
	index, err := New(provider.NewMockEmbedder())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, index.Add(ctx, testFrame("f1", "Python_Language")))
	require.NoError(t, index.Add(ctx, testFrame("f2", "Tesla_Model_3")))

	frames, err := index.Search(ctx, "programming languages", 2)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	entities := []string{frames[0].Entity, frames[1].Entity}
	assert.ElementsMatch(t, []string{"Python_Language", "Tesla_Model_3"}, entities)
}

func TestSearchClampsLimit(t *testing.T) {
	index, err := New(provider.NewMockEmbedder())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, index.Add(ctx, testFrame("f1", "Only_Entity")))

	// Asking for more results than documents must not error.
	frames, err := index.Search(ctx, "anything", 10)
	require.NoError(t, err)
	assert.Len(t, frames, 1)
}

func TestSearchCoversWholeCollection(t *testing.T) {
	index, err := New(provider.NewMockEmbedder())
	require.NoError(t, err)

	ctx := context.Background()

	for i := 0; i < 4; i++ {
		frame := testFrame(fmt.Sprintf("f%d", i), fmt.Sprintf("Entity_%d", i))
		require.NoError(t, index.Add(ctx, frame))
	}

	frames, err := index.Search(ctx, "Entity_2", 4)
	require.NoError(t, err)
	assert.Len(t, frames, 4)
}
