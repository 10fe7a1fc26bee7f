package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theapemachine/recall-go/pkg/errors"
)

func TestNewOpenAIProvider(t *testing.T) {
	t.Run("missing credential is fatal", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		_, err := NewOpenAIProvider()
		assert.ErrorIs(t, err, errors.ErrMissingCredential)
	})

	t.Run("environment key is picked up", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "test-key")

		prvdr, err := NewOpenAIProvider()
		require.NoError(t, err)
		assert.NotNil(t, prvdr.client)
	})

	t.Run("injected client skips the environment", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		client := newOpenAIClient("injected")
		prvdr, err := NewOpenAIProvider(WithOpenAIClient(&client))

		require.NoError(t, err)
		assert.NotNil(t, prvdr.client)
	})
}

func TestOpenAIBuildParams(t *testing.T) {
	client := newOpenAIClient("test")
	prvdr := &OpenAIProvider{client: &client}

	t.Run("json mode sets the response format", func(t *testing.T) {
		params := prvdr.buildParams(Request{
			Model:       "gpt-4o",
			Messages:    []Message{SystemMessage("extract"), UserMessage("some text")},
			Temperature: 0.3,
			JSONOnly:    true,
		})

		assert.EqualValues(t, "gpt-4o", params.Model)
		assert.Len(t, params.Messages, 2)
		assert.NotNil(t, params.ResponseFormat.OfJSONObject)
		assert.False(t, params.MaxTokens.Valid())
	})

	t.Run("plain mode leaves the response format open", func(t *testing.T) {
		params := prvdr.buildParams(Request{
			Model:       "gpt-4o",
			Messages:    []Message{SystemMessage("answer")},
			Temperature: 0.3,
			MaxTokens:   500,
		})

		assert.Nil(t, params.ResponseFormat.OfJSONObject)
		require.True(t, params.MaxTokens.Valid())
		assert.Equal(t, int64(500), params.MaxTokens.Value)
	})
}

func TestConvertMessages(t *testing.T) {
	out := convertMessages([]Message{
		SystemMessage("be terse"),
		UserMessage("hello"),
		{Role: RoleAssistant, Content: "hi"},
		{Role: Role("unknown"), Content: "dropped"},
	})

	// The unknown role is dropped rather than mislabeled.
	assert.Len(t, out, 3)
}

func TestNewOpenAIEmbedder(t *testing.T) {
	t.Run("missing credential is fatal", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		_, err := NewOpenAIEmbedder()
		assert.ErrorIs(t, err, errors.ErrMissingCredential)
	})

	t.Run("defaults to the small embedding model", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "test-key")

		embedder, err := NewOpenAIEmbedder()
		require.NoError(t, err)
		assert.Equal(t, "text-embedding-3-small", embedder.Model)
	})

	t.Run("model override", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "test-key")

		embedder, err := NewOpenAIEmbedder(WithOpenAIEmbedderModel("text-embedding-3-large"))
		require.NoError(t, err)
		assert.Equal(t, "text-embedding-3-large", embedder.Model)
	})
}
