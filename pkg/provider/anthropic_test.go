package provider

import (
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theapemachine/recall-go/pkg/errors"
)

func TestNewAnthropicProvider(t *testing.T) {
	t.Run("missing credential is fatal", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "")

		_, err := NewAnthropicProvider()
		assert.ErrorIs(t, err, errors.ErrMissingCredential)
	})

	t.Run("injected client skips the environment", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "")

		client := anthropic.NewClient()
		prvdr, err := NewAnthropicProvider(WithAnthropicClient(&client))

		require.NoError(t, err)
		assert.NotNil(t, prvdr.client)
	})
}

func TestAnthropicBuildParams(t *testing.T) {
	prvdr := &AnthropicProvider{}

	t.Run("system messages move to the system field", func(t *testing.T) {
		params := prvdr.buildParams(Request{
			Model: "claude-sonnet-4-0",
			Messages: []Message{
				SystemMessage("be terse"),
				UserMessage("hello"),
			},
			MaxTokens: 500,
		})

		require.Len(t, params.System, 1)
		assert.Equal(t, "be terse", params.System[0].Text)
		assert.Len(t, params.Messages, 1)
		assert.Equal(t, int64(500), params.MaxTokens)
	})

	t.Run("system-only prompt gets a placeholder user message", func(t *testing.T) {
		params := prvdr.buildParams(Request{
			Model:    "claude-sonnet-4-0",
			Messages: []Message{SystemMessage("answer from context")},
		})

		require.Len(t, params.System, 1)
		assert.Len(t, params.Messages, 1)
	})

	t.Run("zero max tokens falls back to the default cap", func(t *testing.T) {
		params := prvdr.buildParams(Request{
			Model:    "claude-sonnet-4-0",
			Messages: []Message{UserMessage("hello")},
		})

		assert.Equal(t, int64(defaultAnthropicMaxTokens), params.MaxTokens)
	})
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, StripFences(`{"a": 1}`))
	assert.Equal(t, `{"a": 1}`, StripFences("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, StripFences("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, StripFences("  \n```json\n{\"a\": 1}\n```\n  "))
}
