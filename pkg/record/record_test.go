package record

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		rec, err := Decode([]byte(`{
			"category": "Semantic",
			"name": "Python_Language",
			"properties": {
				"creator": "Guido van Rossum",
				"paradigms": ["object-oriented", "imperative", "functional"]
			},
			"relationships": {
				"related_to": ["Programming_Languages"]
			}
		}`))

		require.NoError(t, err)
		assert.Equal(t, Semantic, rec.Category)
		assert.Equal(t, "Python_Language", rec.Name)
		assert.Equal(t, "Guido van Rossum", rec.Properties["creator"].Value())
		assert.True(t, rec.Properties["paradigms"].IsList())
		assert.Len(t, rec.Properties["paradigms"].Values(), 3)
		assert.Equal(t, []string{"Programming_Languages"}, rec.Relationships["related_to"])
	})

	t.Run("missing keys", func(t *testing.T) {
		_, err := Decode([]byte(`{"category": "Semantic", "name": "Thing"}`))

		require.Error(t, err)

		var missing *MissingKeysError
		require.True(t, errors.As(err, &missing))
		assert.ElementsMatch(t, []string{"properties", "relationships"}, missing.Keys)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := Decode([]byte(`["not", "an", "object"]`))
		assert.Error(t, err)
	})

	t.Run("unrecognized category", func(t *testing.T) {
		_, err := Decode([]byte(`{
			"category": "Imaginary",
			"name": "Thing",
			"properties": {},
			"relationships": {}
		}`))
		assert.Error(t, err)
	})

	t.Run("category is case-insensitive", func(t *testing.T) {
		rec, err := Decode([]byte(`{
			"category": "episodic",
			"name": "First_Project",
			"properties": {},
			"relationships": {}
		}`))

		require.NoError(t, err)
		assert.Equal(t, Episodic, rec.Category)
	})

	t.Run("name is normalized", func(t *testing.T) {
		rec, err := Decode([]byte(`{
			"category": "Semantic",
			"name": "Python  Language",
			"properties": {},
			"relationships": {}
		}`))

		require.NoError(t, err)
		assert.Equal(t, "Python_Language", rec.Name)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := Decode([]byte(`{
			"category": "Semantic",
			"name": "   ",
			"properties": {},
			"relationships": {}
		}`))
		assert.Error(t, err)
	})
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"Semantic", "Episodic", "Procedural", "semantic", " PROCEDURAL "} {
		category, err := ParseCategory(valid)
		require.NoError(t, err, valid)
		assert.True(t, category.Valid())
	}

	_, err := ParseCategory("Declarative")
	assert.Error(t, err)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Python_Language", NormalizeName("Python Language"))
	assert.Equal(t, "Python_Language", NormalizeName("  Python   Language  "))
	assert.Equal(t, "Already_Normal", NormalizeName("Already_Normal"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestPropertyValueRoundTrip(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		var pv PropertyValue

		require.NoError(t, json.Unmarshal([]byte(`"red"`), &pv))
		assert.False(t, pv.IsList())
		assert.Equal(t, "red", pv.Value())

		out, err := json.Marshal(pv)
		require.NoError(t, err)
		assert.JSONEq(t, `"red"`, string(out))
	})

	t.Run("number scalar", func(t *testing.T) {
		var pv PropertyValue

		require.NoError(t, json.Unmarshal([]byte(`1991`), &pv))
		assert.Equal(t, float64(1991), pv.Value())
	})

	t.Run("list", func(t *testing.T) {
		var pv PropertyValue

		require.NoError(t, json.Unmarshal([]byte(`["a", "b"]`), &pv))
		assert.True(t, pv.IsList())
		assert.Nil(t, pv.Value())

		out, err := json.Marshal(pv)
		require.NoError(t, err)
		assert.JSONEq(t, `["a", "b"]`, string(out))
	})

	t.Run("constructors", func(t *testing.T) {
		assert.Equal(t, "x", Scalar("x").Value())
		assert.True(t, List("a", "b").IsList())
	})
}
