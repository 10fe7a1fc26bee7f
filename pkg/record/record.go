/*
Package record defines the structured memory model: records extracted from
free text, the frames a store derives from them, and the uniform result
envelope every pipeline operation returns.
*/
package record

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Category classifies a memory record.
type Category string

const (
	Semantic   Category = "Semantic"
	Episodic   Category = "Episodic"
	Procedural Category = "Procedural"
)

// ParseCategory maps free-form input onto one of the three categories,
// ignoring case and surrounding whitespace.
func ParseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "semantic":
		return Semantic, nil
	case "episodic":
		return Episodic, nil
	case "procedural":
		return Procedural, nil
	}

	return "", fmt.Errorf("unrecognized category: %q", raw)
}

// Valid reports whether the category is one of the three known values.
func (category Category) Valid() bool {
	switch category {
	case Semantic, Episodic, Procedural:
		return true
	}

	return false
}

/*
StructuredRecord is the canonical extraction result: a categorized entity
with flat properties and named relationship lists.  All four fields are
required on the wire.
*/
type StructuredRecord struct {
	Category      Category                 `json:"category"`
	Name          string                   `json:"name"`
	Properties    map[string]PropertyValue `json:"properties"`
	Relationships map[string][]string      `json:"relationships"`
}

// Validate checks that the record carries a known category and a usable name.
func (rec *StructuredRecord) Validate() error {
	if rec == nil {
		return fmt.Errorf("record must not be nil")
	}

	if !rec.Category.Valid() {
		return fmt.Errorf("unrecognized category: %q", rec.Category)
	}

	if strings.TrimSpace(rec.Name) == "" {
		return fmt.Errorf("entity name must not be empty")
	}

	return nil
}

var requiredKeys = []string{"category", "name", "properties", "relationships"}

// MissingKeysError reports which of the four required keys the payload lacks.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("record is missing required keys: %v", e.Keys)
}

/*
Decode parses a JSON object into a StructuredRecord.  Presence of all four
required keys is checked on the raw payload before decoding, so a key that
is present but null still counts as present.  The category is normalized to
its canonical casing and the name to underscore form.
*/
func Decode(data []byte) (*StructuredRecord, error) {
	var raw map[string]json.RawMessage

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	var missing []string

	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingKeysError{Keys: missing}
	}

	var rec StructuredRecord

	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	category, err := ParseCategory(string(rec.Category))

	if err != nil {
		return nil, err
	}

	rec.Category = category
	rec.Name = NormalizeName(rec.Name)

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return &rec, nil
}

// NormalizeName collapses whitespace runs into single underscores, so entity
// names are stable lookup keys ("Python Language" becomes "Python_Language").
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

/*
Frame is one persisted observation of an entity.  Stores mint the ID and
timestamp; repeated ingestions of the same entity accumulate frames rather
than merging.
*/
type Frame struct {
	ID            string                   `json:"id"`
	Entity        string                   `json:"entity"`
	Category      Category                 `json:"category"`
	Properties    map[string]PropertyValue `json:"properties,omitempty"`
	Relationships map[string][]string      `json:"relationships,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}
