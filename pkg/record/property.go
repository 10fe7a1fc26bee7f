package record

import "encoding/json"

/*
PropertyValue is a scalar-or-list union.  Model output freely mixes single
values ("creator": "Guido van Rossum") with lists ("paradigms": [...]), and
the original shape must survive a round trip through storage.
*/
type PropertyValue struct {
	values []any
	list   bool
}

// Scalar wraps a single value.
func Scalar(v any) PropertyValue {
	return PropertyValue{values: []any{v}}
}

// List wraps a list of values, keeping list shape even when empty.
func List(vs ...any) PropertyValue {
	return PropertyValue{values: vs, list: true}
}

// IsList reports whether the value was a JSON array.
func (pv PropertyValue) IsList() bool { return pv.list }

// Values returns the list elements, or nil for a scalar.
func (pv PropertyValue) Values() []any {
	if !pv.list {
		return nil
	}

	return pv.values
}

// Value returns the scalar value, or nil for a list.
func (pv PropertyValue) Value() any {
	if pv.list || len(pv.values) == 0 {
		return nil
	}

	return pv.values[0]
}

func (pv PropertyValue) MarshalJSON() ([]byte, error) {
	if pv.list {
		return json.Marshal(pv.values)
	}

	if len(pv.values) == 0 {
		return []byte("null"), nil
	}

	return json.Marshal(pv.values[0])
}

func (pv *PropertyValue) UnmarshalJSON(data []byte) error {
	var list []any

	if err := json.Unmarshal(data, &list); err == nil {
		*pv = PropertyValue{values: list, list: true}
		return nil
	}

	var scalar any

	if err := json.Unmarshal(data, &scalar); err != nil {
		return err
	}

	*pv = PropertyValue{values: []any{scalar}}
	return nil
}
