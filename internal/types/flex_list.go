package types

import (
	"encoding/json"
)

// FlexList is a slice that can be unmarshaled from either a single JSON value
// or a JSON array. Reorder payloads with one id arrive as a bare value from
// some clients.
type FlexList[T any] []T

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '[' {
		var slice []T
		if err := json.Unmarshal(data, &slice); err != nil {
			return err
		}
		*f = FlexList[T](slice)
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*f = FlexList[T]{item}
	return nil
}

// Slice converts FlexList[T] back to []T.
func (f FlexList[T]) Slice() []T {
	return []T(f)
}

// Uint64s converts a FlexList of FlexUint64 into a plain []uint64.
func Uint64s(f FlexList[FlexUint64]) []uint64 {
	out := make([]uint64, len(f))
	for i, v := range f {
		out[i] = v.Uint64()
	}
	return out
}
