// Package patch provides an optional field type for partial updates that
// tells apart an absent JSON key, an explicit null and a value.
package patch

import (
	"bytes"
	"encoding/json"

	"youthcup_backend/internal/shared/apperror"
)

// Field is a JSON field in a partial update body.
//
//	{}              -> Set == false
//	{"x": null}     -> Set == true, Null == true
//	{"x": 3}        -> Set == true, Value == 3
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] { return Field[T]{Set: true, Value: v} }

// Null returns a Field carrying an explicit null.
func Null[T any]() Field[T] { return Field[T]{Set: true, Null: true} }

// HasValue reports whether the field carries a non-null value.
func (f Field[T]) HasValue() bool { return f.Set && !f.Null }

// NotNull returns a validation error naming the field when it carries an
// explicit null. Required fields use it so null cannot blank them.
func (f Field[T]) NotNull(name string) error {
	if f.Set && f.Null {
		return apperror.Validation(name + " cannot be null")
	}
	return nil
}

// UnmarshalJSON is only invoked when the key is present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// Ptr returns the value as a pointer, nil for null or absent.
func (f Field[T]) Ptr() *T {
	if !f.HasValue() {
		return nil
	}
	v := f.Value
	return &v
}
