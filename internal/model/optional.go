package model

import "encoding/json"

// Optional carries a value that the supplier may not publish.
// The zero value is unavailable.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps an available value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an unavailable value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is available.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Available reports whether a value is present.
func (o Optional[T]) Available() bool {
	return o.ok
}

// OrElse returns the value, or fallback when unavailable.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// MarshalJSON encodes an unavailable value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as unavailable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
