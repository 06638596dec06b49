package models

import (
	"bytes"
	"encoding/json"
)

// Opt is an optional JSON field that distinguishes "absent" from "null".
// After unmarshalling, Set reports whether the key was present at all and
// Value is nil when the key held an explicit null.
type Opt[T any] struct {
	Set   bool
	Value *T
}

// OptOf returns a present Opt holding v.
func OptOf[T any](v T) Opt[T] {
	return Opt[T]{Set: true, Value: &v}
}

// OptNull returns a present Opt holding an explicit null.
func OptNull[T any]() Opt[T] {
	return Opt[T]{Set: true}
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
