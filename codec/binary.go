package codec

import (
	"encoding"
	"fmt"
)

// Binary is the compact binary codec.
//
// It delegates to the value's own encoding.BinaryMarshaler implementation,
// so it only accepts values that define a stable binary form (Store,
// StoreMap). Kind tags are frozen wire bytes, which makes this the
// preferred codec for persisted snapshots.
type Binary struct{}

// Marshal encodes the value using its BinaryMarshaler implementation.
func (Binary) Marshal(v any) ([]byte, error) {
	m, ok := v.(encoding.BinaryMarshaler)
	if !ok {
		return nil, fmt.Errorf("binary codec: %T does not implement encoding.BinaryMarshaler", v)
	}
	return m.MarshalBinary()
}

// Unmarshal decodes the data using the target's BinaryUnmarshaler implementation.
func (Binary) Unmarshal(data []byte, v any) error {
	u, ok := v.(encoding.BinaryUnmarshaler)
	if !ok {
		return fmt.Errorf("binary codec: %T does not implement encoding.BinaryUnmarshaler", v)
	}
	return u.UnmarshalBinary(data)
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }
