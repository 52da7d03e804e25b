package metastore

import (
	"encoding/json"
	"unique"
)

// Pair is one (key, value) slot of a Store in serialized form.
type Pair struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	type Alias Value
	aux := &struct {
		S string `json:"s,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(&v),
	}
	if v.Kind == KindString {
		aux.S = v.s.Value()
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	type Alias Value
	aux := &struct {
		S string `json:"s,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(v),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if v.Kind == KindString {
		v.s = unique.Make(aux.S)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
//
// A Store serializes as an ordered array of pairs, preserving slot order
// and duplicate keys. Absent slots appear with an invalid-kind value and
// round-trip as absent.
func (s *Store) MarshalJSON() ([]byte, error) {
	pairs := make([]Pair, len(s.values))
	for i := range s.values {
		pairs[i] = Pair{Key: s.keys[i], Value: s.values[i]}
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON implements json.Unmarshaler.
// The decoded store's property count is the length of the pair array.
func (s *Store) UnmarshalJSON(data []byte) error {
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	s.keys = make([]string, len(pairs))
	s.values = make([]Value, len(pairs))
	for i, p := range pairs {
		s.keys[i] = p.Key
		s.values[i] = p.Value
	}
	return nil
}
