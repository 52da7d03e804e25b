package metastore

import (
	"fmt"
	"math"
)

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for user input and legacy APIs. Signed
// integers become Int32, unsigned integers become Uint64 and floats become
// Float32, with range checks where the conversion could otherwise be
// silently lossy.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		if x < math.MinInt32 || x > math.MaxInt32 {
			return Value{}, fmt.Errorf("metastore int out of int32 range: %d", x)
		}
		return Int32(int32(x)), nil
	case int8:
		return Int32(int32(x)), nil
	case int16:
		return Int32(int32(x)), nil
	case int32:
		return Int32(x), nil
	case int64:
		if x < math.MinInt32 || x > math.MaxInt32 {
			return Value{}, fmt.Errorf("metastore int64 out of int32 range: %d", x)
		}
		return Int32(int32(x)), nil
	case uint:
		return Uint64(uint64(x)), nil
	case uint8:
		return Uint64(uint64(x)), nil
	case uint16:
		return Uint64(uint64(x)), nil
	case uint32:
		return Uint64(uint64(x)), nil
	case uint64:
		return Uint64(x), nil
	case float32:
		return Float32(x), nil
	case float64:
		if !math.IsInf(x, 0) && math.Abs(x) > math.MaxFloat32 {
			return Value{}, fmt.Errorf("metastore float64 out of float32 range: %g", x)
		}
		return Float32(float32(x)), nil
	case Vector3:
		return Vec3(x.X, x.Y, x.Z), nil
	case [3]float32:
		return Vec3(x[0], x[1], x[2]), nil
	case []float32:
		if len(x) != 3 {
			return Value{}, fmt.Errorf("metastore vector must have 3 components, got %d", len(x))
		}
		return Vec3(x[0], x[1], x[2]), nil
	default:
		return Value{}, fmt.Errorf("unsupported metadata value type %T", v)
	}
}

// FromPairs builds a store from ordered (key, value) pairs.
// Slot order and duplicate keys are preserved.
func FromPairs(pairs []Pair) *Store {
	s := New(len(pairs))
	for i, p := range pairs {
		s.SetValue(i, p.Key, p.Value)
	}
	return s
}

// FromMap builds a store from a legacy untyped map.
//
// Map iteration order is not deterministic, so slot order is unspecified;
// use FromPairs when order matters.
func FromMap(m map[string]any) (*Store, error) {
	s := New(len(m))
	i := 0
	for k, raw := range m {
		v, err := FromAny(raw)
		if err != nil {
			return nil, err
		}
		s.SetValue(i, k, v)
		i++
	}
	return s, nil
}

// ToMap converts the store to a legacy untyped map.
//
// Duplicate keys collapse to the first occurrence in index order,
// matching the keyed-lookup contract. Absent slots with empty keys are
// skipped.
func (s *Store) ToMap() map[string]any {
	m := make(map[string]any, len(s.values))
	for key, v := range s.All() {
		if key == "" && !v.IsValid() {
			continue
		}
		if _, exists := m[key]; exists {
			continue
		}
		m[key] = v.Any()
	}
	return m
}
