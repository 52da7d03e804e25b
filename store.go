package metastore

import (
	"fmt"
	"iter"
)

// Store is an ordered, fixed-capacity collection of (key, Value) pairs
// attached to a node.
//
// The property count is fixed at construction; every indexed operation on
// a slot outside [0, Len()) is a caller error and panics. Keys are not
// required to be unique: keyed lookup returns the first match in index
// order. Slots start absent (zero Value) until populated via Set/SetValue.
//
// A Store is a plain single-owner value container with no internal
// synchronization. Share it across goroutines only when externally
// immutable.
type Store struct {
	keys   []string
	values []Value
}

// New creates a Store with a fixed number of property slots.
// numProperties may be zero; such a store is empty but fully usable.
func New(numProperties int) *Store {
	if numProperties < 0 {
		panic(fmt.Sprintf("metastore: negative property count %d", numProperties))
	}
	return &Store{
		keys:   make([]string, numProperties),
		values: make([]Value, numProperties),
	}
}

func (s *Store) boundsCheck(index int) {
	if index < 0 || index >= len(s.values) {
		panic(fmt.Sprintf("metastore: index %d out of range [0, %d)", index, len(s.values)))
	}
}

// Len returns the fixed property count.
func (s *Store) Len() int {
	return len(s.values)
}

// SetValue stores key and a tagged value at the given slot, overwriting
// any previous pair there.
func (s *Store) SetValue(index int, key string, v Value) {
	s.boundsCheck(index)
	s.keys[index] = key
	s.values[index] = v
}

// ValueAt returns the tagged value at the given slot.
// Absent slots yield the zero Value.
func (s *Store) ValueAt(index int) Value {
	s.boundsCheck(index)
	return s.values[index]
}

// KeyAt returns the key at the given slot.
func (s *Store) KeyAt(index int) string {
	s.boundsCheck(index)
	return s.keys[index]
}

// Index returns the slot of the first occurrence of key in index order.
func (s *Store) Index(key string) (int, bool) {
	for i, k := range s.keys {
		if k == key {
			return i, true
		}
	}
	return 0, false
}

// Value returns the tagged value paired with the first occurrence of key.
func (s *Store) Value(key string) (Value, bool) {
	i, ok := s.Index(key)
	if !ok {
		return Value{}, false
	}
	return s.values[i], true
}

// Keys returns a copy of the key sequence.
func (s *Store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// All iterates the (key, value) pairs in index order, including absent
// slots.
func (s *Store) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, k := range s.keys {
			if !yield(k, s.values[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}
	c := New(len(s.values))
	copy(c.keys, s.keys)
	copy(c.values, s.values)
	return c
}

// Equal reports whether two stores hold the same pairs in the same order.
func (s *Store) Equal(o *Store) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.values) != len(o.values) {
		return false
	}
	for i := range s.values {
		if s.keys[i] != o.keys[i] || !s.values[i].Equal(o.values[i]) {
			return false
		}
	}
	return true
}

// Set stores key and a payload of type T at the given slot.
//
// The value is tagged via the compile-time registry; any previously held
// value at the slot is released by the overwrite.
func Set[T Payload](s *Store, index int, key string, v T) {
	s.SetValue(index, key, Of(v))
}

// Get copies the payload at the given slot into out.
//
// It returns false and leaves *out untouched when the slot is absent or
// its kind does not match T. This check-before-read is the safety contract
// that replaces unchecked reinterpretation of erased storage.
func Get[T Payload](s *Store, index int, out *T) bool {
	s.boundsCheck(index)
	v, ok := As[T](s.values[index])
	if !ok {
		return false
	}
	*out = v
	return true
}

// Find copies the payload paired with the first occurrence of key into
// out. It returns false, leaving *out untouched, when no key matches or
// the first match holds a different kind.
func Find[T Payload](s *Store, key string, out *T) bool {
	i, ok := s.Index(key)
	if !ok {
		return false
	}
	return Get(s, i, out)
}
