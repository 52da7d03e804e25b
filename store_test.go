package metastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundtrip(t *testing.T) {
	// Set followed by Get yields the stored payload for every kind.
	s := New(6)

	Set(s, 0, "flag", true)
	Set(s, 1, "count", int32(-7))
	Set(s, 2, "size", uint64(1<<40))
	Set(s, 3, "scale", float32(0.5))
	Set(s, 4, "name", "cube")
	Set(s, 5, "position", Vector3{X: 1, Y: 2, Z: 3})

	var (
		flag  bool
		count int32
		size  uint64
		scale float32
		name  string
		pos   Vector3
	)
	require.True(t, Get(s, 0, &flag))
	require.True(t, Get(s, 1, &count))
	require.True(t, Get(s, 2, &size))
	require.True(t, Get(s, 3, &scale))
	require.True(t, Get(s, 4, &name))
	require.True(t, Get(s, 5, &pos))

	assert.True(t, flag)
	assert.Equal(t, int32(-7), count)
	assert.Equal(t, uint64(1<<40), size)
	assert.Equal(t, float32(0.5), scale)
	assert.Equal(t, "cube", name)
	assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, pos)
}

func TestStoreTypeMismatchSafety(t *testing.T) {
	s := New(1)
	Set(s, 0, "count", int32(41))

	// A mismatched Get fails and leaves the output at its prior value.
	out := float32(99.5)
	ok := Get(s, 0, &out)
	assert.False(t, ok)
	assert.Equal(t, float32(99.5), out)

	// The slot still holds the original payload.
	var count int32
	require.True(t, Get(s, 0, &count))
	assert.Equal(t, int32(41), count)
}

func TestStoreKeyLookupFirstMatch(t *testing.T) {
	// Duplicate keys are permitted; lookup returns the first match in
	// index order even when a later slot has the requested kind.
	s := New(3)
	Set(s, 0, "a", int32(1))
	Set(s, 1, "b", float32(2.0))
	Set(s, 2, "a", true)

	i, ok := s.Index("a")
	require.True(t, ok)
	assert.Equal(t, 0, i)

	var n int32
	require.True(t, Find(s, "a", &n))
	assert.Equal(t, int32(1), n)

	// The first "a" holds an int32, so a bool lookup fails rather than
	// skipping ahead to slot 2.
	var flag bool
	assert.False(t, Find(s, "a", &flag))

	var missing int32
	assert.False(t, Find(s, "zzz", &missing))
}

func TestStoreResetObservesLatest(t *testing.T) {
	s := New(1)
	Set(s, 0, "k1", "first")
	Set(s, 0, "k2", uint64(2))

	// Only the latest pair is observable.
	assert.Equal(t, "k2", s.KeyAt(0))

	var str string
	assert.False(t, Get(s, 0, &str))

	var u uint64
	require.True(t, Get(s, 0, &u))
	assert.Equal(t, uint64(2), u)

	_, ok := s.Index("k1")
	assert.False(t, ok)
}

func TestStoreAbsentSlot(t *testing.T) {
	s := New(2)
	Set(s, 1, "present", int32(1))

	// Slot 0 was never set: its value is absent and matches no type.
	assert.False(t, s.ValueAt(0).IsValid())

	var b bool
	assert.False(t, Get(s, 0, &b))
	var n int32
	assert.False(t, Get(s, 0, &n))
}

func TestStoreOutOfRangePanics(t *testing.T) {
	s := New(2)

	assert.Panics(t, func() { s.SetValue(2, "k", Bool(true)) })
	assert.Panics(t, func() { s.SetValue(-1, "k", Bool(true)) })
	assert.Panics(t, func() { s.ValueAt(2) })
	assert.Panics(t, func() { s.KeyAt(5) })
	assert.Panics(t, func() {
		var out bool
		Get(s, 2, &out)
	})
	assert.Panics(t, func() { New(-1) })
}

func TestStoreEmpty(t *testing.T) {
	s := New(0)
	assert.Equal(t, 0, s.Len())

	_, ok := s.Index("anything")
	assert.False(t, ok)

	for range s.All() {
		t.Fatal("empty store yielded a pair")
	}

	assert.True(t, s.Equal(New(0)))
}

func TestStoreClone(t *testing.T) {
	s := New(2)
	Set(s, 0, "a", int32(1))
	Set(s, 1, "b", "x")

	c := s.Clone()
	require.True(t, s.Equal(c))

	// Mutating the clone does not affect the original.
	Set(c, 0, "a", int32(99))
	assert.False(t, s.Equal(c))

	var n int32
	require.True(t, Get(s, 0, &n))
	assert.Equal(t, int32(1), n)

	assert.Nil(t, (*Store)(nil).Clone())
}

func TestStoreAllOrder(t *testing.T) {
	s := New(3)
	Set(s, 0, "x", int32(0))
	Set(s, 1, "y", int32(1))
	Set(s, 2, "x", int32(2))

	var keys []string
	var vals []int32
	for k, v := range s.All() {
		i, ok := v.AsInt32()
		require.True(t, ok)
		keys = append(keys, k)
		vals = append(vals, i)
	}
	assert.Equal(t, []string{"x", "y", "x"}, keys)
	assert.Equal(t, []int32{0, 1, 2}, vals)
}

func TestStoreEqual(t *testing.T) {
	a := New(2)
	Set(a, 0, "k", int32(1))
	Set(a, 1, "l", true)

	b := New(2)
	Set(b, 0, "k", int32(1))
	Set(b, 1, "l", true)

	assert.True(t, a.Equal(b))

	Set(b, 1, "l", false)
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(New(1)))
	assert.False(t, a.Equal(nil))
}
