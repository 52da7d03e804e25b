package metastore

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinarySerialization(t *testing.T) {
	tests := []struct {
		name string
		val  Value
	}{
		{"BoolTrue", Bool(true)},
		{"BoolFalse", Bool(false)},
		{"Int32Min", Int32(math.MinInt32)},
		{"Int32Max", Int32(math.MaxInt32)},
		{"Int32Zero", Int32(0)},
		{"Uint64Max", Uint64(math.MaxUint64)},
		{"Float32", Float32(3.14159)},
		{"Float32Neg", Float32(-1.23)},
		{"Float32Inf", Float32(float32(math.Inf(1)))},
		{"String", String("hello world")},
		{"StringEmpty", String("")},
		{"StringNonAscii", String("こんにちは")},
		{"Vector3", Vec3(1.5, -2.5, 3.5)},
		{"Absent", Value{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(1)
			s.SetValue(0, "key", tt.val)

			b, err := s.MarshalBinary()
			require.NoError(t, err)

			var got Store
			err = got.UnmarshalBinary(b)
			require.NoError(t, err)

			require.Equal(t, 1, got.Len())
			assert.Equal(t, "key", got.KeyAt(0))
			assert.True(t, tt.val.Equal(got.ValueAt(0)))
		})
	}
}

func TestBinaryStoreRoundtrip(t *testing.T) {
	s := New(4)
	Set(s, 0, "a", int32(1))
	Set(s, 1, "b", "x")
	// Slot 2 left absent on purpose.
	Set(s, 3, "a", Vector3{X: 1, Y: 2, Z: 3})

	b, err := s.MarshalBinary()
	require.NoError(t, err)

	var got Store
	require.NoError(t, got.UnmarshalBinary(b))

	assert.True(t, s.Equal(&got))
	assert.False(t, got.ValueAt(2).IsValid())
}

func TestBinaryStoreMapRoundtrip(t *testing.T) {
	s1 := New(1)
	Set(s1, 0, "a", int32(1))
	s2 := New(1)
	Set(s2, 0, "b", "foo")

	mm := StoreMap{
		10: s1,
		20: s2,
	}

	b, err := mm.MarshalBinary()
	require.NoError(t, err)

	var got StoreMap
	require.NoError(t, got.UnmarshalBinary(b))

	require.Equal(t, len(mm), len(got))

	var n int32
	require.True(t, Get(got[10], 0, &n))
	assert.Equal(t, int32(1), n)

	var str string
	require.True(t, Find(got[20], "b", &str))
	assert.Equal(t, "foo", str)
}

func TestBinaryCorrupt(t *testing.T) {
	var s Store

	// Empty buffer
	assert.Error(t, s.UnmarshalBinary([]byte{}))

	// Truncated uvarint (high bit set but no more bytes)
	assert.Error(t, s.UnmarshalBinary([]byte{0xFF}))

	// One slot announced, nothing follows
	assert.Error(t, s.UnmarshalBinary([]byte{0x01}))

	// Valid key, unknown kind byte
	assert.Error(t, s.UnmarshalBinary([]byte{0x01, 0x01, 'k', 99}))

	// Valid key, string kind, truncated payload
	assert.Error(t, s.UnmarshalBinary([]byte{0x01, 0x01, 'k', byte(KindString), 0x05, 'a'}))

	var m StoreMap
	assert.Error(t, m.UnmarshalBinary([]byte{}))

	// Count 1, but no ID bytes
	assert.Error(t, m.UnmarshalBinary([]byte{0x01}))
}

func TestBinaryOversizedCount(t *testing.T) {
	// A slot count far beyond the buffer must error out before it can
	// size any allocation.
	var s Store
	assert.Error(t, s.UnmarshalBinary(binary.AppendUvarint(nil, 1<<60)))

	// A count that merely exceeds the actual slot data fails the same
	// bound.
	assert.Error(t, s.UnmarshalBinary([]byte{0x04, 0x01, 'k', byte(KindBool), 1}))

	var m StoreMap
	assert.Error(t, m.UnmarshalBinary(binary.AppendUvarint(nil, 1<<60)))
}

func TestBinaryUnknownKindFails(t *testing.T) {
	s := New(1)
	s.SetValue(0, "k", Value{Kind: Kind(99)})

	_, err := s.MarshalBinary()
	assert.Error(t, err)
}
