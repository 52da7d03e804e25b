package metastore

import (
	"fmt"
	"math"
	"strconv"
	"unique"
)

// Vector3 is a three-component float32 vector payload.
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// String returns a string representation of the Vector3.
func (v Vector3) String() string {
	return fmt.Sprintf("Vec3(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Value is a small typed value attached to a node under a string key.
//
// The representation is a tagged variant: Kind selects which payload field
// is meaningful, and all access goes through checked accessors or the
// generic As helper. There is no erased pointer to free; overwriting a
// Value releases whatever it held.
//
// NOTE: This is also used for persistence; keep it stable.
type Value struct {
	Kind Kind                  `json:"k"`
	B    bool                  `json:"b,omitempty"`
	I32  int32                 `json:"i,omitempty"`
	U64  uint64                `json:"u,omitempty"`
	F32  float32               `json:"f,omitempty"`
	s    unique.Handle[string] `json:"-"` // Private interned string
	V3   Vector3               `json:"v,omitzero"`
}

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Int32 returns a signed 32-bit integer Value.
func Int32(v int32) Value { return Value{Kind: KindInt32, I32: v} }

// Uint64 returns an unsigned 64-bit integer Value.
func Uint64(v uint64) Value { return Value{Kind: KindUint64, U64: v} }

// Float32 returns a 32-bit float Value.
func Float32(v float32) Value { return Value{Kind: KindFloat32, F32: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Vec3 returns a Vector3 Value.
func Vec3(x, y, z float32) Value {
	return Value{Kind: KindVector3, V3: Vector3{X: x, Y: y, Z: z}}
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsInt32 returns the int32 value if Kind is KindInt32.
func (v Value) AsInt32() (int32, bool) {
	if v.Kind != KindInt32 {
		return 0, false
	}
	return v.I32, true
}

// AsUint64 returns the uint64 value if Kind is KindUint64.
func (v Value) AsUint64() (uint64, bool) {
	if v.Kind != KindUint64 {
		return 0, false
	}
	return v.U64, true
}

// AsFloat32 returns the float32 value if Kind is KindFloat32.
func (v Value) AsFloat32() (float32, bool) {
	if v.Kind != KindFloat32 {
		return 0, false
	}
	return v.F32, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsVector3 returns the Vector3 value if Kind is KindVector3.
func (v Value) AsVector3() (Vector3, bool) {
	if v.Kind != KindVector3 {
		return Vector3{}, false
	}
	return v.V3, true
}

// StringValue returns the string value if Kind is KindString, otherwise empty string.
func (v Value) StringValue() string {
	if v.Kind == KindString {
		return v.s.Value()
	}
	return ""
}

// IsValid reports whether v holds a payload. The zero Value is not valid
// and marks an absent entry.
func (v Value) IsValid() bool {
	return v.Kind.IsValid()
}

// Any returns the concrete payload as an any.
//
// This is the single bridge from the tagged representation back to a
// concrete type; all untyped consumers (adapters, fmt output) go through
// it. A Value whose kind is outside the closed set indicates the tag and
// the type set have diverged, which is an internal-consistency failure.
func (v Value) Any() any {
	switch v.Kind {
	case KindBool:
		return v.B
	case KindInt32:
		return v.I32
	case KindUint64:
		return v.U64
	case KindFloat32:
		return v.F32
	case KindString:
		return v.s.Value()
	case KindVector3:
		return v.V3
	case KindInvalid:
		return nil
	default:
		panic(fmt.Sprintf("metastore: unknown value kind %d", v.Kind))
	}
}

// Key returns a stable string representation for use in maps.
//
// It is intended for internal indexing (inverted indexes) and must remain
// stable across versions for persisted usage.
func (v Value) Key() string {
	switch v.Kind {
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindInt32:
		return "i:" + strconv.FormatInt(int64(v.I32), 10)
	case KindUint64:
		return "u:" + strconv.FormatUint(v.U64, 10)
	case KindFloat32:
		return "f:" + strconv.FormatUint(uint64(math.Float32bits(v.F32)), 16)
	case KindString:
		return "s:" + v.s.Value()
	case KindVector3:
		return "v:" + strconv.FormatUint(uint64(math.Float32bits(v.V3.X)), 16) +
			"," + strconv.FormatUint(uint64(math.Float32bits(v.V3.Y)), 16) +
			"," + strconv.FormatUint(uint64(math.Float32bits(v.V3.Z)), 16)
	default:
		return "invalid"
	}
}

// Equal reports whether two values hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.B == o.B
	case KindInt32:
		return v.I32 == o.I32
	case KindUint64:
		return v.U64 == o.U64
	case KindFloat32:
		return v.F32 == o.F32
	case KindString:
		return v.s == o.s
	case KindVector3:
		return v.V3 == o.V3
	default:
		return v.Kind == KindInvalid && o.Kind == KindInvalid
	}
}

// GoString implements fmt.GoStringer for readable test failures.
func (v Value) GoString() string {
	if !v.IsValid() {
		return "metastore.Value{}"
	}
	return fmt.Sprintf("metastore.%s(%v)", v.Kind, v.Any())
}
