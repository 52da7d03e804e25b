package metastore

// Payload is the closed set of concrete Go types a Value can hold.
//
// The constraint is deliberately a plain union with no approximation terms:
// it is the compile-time registry pairing each payload type with its Kind.
// Instantiating Of, As, KindOf or the typed Store helpers with any other
// type is a compile error. Extending the set means extending this union,
// the Kind enum and the switches below together.
type Payload interface {
	bool | int32 | uint64 | float32 | string | Vector3
}

// KindOf returns the Kind that tags values of type T.
func KindOf[T Payload]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int32:
		return KindInt32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case string:
		return KindString
	case Vector3:
		return KindVector3
	default:
		// Unreachable: the Payload union admits no other type.
		panic("metastore: payload type outside the closed kind set")
	}
}

// Of wraps a concrete payload in a tagged Value.
func Of[T Payload](v T) Value {
	switch x := any(v).(type) {
	case bool:
		return Bool(x)
	case int32:
		return Int32(x)
	case uint64:
		return Uint64(x)
	case float32:
		return Float32(x)
	case string:
		return String(x)
	case Vector3:
		return Vec3(x.X, x.Y, x.Z)
	default:
		panic("metastore: payload type outside the closed kind set")
	}
}

// As extracts the payload of v as type T.
//
// It returns ok=false without producing a partial result when the stored
// kind does not match T, including when v is the absent zero Value.
func As[T Payload](v Value) (T, bool) {
	var out T
	if v.Kind != KindOf[T]() {
		return out, false
	}
	out, _ = v.Any().(T)
	return out, true
}
