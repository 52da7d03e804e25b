package metastore

// Kind identifies the concrete type stored in a Value.
//
// The numeric values are wire tags: serializers embed them in persisted
// bytes, so the mapping of an existing kind must never change. New kinds
// may only be appended.
type Kind uint8

const (
	// KindInvalid represents an invalid kind. It is the kind of the zero
	// Value and marks an absent entry in a Store.
	KindInvalid Kind = iota
	// KindBool represents a boolean value.
	KindBool
	// KindInt32 represents a signed 32-bit integer value.
	KindInt32
	// KindUint64 represents an unsigned 64-bit integer value.
	KindUint64
	// KindFloat32 represents a 32-bit float value.
	KindFloat32
	// KindString represents a string value.
	KindString
	// KindVector3 represents a three-component float32 vector value.
	KindVector3
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindBool:
		return "Bool"
	case KindInt32:
		return "Int32"
	case KindUint64:
		return "Uint64"
	case KindFloat32:
		return "Float32"
	case KindString:
		return "String"
	case KindVector3:
		return "Vector3"
	default:
		return "Unknown"
	}
}

// IsValid reports whether k denotes a storable payload kind.
func (k Kind) IsValid() bool {
	return k > KindInvalid && k <= KindVector3
}
