package metastore

import "fmt"

// FieldType defines the expected data type of a metadata field.
type FieldType uint8

const (
	FieldTypeAny FieldType = iota
	FieldTypeBool
	FieldTypeInt
	FieldTypeUint
	FieldTypeFloat
	FieldTypeString
	FieldTypeVector
)

// String returns the string representation of the FieldType.
func (t FieldType) String() string {
	switch t {
	case FieldTypeAny:
		return "Any"
	case FieldTypeBool:
		return "Bool"
	case FieldTypeInt:
		return "Int"
	case FieldTypeUint:
		return "Uint"
	case FieldTypeFloat:
		return "Float"
	case FieldTypeString:
		return "String"
	case FieldTypeVector:
		return "Vector"
	default:
		return "Unknown"
	}
}

// Schema defines the expected kinds of known keys.
type Schema map[string]FieldType

// Validate checks if the given store conforms to the schema.
//
// Keys absent from the schema are not constrained; absent values always
// pass (a slot with no value cannot violate a type expectation).
func (s Schema) Validate(store *Store) error {
	if s == nil || store == nil {
		return nil
	}
	for key, v := range store.All() {
		expected, ok := s[key]
		if !ok {
			continue
		}
		if !checkKind(v.Kind, expected) {
			return fmt.Errorf("field %q has invalid type %s, expected %s", key, v.Kind, expected)
		}
	}
	return nil
}

func checkKind(k Kind, expected FieldType) bool {
	if k == KindInvalid {
		return true
	}
	switch expected {
	case FieldTypeAny:
		return true
	case FieldTypeBool:
		return k == KindBool
	case FieldTypeInt:
		return k == KindInt32
	case FieldTypeUint:
		return k == KindUint64
	case FieldTypeFloat:
		return k == KindFloat32 || k == KindInt32 // Allow upgrading Int32 to Float32
	case FieldTypeString:
		return k == KindString
	case FieldTypeVector:
		return k == KindVector3
	}
	return false
}
