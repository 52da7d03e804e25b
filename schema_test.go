package metastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaValidate(t *testing.T) {
	schema := Schema{
		"name":     FieldTypeString,
		"year":     FieldTypeInt,
		"size":     FieldTypeUint,
		"scale":    FieldTypeFloat,
		"visible":  FieldTypeBool,
		"position": FieldTypeVector,
		"anything": FieldTypeAny,
	}

	t.Run("conforming store", func(t *testing.T) {
		s := storeFromPairs(
			Pair{"name", String("node")},
			Pair{"year", Int32(2024)},
			Pair{"size", Uint64(10)},
			Pair{"scale", Float32(1.5)},
			Pair{"visible", Bool(true)},
			Pair{"position", Vec3(0, 0, 0)},
			Pair{"anything", String("whatever")},
		)
		assert.NoError(t, schema.Validate(s))
	})

	t.Run("kind mismatch", func(t *testing.T) {
		s := storeFromPairs(Pair{"name", Int32(1)})
		err := schema.Validate(s)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `field "name"`)
	})

	t.Run("int accepted as float", func(t *testing.T) {
		s := storeFromPairs(Pair{"scale", Int32(2)})
		assert.NoError(t, schema.Validate(s))
	})

	t.Run("float rejected as int", func(t *testing.T) {
		s := storeFromPairs(Pair{"year", Float32(2024)})
		assert.Error(t, schema.Validate(s))
	})

	t.Run("unknown keys unconstrained", func(t *testing.T) {
		s := storeFromPairs(Pair{"other", Vec3(1, 2, 3)})
		assert.NoError(t, schema.Validate(s))
	})

	t.Run("absent value passes", func(t *testing.T) {
		s := storeFromPairs(Pair{Key: "name"})
		assert.NoError(t, schema.Validate(s))
	})

	t.Run("nil schema passes everything", func(t *testing.T) {
		var none Schema
		s := storeFromPairs(Pair{"name", Int32(1)})
		assert.NoError(t, none.Validate(s))
	})
}

func TestFieldTypeString(t *testing.T) {
	want := map[FieldType]string{
		FieldTypeAny:    "Any",
		FieldTypeBool:   "Bool",
		FieldTypeInt:    "Int",
		FieldTypeUint:   "Uint",
		FieldTypeFloat:  "Float",
		FieldTypeString: "String",
		FieldTypeVector: "Vector",
		FieldType(99):   "Unknown",
	}
	for ft, s := range want {
		assert.Equal(t, s, ft.String())
	}
}
