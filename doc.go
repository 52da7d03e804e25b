// Package metastore provides an ordered, typed key-value store for node
// metadata.
//
// A Store holds a fixed number of (key, value) slots where every value is
// tagged with its Kind from a closed set: Bool, Int32, Uint64, Float32,
// String and Vector3. Access is type-checked at read time, so a caller can
// never reinterpret a stored payload as the wrong type.
//
// # Values
//
// Values are constructed per kind:
//
//   - Bool: metastore.Bool(true)
//   - Int32: metastore.Int32(42)
//   - Uint64: metastore.Uint64(1 << 40)
//   - Float32: metastore.Float32(3.14)
//   - String: metastore.String("hello")
//   - Vector3: metastore.Vec3(1, 2, 3)
//
// # Typed access
//
// The generic helpers pair each payload type with its kind at compile
// time; Get reports false and leaves the output untouched on a kind
// mismatch:
//
//	s := metastore.New(2)
//	metastore.Set(s, 0, "name", "cube")
//	metastore.Set(s, 1, "scale", float32(2.5))
//
//	var scale float32
//	if metastore.Get(s, 1, &scale) {
//	    // scale == 2.5
//	}
//
//	var wrong int32
//	metastore.Get(s, 1, &wrong) // false, wrong untouched
//
// Keys need not be unique; keyed lookup (Find, Index, Value) returns the
// first match in slot order.
//
// # Subpackages
//
//   - index: Roaring Bitmap-based inverted index over many stores
//   - codec: pluggable JSON/binary codecs for persistence payloads
//   - snapshot: self-describing snapshot format with optional compression
package metastore
