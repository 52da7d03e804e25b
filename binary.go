package metastore

import (
	"encoding/binary"
	"errors"
	"math"
	"unique"
)

// MarshalBinary implements encoding.BinaryMarshaler.
// It uses a compact binary format: uvarint slot count followed by
// length-prefixed keys, each paired with a kind-tagged value.
func (s *Store) MarshalBinary() ([]byte, error) {
	// Estimate size: count + (avg key len 5 + avg val len 5) per slot.
	buf := make([]byte, 0, 4+len(s.values)*16)

	buf = binary.AppendUvarint(buf, uint64(len(s.values)))

	for i := range s.values {
		// Write key
		k := s.keys[i]
		buf = binary.AppendUvarint(buf, uint64(len(k)))
		buf = append(buf, k...)

		// Write value
		var err error
		buf, err = appendValue(buf, s.values[i])
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The decoded store's property count is the serialized slot count.
func (s *Store) UnmarshalBinary(data []byte) error {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return errors.New("invalid store length")
	}
	data = data[n:]

	// Each slot needs at least a key-length byte and a kind byte, so a
	// count beyond that bound cannot come from a valid encoding. This also
	// keeps a corrupt count from sizing the pre-allocation.
	if count > uint64(len(data))/2 {
		return errors.New("store length exceeds buffer")
	}

	s.keys = make([]string, 0, count)
	s.values = make([]Value, 0, count)

	for range count {
		// Read key
		kLen, n := binary.Uvarint(data)
		if n <= 0 {
			return errors.New("invalid key length")
		}
		data = data[n:]
		if uint64(len(data)) < kLen {
			return errors.New("short buffer for key")
		}
		key := string(data[:kLen])
		data = data[kLen:]

		// Read value
		val, remaining, err := parseValue(data)
		if err != nil {
			return err
		}
		s.keys = append(s.keys, key)
		s.values = append(s.values, val)
		data = remaining
	}
	return nil
}

// StoreMap is a collection of stores keyed by node ID, as produced by a
// scene importer attaching metadata per node.
type StoreMap map[uint64]*Store

// MarshalBinary implements encoding.BinaryMarshaler.
func (m StoreMap) MarshalBinary() ([]byte, error) {
	// Estimate size: count + (8 bytes ID + avg store len 50) per entry.
	buf := make([]byte, 0, 4+len(m)*58)

	buf = binary.AppendUvarint(buf, uint64(len(m)))

	for id, s := range m {
		buf = binary.LittleEndian.AppendUint64(buf, id)

		b, err := s.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf = binary.AppendUvarint(buf, uint64(len(b)))
		buf = append(buf, b...)
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *StoreMap) UnmarshalBinary(data []byte) error {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return errors.New("invalid store map length")
	}
	data = data[n:]

	// Each entry needs at least an 8-byte ID and a store-length byte.
	if count > uint64(len(data))/9 {
		return errors.New("store map length exceeds buffer")
	}

	if *m == nil {
		*m = make(StoreMap, count)
	}

	for range count {
		if len(data) < 8 {
			return errors.New("short buffer for ID")
		}
		id := binary.LittleEndian.Uint64(data)
		data = data[8:]

		sLen, n := binary.Uvarint(data)
		if n <= 0 {
			return errors.New("invalid store length")
		}
		data = data[n:]
		if uint64(len(data)) < sLen {
			return errors.New("short buffer for store")
		}

		s := new(Store)
		if err := s.UnmarshalBinary(data[:sLen]); err != nil {
			return err
		}
		(*m)[id] = s
		data = data[sLen:]
	}
	return nil
}

func appendValue(buf []byte, v Value) ([]byte, error) {
	// Write Kind (byte)
	buf = append(buf, byte(v.Kind))

	switch v.Kind {
	case KindInvalid:
		// Absent slot, no payload
	case KindBool:
		if v.B {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case KindInt32:
		buf = binary.AppendVarint(buf, int64(v.I32))
	case KindUint64:
		buf = binary.AppendUvarint(buf, v.U64)
	case KindFloat32:
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.F32))
	case KindString:
		str := v.s.Value()
		buf = binary.AppendUvarint(buf, uint64(len(str)))
		buf = append(buf, str...)
	case KindVector3:
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.V3.X))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.V3.Y))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.V3.Z))
	default:
		return nil, errors.New("unknown value kind")
	}
	return buf, nil
}

func parseValue(data []byte) (Value, []byte, error) {
	if len(data) == 0 {
		return Value{}, nil, errors.New("short buffer for value kind")
	}
	kind := Kind(data[0])
	data = data[1:]

	var v Value
	v.Kind = kind

	switch kind {
	case KindInvalid:
		// Absent slot, no payload
	case KindBool:
		if len(data) == 0 {
			return v, nil, errors.New("short buffer for bool")
		}
		v.B = data[0] != 0
		data = data[1:]
	case KindInt32:
		i, n := binary.Varint(data)
		if n <= 0 {
			return v, nil, errors.New("invalid int32 value")
		}
		if i < math.MinInt32 || i > math.MaxInt32 {
			return v, nil, errors.New("int32 value out of range")
		}
		v.I32 = int32(i)
		data = data[n:]
	case KindUint64:
		u, n := binary.Uvarint(data)
		if n <= 0 {
			return v, nil, errors.New("invalid uint64 value")
		}
		v.U64 = u
		data = data[n:]
	case KindFloat32:
		if len(data) < 4 {
			return v, nil, errors.New("short buffer for float32")
		}
		v.F32 = math.Float32frombits(binary.LittleEndian.Uint32(data))
		data = data[4:]
	case KindString:
		sLen, n := binary.Uvarint(data)
		if n <= 0 {
			return v, nil, errors.New("invalid string length")
		}
		data = data[n:]
		if uint64(len(data)) < sLen {
			return v, nil, errors.New("short buffer for string")
		}
		v.s = unique.Make(string(data[:sLen]))
		data = data[sLen:]
	case KindVector3:
		if len(data) < 12 {
			return v, nil, errors.New("short buffer for vector3")
		}
		v.V3.X = math.Float32frombits(binary.LittleEndian.Uint32(data))
		v.V3.Y = math.Float32frombits(binary.LittleEndian.Uint32(data[4:]))
		v.V3.Z = math.Float32frombits(binary.LittleEndian.Uint32(data[8:]))
		data = data[12:]
	default:
		return v, nil, errors.New("unknown value kind")
	}
	return v, data, nil
}
