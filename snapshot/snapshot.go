package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/metastore"
	"github.com/hupe1980/metastore/codec"
)

// Format:
//
//	[4]byte  magic "MSNP"
//	byte     version
//	uvarint  codec name length, followed by the name bytes
//	byte     compression type
//	block    [UncompressedSize uint32][CompressedSize uint32][payload]
//
// The payload is the codec-marshaled metastore.StoreMap.
var magic = [4]byte{'M', 'S', 'N', 'P'}

const version = 1

type options struct {
	codec       codec.Codec
	compression CompressionType
	logger      *metastore.Logger
}

// Option configures snapshot writing and reading.
type Option func(*options)

// WithCodec configures the codec used for the snapshot payload.
//
// If nil is passed, codec.Default is used. Reading ignores this option:
// the codec is selected by the name recorded in the header.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures block compression for the snapshot payload.
func WithCompression(c CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger configures structured logging for snapshot operations.
func WithLogger(l *metastore.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:       codec.Default,
		compression: CompressionZSTD,
		logger:      metastore.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Write serializes the store map to w as a self-describing snapshot.
func Write(w io.Writer, stores metastore.StoreMap, optFns ...Option) error {
	o := applyOptions(optFns)

	payload, err := o.codec.Marshal(stores)
	if err != nil {
		return fmt.Errorf("failed to marshal stores: %w", err)
	}

	block, err := compressBlock(payload, o.compression)
	if err != nil {
		return fmt.Errorf("failed to compress payload: %w", err)
	}

	hdr := make([]byte, 0, len(magic)+2+len(o.codec.Name())+2)
	hdr = append(hdr, magic[:]...)
	hdr = append(hdr, version)
	hdr = binary.AppendUvarint(hdr, uint64(len(o.codec.Name())))
	hdr = append(hdr, o.codec.Name()...)
	hdr = append(hdr, byte(o.compression))

	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}
	if _, err := w.Write(block); err != nil {
		return fmt.Errorf("failed to write snapshot block: %w", err)
	}

	o.logger.Info("snapshot written",
		"codec", o.codec.Name(),
		"compression", int(o.compression),
		"stores", len(stores),
		"payload_bytes", len(payload),
		"block_bytes", len(block),
	)
	return nil
}

// Read deserializes a snapshot produced by Write.
//
// The codec and compression are taken from the header, so Read works
// regardless of the options the snapshot was written with.
func Read(r io.Reader, optFns ...Option) (metastore.StoreMap, error) {
	o := applyOptions(optFns)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if len(data) < len(magic)+1 {
		return nil, &ErrBadHeader{Reason: "snapshot too small"}
	}
	if [4]byte(data[:4]) != magic {
		return nil, &ErrBadHeader{Reason: "bad magic"}
	}
	data = data[4:]

	if data[0] != version {
		return nil, &ErrUnsupportedVersion{Version: data[0]}
	}
	data = data[1:]

	nameLen, n := binary.Uvarint(data)
	if n <= 0 || uint64(len(data)-n) < nameLen {
		return nil, &ErrBadHeader{Reason: "truncated codec name"}
	}
	data = data[n:]
	codecName := string(data[:nameLen])
	data = data[nameLen:]

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, &ErrUnknownCodec{Name: codecName}
	}

	if len(data) == 0 {
		return nil, &ErrBadHeader{Reason: "missing compression type"}
	}
	compression := CompressionType(data[0])
	data = data[1:]

	payload, err := decompressBlock(data, compression)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	var stores metastore.StoreMap
	if err := c.Unmarshal(payload, &stores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stores: %w", err)
	}

	o.logger.Info("snapshot read",
		"codec", codecName,
		"compression", int(compression),
		"stores", len(stores),
	)
	return stores, nil
}
