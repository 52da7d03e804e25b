package snapshot

import "fmt"

// ErrBadHeader indicates a snapshot whose header could not be parsed.
type ErrBadHeader struct {
	Reason string
}

func (e *ErrBadHeader) Error() string {
	return fmt.Sprintf("invalid snapshot header: %s", e.Reason)
}

// ErrUnsupportedVersion indicates a snapshot written by an incompatible
// format version.
type ErrUnsupportedVersion struct {
	Version byte
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported snapshot version: %d", e.Version)
}

// ErrUnknownCodec indicates a snapshot whose header names a codec this
// build does not provide.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("unknown snapshot codec: %q", e.Name)
}
