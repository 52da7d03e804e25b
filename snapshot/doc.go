// Package snapshot writes and reads self-describing snapshots of node
// metadata stores.
//
// A snapshot records, in its header, the codec that produced the payload
// and the block compression in use, so files remain readable after the
// library's defaults change. The payload is a single compressed block
// holding a codec-marshaled metastore.StoreMap.
//
// Snapshots target io.Writer/io.Reader only; file handling, paths and
// fsync policy belong to the caller.
package snapshot
