// Package index provides a Roaring Bitmap-based inverted index over node
// metadata stores.
//
// The index maps key -> value -> set of node IDs and compiles equality
// filter sets into a single bitmap intersection, avoiding a per-node scan
// when selecting nodes by metadata.
package index
