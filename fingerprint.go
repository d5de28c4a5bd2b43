package bonjson

import "github.com/bonjson-codec/bonjson/internal/hash"

// Fingerprint returns a 64-bit content hash of an encoded BONJSON
// document, suitable for cache keys or change detection without
// storing the full document. It is independent of any Envelope
// wrapping: callers typically fingerprint the bytes produced by ToVec,
// before or instead of compressing them.
func Fingerprint(encoded []byte) uint64 {
	return hash.ID(string(encoded))
}
