// Package compress layers an optional compressed envelope on top of
// BONJSON's core wire format.
//
// The core codec (package bonjson) never compresses anything; every
// document it produces is plain BONJSON bytes. This package adds a
// thin wrapper, Envelope, for callers who want to compress a whole
// document before it hits disk or the network: one byte identifying
// the algorithm, a uvarint original length, then the compressed
// payload.
//
// # Algorithms
//
//   - None: passthrough, for already-compressed or incompressible data
//   - Zstd: best ratio, moderate speed (github.com/klauspost/compress/zstd
//     on the pure-Go build, github.com/valyala/gozstd under cgo)
//   - S2: fast with good compression (github.com/klauspost/compress/s2)
//   - LZ4: very fast decompression (github.com/pierrec/lz4/v4)
//
// # Usage
//
//	b, err := compress.EnvelopeEncode(v, compress.CompressionZstd)
//	v, err := compress.EnvelopeDecode(b, nil)
package compress
