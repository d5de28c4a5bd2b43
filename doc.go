// Package bonjson implements BONJSON, a binary encoding bijectively
// compatible with the JSON data model.
//
// # Overview
//
// BONJSON trades JSON's text grammar for a compact, type-tagged byte
// stream: every value starts with a single tag byte that a decoder can
// dispatch on without backtracking, and every string, array, and
// object round-trips through the same [value.Value] model that a JSON
// decoder would build.
//
// # Basic usage
//
//	b, err := bonjson.ToVec(value.String("hello"))
//	v, err := bonjson.FromSlice(b)
//
// ToWriter and FromSliceWithConfig cover the streaming and
// limit-enforcing cases; EncodeValue/DecodeValue are the same byte-slice
// codec under its value-model names, with EncodeValue also accepting
// encoder options.
//
// # Package structure
//
// wire holds the bit-exact type-code table. errs is the closed error
// taxonomy shared by every package below. value is the in-memory
// dynamic model. endian, internal/pool, internal/leb128, and
// internal/dupkey are small support packages reused by both the
// encoder and the decoder defined at this package's root. adapter
// specifies (but does not implement) the generic serialization hook
// surface. compress layers an optional compressed envelope on top of
// the core wire format.
package bonjson
