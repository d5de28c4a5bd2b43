// Package adapter specifies, but does not implement, the generic
// serialization hook surface BONJSON's core codec must expose to an
// external serialization framework (spec section 6.2).
//
// A framework that wants to serialize its own Go types through BONJSON
// implements Encoder to drive a bonjson.Encoder, and Decoder to pull
// from a bonjson.Decoder's event stream. Neither interface is called
// from within this module; they exist to fix the surface other code
// can build against, the same role encoding/columnar.go's
// ColumnarEncoder[T]/ColumnarDecoder[T] interfaces play for mebo's
// typed columnar readers and writers.
package adapter
