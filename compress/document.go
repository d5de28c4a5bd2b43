package compress

import (
	"github.com/bonjson-codec/bonjson"
	"github.com/bonjson-codec/bonjson/value"
)

// EnvelopeEncode encodes v as BONJSON and wraps the result in a
// compressed Envelope. It is an additive convenience on top of
// bonjson.ToVec/FromSlice: nothing in the core codec calls it, and a
// document produced by bonjson.ToVec alone is never mistaken for one.
func EnvelopeEncode(v value.Value, ct CompressionType) ([]byte, error) {
	raw, err := bonjson.ToVec(v)
	if err != nil {
		return nil, err
	}

	return Encode(raw, ct)
}

// EnvelopeDecode reverses EnvelopeEncode, decompressing data and then
// decoding the resulting BONJSON bytes using cfg. A nil cfg is
// replaced by bonjson.DefaultDecoderConfig.
func EnvelopeDecode(data []byte, cfg *bonjson.DecoderConfig) (value.Value, error) {
	raw, err := Decode(data)
	if err != nil {
		return value.Value{}, err
	}

	return bonjson.FromSliceWithConfig(raw, cfg)
}
