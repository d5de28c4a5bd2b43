package bonjson

import (
	"io"

	"github.com/bonjson-codec/bonjson/value"
)

// ToVec encodes v into a freshly allocated byte slice, pre-allocating
// 128 bytes as spec section 6.3 specifies.
func ToVec(v value.Value) ([]byte, error) {
	return EncodeValue(v, nil)
}

// ToWriter encodes v onto w without buffering: each tag byte and each
// payload becomes its own Write call on w.
func ToWriter(w io.Writer, v value.Value, opts ...EncoderOption) error {
	cfg, err := NewEncoderConfig(opts...)
	if err != nil {
		return err
	}

	sink := newWriterSink(w)
	enc := NewEncoder(sink, cfg)

	return encodeValue(enc, v, cfg, 0)
}

// FromSlice decodes a single BONJSON document from bytes using
// DefaultDecoderConfig.
func FromSlice(bytes []byte) (value.Value, error) {
	return FromSliceWithConfig(bytes, nil)
}

// FromSliceWithConfig decodes a single BONJSON document from bytes
// using cfg. A nil cfg is replaced by DefaultDecoderConfig.
func FromSliceWithConfig(bytes []byte, cfg *DecoderConfig) (value.Value, error) {
	dec, err := NewDecoder(bytes, cfg)
	if err != nil {
		return value.Value{}, err
	}

	v, err := decodeValue(dec)
	if err != nil {
		return value.Value{}, err
	}
	if err := dec.Finish(); err != nil {
		return value.Value{}, err
	}

	return v, nil
}

// EncodeValue encodes v into a freshly allocated byte slice using the
// given encoder options.
func EncodeValue(v value.Value, opts []EncoderOption) ([]byte, error) {
	cfg, err := NewEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	sink := newBufSink()
	defer sink.release()

	enc := NewEncoder(sink, cfg)
	if err := encodeValue(enc, v, cfg, 0); err != nil {
		return nil, err
	}

	out := make([]byte, len(sink.Bytes()))
	copy(out, sink.Bytes())

	return out, nil
}

// DecodeValue decodes a single BONJSON document from bytes using
// DefaultDecoderConfig, equivalent to FromSlice. It exists alongside
// FromSlice to match the value-model-codec naming of spec section 6.3.
func DecodeValue(bytes []byte) (value.Value, error) {
	return FromSlice(bytes)
}
