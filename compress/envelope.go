package compress

import (
	"errors"

	"github.com/bonjson-codec/bonjson/internal/leb128"
)

var errEnvelopeTruncated = errors.New("compress: envelope truncated before length prefix")

// Envelope wraps a fully BONJSON-encoded document with a compression
// tag and the original (decompressed) length, so a reader can
// pre-size its decompression buffer without scanning the payload.
//
// Wire form: 1 byte CompressionType, uvarint original length, then the
// compressed bytes. This is a layer strictly on top of the core wire
// format (spec section 6.1): nothing under bonjson.ToVec/FromSlice
// ever produces or consumes an Envelope on its own.
type Envelope struct {
	Type            CompressionType
	OriginalSize    int
	CompressedBytes []byte
}

// Encode compresses data with the codec for typ and returns the
// Envelope's wire bytes.
func Encode(data []byte, typ CompressionType) ([]byte, error) {
	codec, err := CreateCodec(typ, "envelope")
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 1+10+len(compressed))
	out = append(out, byte(typ))
	out = leb128.AppendUvarint(out, uint64(len(data)))
	out = append(out, compressed...)

	return out, nil
}

// Decode parses an Envelope's wire bytes and returns the decompressed
// payload.
func Decode(data []byte) ([]byte, error) {
	env, err := parseEnvelope(data)
	if err != nil {
		return nil, err
	}

	codec, err := CreateCodec(env.Type, "envelope")
	if err != nil {
		return nil, err
	}

	return codec.Decompress(env.CompressedBytes)
}

func parseEnvelope(data []byte) (Envelope, error) {
	if len(data) < 1 {
		return Envelope{}, errEnvelopeTruncated
	}
	typ := CompressionType(data[0])

	size, n, err := leb128.ReadUvarint(data[1:])
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		Type:            typ,
		OriginalSize:    int(size),
		CompressedBytes: data[1+n:],
	}, nil
}
