package compress_test

import (
	"testing"

	"github.com/bonjson-codec/bonjson/compress"
	"github.com/bonjson-codec/bonjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	obj := value.NewObject(0)
	obj.Append("name", value.String("bonjson"))
	obj.Append("count", value.Int(42))
	v := value.Obj(obj)

	for _, ct := range []compress.CompressionType{
		compress.CompressionNone, compress.CompressionZstd, compress.CompressionS2, compress.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			b, err := compress.EnvelopeEncode(v, ct)
			require.NoError(t, err)

			out, err := compress.EnvelopeDecode(b, nil)
			require.NoError(t, err)
			assert.True(t, value.Equal(v, out))
		})
	}
}

func TestEnvelopeDecodeRejectsTruncatedInput(t *testing.T) {
	_, err := compress.EnvelopeDecode(nil, nil)
	assert.Error(t, err)
}
