package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCompressionTypes() []CompressionType {
	return []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}
}

func TestCodecRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated: the quick brown fox jumps over the lazy dog")

	for _, ct := range allCompressionTypes() {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)

			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, ct := range allCompressionTypes() {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)

			assert.Empty(t, decompressed)
		})
	}
}

func TestCreateCodecInvalidType(t *testing.T) {
	_, err := CreateCodec(CompressionType(0xFF), "test")
	assert.Error(t, err)
}

func TestGetCodecBuiltins(t *testing.T) {
	for _, ct := range allCompressionTypes() {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestGetCodecUnsupported(t *testing.T) {
	_, err := GetCodec(CompressionType(0xFF))
	assert.Error(t, err)
}

func TestCompressionTypeString(t *testing.T) {
	assert.Equal(t, "Zstd", CompressionZstd.String())
	assert.Equal(t, "Unknown", CompressionType(0xFF).String())
}
