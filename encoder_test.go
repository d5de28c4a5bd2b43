package bonjson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncoder() (*Encoder, *bufSink) {
	sink := newBufSink()
	enc := NewEncoder(sink, DefaultEncoderConfig())
	return enc, sink
}

func TestWriteSmallInt(t *testing.T) {
	enc, sink := newTestEncoder()
	require.NoError(t, enc.WriteInt(0))
	require.NoError(t, enc.WriteInt(100))
	require.NoError(t, enc.WriteInt(-100))
	assert.Equal(t, []byte{100, 200, 0}, sink.Bytes())
}

func TestWriteIntNarrowsToSmallestUnsigned(t *testing.T) {
	enc, sink := newTestEncoder()
	require.NoError(t, enc.WriteInt(200))
	b := sink.Bytes()
	require.Len(t, b, 2)
	assert.Equal(t, byte(0xE0), b[0], "200 fits u8, must use narrowest unsigned form")
}

func TestWriteIntNegativeUsesSignedForm(t *testing.T) {
	enc, sink := newTestEncoder()
	require.NoError(t, enc.WriteInt(-200))
	b := sink.Bytes()
	require.Len(t, b, 3)
	assert.Equal(t, byte(0xE5), b[0], "-200 needs i16")
}

func TestWriteFloatNarrowsToFloat32(t *testing.T) {
	enc, sink := newTestEncoder()
	require.NoError(t, enc.WriteFloat(1.5))
	b := sink.Bytes()
	require.Len(t, b, 5)
	assert.Equal(t, byte(0xCB), b[0])
}

func TestWriteFloatNeedsFloat64(t *testing.T) {
	enc, sink := newTestEncoder()
	require.NoError(t, enc.WriteFloat(0.1))
	b := sink.Bytes()
	require.Len(t, b, 9)
	assert.Equal(t, byte(0xCC), b[0])
}

func TestWriteFloatRejectsNaNByDefault(t *testing.T) {
	enc, _ := newTestEncoder()
	err := enc.WriteFloat(math.NaN())
	require.Error(t, err)
}

func TestWriteFloatAllowsNaNWhenConfigured(t *testing.T) {
	sink := newBufSink()
	cfg, err := NewEncoderConfig(WithEncodeAllowNaNInfinity())
	require.NoError(t, err)
	enc := NewEncoder(sink, cfg)
	require.NoError(t, enc.WriteFloat(math.NaN()))
}

func TestWriteShortString(t *testing.T) {
	enc, sink := newTestEncoder()
	require.NoError(t, enc.WriteString("hi"))
	assert.Equal(t, []byte{0xD2, 'h', 'i'}, sink.Bytes())
}

func TestWriteLongString(t *testing.T) {
	enc, sink := newTestEncoder()
	s := "this string is definitely longer than fifteen bytes"
	require.NoError(t, enc.WriteString(s))
	b := sink.Bytes()
	assert.Equal(t, byte(0xFF), b[0])
	assert.Equal(t, byte(0xFF), b[len(b)-1])
	assert.Equal(t, s, string(b[1:len(b)-1]))
}

func TestWriteStringRejectsNulByDefault(t *testing.T) {
	enc, _ := newTestEncoder()
	err := enc.WriteString("a\x00b")
	require.Error(t, err)
}

func TestContainerRoundTripBytes(t *testing.T) {
	enc, sink := newTestEncoder()
	require.NoError(t, enc.BeginArray())
	require.NoError(t, enc.WriteInt(1))
	require.NoError(t, enc.EndContainer())
	assert.Equal(t, []byte{0xFC, 101, 0xFE}, sink.Bytes())
}

func TestBigNumberZeroEncodesEmptyLength(t *testing.T) {
	enc, sink := newTestEncoder()
	require.NoError(t, enc.WriteBigNumber(0, 0, 5))
	b := sink.Bytes()
	assert.Equal(t, byte(0xCA), b[0])
	// exponent 5 zigzags to 0x0A; the signed length is 0, with no magnitude bytes.
	assert.Equal(t, []byte{0xCA, 0x0A, 0x00}, b)
}
