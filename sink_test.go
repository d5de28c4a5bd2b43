package bonjson

import (
	"errors"
	"testing"

	bonjsonerrs "github.com/bonjson-codec/bonjson/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriterSinkWrapsWriteError(t *testing.T) {
	sink := newWriterSink(failingWriter{})
	err := sink.Write([]byte("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, bonjsonerrs.ErrSinkError)
}

func TestWriterSinkWriteByteUsesWrite(t *testing.T) {
	sink := newWriterSink(failingWriter{})
	err := sink.WriteByte(0x01)
	require.Error(t, err)
	assert.ErrorIs(t, err, bonjsonerrs.ErrSinkError)
}

func TestBufSinkAccumulates(t *testing.T) {
	sink := newBufSink()
	defer sink.release()

	require.NoError(t, sink.WriteByte(1))
	require.NoError(t, sink.Write([]byte{2, 3}))
	assert.Equal(t, []byte{1, 2, 3}, sink.Bytes())
}
