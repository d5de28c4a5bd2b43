package bonjson

import (
	"io"

	"github.com/bonjson-codec/bonjson/errs"
	"github.com/bonjson-codec/bonjson/internal/pool"
)

// Sink is the byte destination an Encoder writes to. It mirrors the
// minimal append/write surface rony4d-go-opera-asset/utils/fast.Writer
// exposes, generalized to also accept an io.Writer-backed
// implementation for the streaming to_writer entry point.
type Sink interface {
	WriteByte(b byte) error
	Write(p []byte) error
	// Bytes returns the accumulated content. Only bufSink supports
	// this meaningfully; writerSink returns nil.
	Bytes() []byte
}

// bufSink accumulates encoded bytes in a pooled, growable buffer. It
// backs ToVec and EncodeValue.
type bufSink struct {
	buf *pool.ByteBuffer
}

func newBufSink() *bufSink {
	return &bufSink{buf: pool.GetDocBuffer()}
}

func (s *bufSink) WriteByte(b byte) error {
	s.buf.MustWriteByte(b)
	return nil
}

func (s *bufSink) Write(p []byte) error {
	s.buf.MustWrite(p)
	return nil
}

func (s *bufSink) Bytes() []byte {
	return s.buf.Bytes()
}

func (s *bufSink) release() {
	pool.PutDocBuffer(s.buf)
	s.buf = nil
}

// writerSink adapts an io.Writer to the Sink interface, wrapping any
// write failure as errs.ErrSinkError (spec section 4.2's sink_error).
// Writes are unbuffered: every tag byte and every payload the Encoder
// emits is its own Write call on the underlying io.Writer, so one
// Encoder call (a sized integer, a float, a string) can issue several
// Write calls. This matches the "encoder writes synchronously"
// guarantee of spec section 5.
type writerSink struct {
	w io.Writer
	// onebyte avoids allocating a []byte on every WriteByte call.
	onebyte [1]byte
}

func newWriterSink(w io.Writer) *writerSink {
	return &writerSink{w: w}
}

func (s *writerSink) WriteByte(b byte) error {
	s.onebyte[0] = b
	return s.Write(s.onebyte[:])
}

func (s *writerSink) Write(p []byte) error {
	if _, err := s.w.Write(p); err != nil {
		return errs.Wrap(errs.ErrSinkError, "%v", err)
	}

	return nil
}

func (s *writerSink) Bytes() []byte {
	return nil
}
