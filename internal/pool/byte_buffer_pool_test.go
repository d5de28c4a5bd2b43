package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, capacity, cap(bb.B))
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(DocBufferDefaultSize)
	bb.MustWrite([]byte("hello"))

	assert.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(DocBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	cp := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, cp, bb.Cap(), "Reset should retain capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte{0x01, 0x02})
	bb.MustWrite([]byte{0x03})

	assert.Equal(t, []byte{0x01, 0x02, 0x03}, bb.Bytes())
}

func TestByteBuffer_MustWriteByte(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWriteByte(0xFC)
	bb.MustWriteByte(0xFE)

	assert.Equal(t, []byte{0xFC, 0xFE}, bb.Bytes())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.Grow(100)

	assert.GreaterOrEqual(t, bb.Cap(), 100)
	assert.Equal(t, 0, bb.Len(), "Grow must not change length")
}

func TestByteBuffer_GrowNoReallocWhenSufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(64)
	before := bb.Cap()
	bb.Grow(10)

	assert.Equal(t, before, bb.Cap())
}

func TestByteBuffer_WriteImplementsIoWriter(t *testing.T) {
	bb := NewByteBuffer(0)
	n, err := bb.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), bb.Bytes())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("x"))

	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
	assert.Equal(t, 0, bb2.Len(), "pooled buffers are reset before reuse")
}

func TestByteBufferPool_PutDiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := NewByteBuffer(1024)
	p.Put(bb)
	p.Put(nil) // must not panic

	assert.NotSame(t, bb, p.Get(), "a buffer above maxThreshold must not come back from the pool")
}

func TestGetPutDocBuffer(t *testing.T) {
	bb := GetDocBuffer()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("doc"))
	PutDocBuffer(bb)
}
