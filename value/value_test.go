package value_test

import (
	"math"
	"testing"

	"github.com/bonjson-codec/bonjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsAndAccessors(t *testing.T) {
	require.True(t, value.Null().IsNull())

	b, ok := value.Bool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	i, ok := value.Int(-7).AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(-7), i)

	u, ok := value.UInt(1 << 63).AsUInt()
	require.True(t, ok)
	assert.Equal(t, uint64(1<<63), u)

	f, ok := value.Float(1.5).AsFloat()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	s, ok := value.String("hi").AsString()
	require.True(t, ok)
	assert.Equal(t, "hi", s)
}

func TestAccessorsReturnFalseForWrongKind(t *testing.T) {
	_, ok := value.Int(1).AsString()
	assert.False(t, ok)

	_, ok = value.Null().AsBool()
	assert.False(t, ok)
}

func TestEqualFloatSignedZero(t *testing.T) {
	assert.False(t, value.Equal(value.Float(0.0), value.Float(math.Copysign(0, -1))),
		"-0.0 must not equal 0.0 per spec round-trip property")
}

func TestEqualNaN(t *testing.T) {
	nan := math.NaN()
	assert.True(t, value.Equal(value.Float(nan), value.Float(nan)))
}

func TestEqualArrayOrderMatters(t *testing.T) {
	a := value.Array(value.Int(1), value.Int(2))
	b := value.Array(value.Int(2), value.Int(1))
	assert.False(t, value.Equal(a, b))
	assert.True(t, value.Equal(a, value.Array(value.Int(1), value.Int(2))))
}

func TestEqualDifferentKinds(t *testing.T) {
	assert.False(t, value.Equal(value.Int(0), value.UInt(0)))
	assert.False(t, value.Equal(value.Int(0), value.Float(0)))
}

func TestObjectAppendGetOrder(t *testing.T) {
	obj := value.NewObject(0)
	obj.Append("a", value.Int(1))
	obj.Append("b", value.Int(2))

	v, ok := obj.Get("a")
	require.True(t, ok)
	i, _ := v.AsInt()
	assert.Equal(t, int64(1), i)

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())
}

func TestObjectSetAtPreservesPosition(t *testing.T) {
	obj := value.NewObject(0)
	obj.Append("a", value.Int(1))
	obj.Append("b", value.Int(2))

	idx, ok := obj.Index("a")
	require.True(t, ok)
	obj.SetAt(idx, value.Int(99))

	assert.Equal(t, []string{"a", "b"}, obj.Keys(), "overwrite must not change key order")
	v, _ := obj.Get("a")
	i, _ := v.AsInt()
	assert.Equal(t, int64(99), i)
}

func TestObjectEqual(t *testing.T) {
	o1 := value.NewObject(0)
	o1.Append("k", value.Null())
	o2 := value.NewObject(0)
	o2.Append("k", value.Null())

	assert.True(t, value.Equal(value.Obj(o1), value.Obj(o2)))
}

func TestBigNumberNormalizeZero(t *testing.T) {
	b := value.NewBigNumber(1, 0, 42)
	assert.True(t, b.IsZero())
	assert.Equal(t, int8(0), b.Sign)
	assert.Equal(t, int64(0), b.Exponent)
}

func TestBigNumberEqual(t *testing.T) {
	a := value.NewBigNumber(-1, 123, 4)
	b := value.NewBigNumber(-5, 123, 4) // sign normalized to -1
	assert.True(t, a.Equal(b))
}

func TestBigNumberNotEqualDifferentExponent(t *testing.T) {
	a := value.NewBigNumber(1, 123, 4)
	b := value.NewBigNumber(1, 123, 5)
	assert.False(t, a.Equal(b))
}
