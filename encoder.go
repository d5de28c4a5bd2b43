package bonjson

import (
	"math"
	"strings"

	"github.com/bonjson-codec/bonjson/endian"
	"github.com/bonjson-codec/bonjson/errs"
	"github.com/bonjson-codec/bonjson/internal/leb128"
	"github.com/bonjson-codec/bonjson/wire"
)

// Encoder is a streaming, low-level BONJSON writer. It writes one
// type-tagged item per call and holds no state beyond an optional
// container-depth counter used for assertions (spec section 4.2).
//
// An Encoder is tied to one Sink and is not safe for concurrent use;
// distinct Encoders on distinct sinks are fully independent.
type Encoder struct {
	sink   Sink
	cfg    *EncoderConfig
	engine endian.EndianEngine
	depth  int
	small  [8]byte
}

// NewEncoder creates an Encoder that writes onto sink using cfg. A nil
// cfg is replaced by DefaultEncoderConfig.
func NewEncoder(sink Sink, cfg *EncoderConfig) *Encoder {
	if cfg == nil {
		cfg = DefaultEncoderConfig()
	}

	return &Encoder{
		sink:   sink,
		cfg:    cfg,
		engine: endian.GetLittleEndianEngine(),
	}
}

func (e *Encoder) writeByte(b byte) error {
	return e.sink.WriteByte(b)
}

func (e *Encoder) writeBytes(p []byte) error {
	return e.sink.Write(p)
}

// WriteNull writes the null singleton.
func (e *Encoder) WriteNull() error {
	return e.writeByte(wire.CodeNull)
}

// WriteBool writes a boolean singleton.
func (e *Encoder) WriteBool(b bool) error {
	if b {
		return e.writeByte(wire.CodeTrue)
	}

	return e.writeByte(wire.CodeFalse)
}

// WriteInt writes a signed 64-bit integer, narrowed per spec section
// 4.2's numbering: small-int first, then the narrowest unsigned form
// if non-negative, else the narrowest signed form.
func (e *Encoder) WriteInt(v int64) error {
	if v >= -100 && v <= 100 {
		code, _ := wire.SmallIntCode(v)
		return e.writeByte(code)
	}
	if v >= 0 {
		return e.writeUnsignedNarrowed(uint64(v))
	}

	return e.writeSignedNarrowed(v)
}

// WriteUInt writes an unsigned 64-bit integer, narrowed the same way
// WriteInt narrows non-negative values.
func (e *Encoder) WriteUInt(v uint64) error {
	if v <= 100 {
		code, _ := wire.SmallIntCode(int64(v))
		return e.writeByte(code)
	}

	return e.writeUnsignedNarrowed(v)
}

func (e *Encoder) writeUnsignedNarrowed(v uint64) error {
	var size int
	switch {
	case v <= math.MaxUint8:
		size = 1
	case v <= math.MaxUint16:
		size = 2
	case v <= math.MaxUint32:
		size = 4
	default:
		size = 8
	}

	return e.writeSizedInt(false, size, v)
}

func (e *Encoder) writeSignedNarrowed(v int64) error {
	var size int
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		size = 1
	case v >= math.MinInt16 && v <= math.MaxInt16:
		size = 2
	case v >= math.MinInt32 && v <= math.MaxInt32:
		size = 4
	default:
		size = 8
	}

	return e.writeSizedInt(true, size, uint64(v))
}

func (e *Encoder) writeSizedInt(signed bool, size int, bits uint64) error {
	code := wire.SizeIndexToCode(signed, size)
	if err := e.writeByte(code); err != nil {
		return err
	}

	buf := e.small[:size]
	switch size {
	case 1:
		buf[0] = byte(bits)
	case 2:
		e.engine.PutUint16(buf, uint16(bits))
	case 4:
		e.engine.PutUint32(buf, uint32(bits))
	case 8:
		e.engine.PutUint64(buf, bits)
	}

	return e.writeBytes(buf)
}

// WriteFloat writes a 64-bit float, narrowed to float32 when the
// round trip f64->f32->f64 is bit-exact (spec section 4.2 rule 4).
// NaN and infinities are rejected unless the encoder was configured to
// allow them.
func (e *Encoder) WriteFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if !e.cfg.allowNaNInfinity {
			return errs.Wrap(errs.ErrInvalidData, "non-finite float not allowed")
		}
	}

	f32 := float32(f)
	if float64(f32) == f || math.IsNaN(f) {
		// NaN payloads don't survive a narrowing round trip
		// comparison reliably, so NaN always narrows to float32;
		// both IEEE 754 widths represent "not a number" identically
		// for the purposes of this format.
		if err := e.writeByte(wire.CodeFloat32); err != nil {
			return err
		}

		var buf [4]byte
		e.engine.PutUint32(buf[:], math.Float32bits(f32))

		return e.writeBytes(buf[:])
	}

	if err := e.writeByte(wire.CodeFloat64); err != nil {
		return err
	}

	var buf [8]byte
	e.engine.PutUint64(buf[:], math.Float64bits(f))

	return e.writeBytes(buf[:])
}

// WriteBigNumber writes the 0xCA BigNumber form described in spec
// section 4.4.
func (e *Encoder) WriteBigNumber(sign int8, magnitude uint64, exponent int64) error {
	if err := e.writeByte(wire.CodeBigNumber); err != nil {
		return err
	}

	var tmp []byte
	tmp = leb128.AppendVarint(tmp, exponent)

	var length int64
	magBytes := magnitudeBytes(magnitude)
	switch {
	case sign == 0 || magnitude == 0:
		length = 0
	case sign < 0:
		length = -int64(len(magBytes))
	default:
		length = int64(len(magBytes))
	}
	tmp = leb128.AppendVarint(tmp, length)
	if length != 0 {
		tmp = append(tmp, magBytes...)
	}

	return e.writeBytes(tmp)
}

// magnitudeBytes returns the minimal little-endian byte encoding of v
// with no leading (high-order) zero bytes, matching the normalization
// rule of spec section 4.4. v == 0 returns an empty slice; callers
// handle the zero case via the signed length being 0.
func magnitudeBytes(v uint64) []byte {
	if v == 0 {
		return nil
	}

	n := 0
	for shifted := v; shifted != 0; shifted >>= 8 {
		n++
	}

	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = byte(v >> (8 * i))
	}

	return buf
}

// WriteString writes a string using the short-string inline form when
// its byte length fits the 4-bit length field, otherwise the
// long-string sentinel form. NUL bytes are rejected unless allowed.
func (e *Encoder) WriteString(s string) error {
	if !e.cfg.allowNul && strings.IndexByte(s, 0x00) >= 0 {
		return errs.Wrap(errs.ErrInvalidData, "NUL byte in string not allowed")
	}

	if len(s) <= wire.MaxShortStringLen {
		if err := e.writeByte(wire.ShortStringCode(len(s))); err != nil {
			return err
		}

		return e.writeBytes([]byte(s))
	}

	if err := e.writeByte(wire.CodeLongString); err != nil {
		return err
	}
	if err := e.writeBytes([]byte(s)); err != nil {
		return err
	}

	return e.writeByte(wire.CodeLongString)
}

// WriteKey writes a key string inside an Object. Its wire form is
// identical to WriteString; the distinction exists only so a driver
// can restrict calls to the key slot between BeginObject and
// EndContainer.
func (e *Encoder) WriteKey(s string) error {
	return e.WriteString(s)
}

// BeginArray opens an Array container.
func (e *Encoder) BeginArray() error {
	e.depth++
	return e.writeByte(wire.CodeArrayStart)
}

// BeginObject opens an Object container.
func (e *Encoder) BeginObject() error {
	e.depth++
	return e.writeByte(wire.CodeObjectStart)
}

// EndContainer closes the innermost open Array or Object.
func (e *Encoder) EndContainer() error {
	e.depth--
	return e.writeByte(wire.CodeContainerEnd)
}

// Depth returns the current container nesting depth, for drivers that
// enforce max_depth themselves.
func (e *Encoder) Depth() int {
	return e.depth
}
