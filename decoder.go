package bonjson

import (
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/bonjson-codec/bonjson/endian"
	"github.com/bonjson-codec/bonjson/errs"
	"github.com/bonjson-codec/bonjson/internal/leb128"
	"github.com/bonjson-codec/bonjson/value"
	"github.com/bonjson-codec/bonjson/wire"
)

// frameKind distinguishes the two container shapes for depth/size
// tracking while decoding.
type frameKind uint8

const (
	frameArray frameKind = iota
	frameObject
)

type frame struct {
	kind frameKind
	size int

	// awaitingValue is only meaningful for frameObject: it tracks
	// whether the frame is between a pair's key and its value, so
	// bumpFrame can count one unit per pair rather than per event.
	awaitingValue bool
}

// Decoder is a zero-copy, low-level BONJSON reader. It borrows its
// input slice for its entire lifetime (spec section 4.3) and holds
// only a byte cursor and a bounded stack of container frames.
//
// A Decoder is not safe for concurrent use; distinct Decoders over
// distinct slices are fully independent.
type Decoder struct {
	buf    []byte
	pos    int
	cfg    *DecoderConfig
	engine endian.EndianEngine
	frames []frame
}

// NewDecoder creates a Decoder over buf using cfg. A nil cfg is
// replaced by DefaultDecoderConfig. buf is retained, not copied.
func NewDecoder(buf []byte, cfg *DecoderConfig) (*Decoder, error) {
	if cfg == nil {
		cfg = DefaultDecoderConfig()
	}
	if len(buf) > cfg.maxDocumentSize {
		return nil, errs.Wrap(errs.ErrLimitExceeded, "document size %d exceeds max_document_size", len(buf))
	}

	return &Decoder{
		buf:    buf,
		cfg:    cfg,
		engine: endian.GetLittleEndianEngine(),
	}, nil
}

func (d *Decoder) eof() error {
	return errs.ErrUnexpectedEOF
}

func (d *Decoder) peekByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, d.eof()
	}

	return d.buf[d.pos], nil
}

func (d *Decoder) readByte() (byte, error) {
	b, err := d.peekByte()
	if err != nil {
		return 0, err
	}
	d.pos++

	return b, nil
}

func (d *Decoder) readN(n int) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		return nil, d.eof()
	}
	out := d.buf[d.pos : d.pos+n]
	d.pos += n

	return out, nil
}

// pushFrame records entry into a new container, enforcing max_depth.
func (d *Decoder) pushFrame(kind frameKind) error {
	if len(d.frames) >= d.cfg.maxDepth {
		return errs.Wrap(errs.ErrLimitExceeded, "container depth exceeds max_depth %d", d.cfg.maxDepth)
	}
	d.frames = append(d.frames, frame{kind: kind})

	return nil
}

// bumpFrame increments the innermost frame's element count, enforcing
// max_container_size. It is a no-op at the root (no open frame).
//
// An Object's cardinality is its pair count, not its event count, so
// for frameObject only every other call (the key half of each pair)
// advances size; the matching value-half call is absorbed.
func (d *Decoder) bumpFrame() error {
	if len(d.frames) == 0 {
		return nil
	}
	top := &d.frames[len(d.frames)-1]
	if top.kind == frameObject {
		if top.awaitingValue {
			top.awaitingValue = false
			return nil
		}
		top.awaitingValue = true
	}
	top.size++
	if top.size > d.cfg.maxContainerSize {
		return errs.Wrap(errs.ErrLimitExceeded, "container size exceeds max_container_size %d", d.cfg.maxContainerSize)
	}

	return nil
}

func (d *Decoder) popFrame() {
	d.frames = d.frames[:len(d.frames)-1]
}

// Depth reports the current container nesting depth.
func (d *Decoder) Depth() int {
	return len(d.frames)
}

// NextEvent pulls the next item from the stream (spec section 4.3).
// At end of input with no open frames it returns an EventEOF event;
// with a container still open it returns errs.ErrUnexpectedEOF.
func (d *Decoder) NextEvent() (Event, error) {
	if d.pos >= len(d.buf) {
		if len(d.frames) > 0 {
			return Event{}, d.eof()
		}

		return Event{Kind: EventEOF}, nil
	}

	code := d.buf[d.pos]
	kind := wire.Classify(code)

	switch kind {
	case wire.KindContainerEnd:
		d.pos++
		if len(d.frames) == 0 {
			return Event{}, errs.Wrap(errs.ErrInvalidData, "unmatched container end")
		}
		d.popFrame()

		return Event{Kind: EventContainerEnd}, nil

	case wire.KindArrayStart:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}
		d.pos++
		if err := d.pushFrame(frameArray); err != nil {
			return Event{}, err
		}

		return Event{Kind: EventArrayStart}, nil

	case wire.KindObjectStart:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}
		d.pos++
		if err := d.pushFrame(frameObject); err != nil {
			return Event{}, err
		}

		return Event{Kind: EventObjectStart}, nil

	case wire.KindNull:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}
		d.pos++

		return Event{Kind: EventNull}, nil

	case wire.KindFalse, wire.KindTrue:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}
		d.pos++

		return Event{Kind: EventBool, Bool: kind == wire.KindTrue}, nil

	case wire.KindSmallInt:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}
		d.pos++

		return Event{Kind: EventInt, Int: wire.SmallIntValue(code)}, nil

	case wire.KindSizedUint, wire.KindSizedInt:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}

		return d.decodeSizedInt(code)

	case wire.KindFloat32:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}

		return d.decodeFloat32()

	case wire.KindFloat64:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}

		return d.decodeFloat64()

	case wire.KindBigNumber:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}

		return d.decodeBigNumber()

	case wire.KindShortString:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}

		return d.decodeShortString(code)

	case wire.KindLongString:
		if err := d.bumpFrame(); err != nil {
			return Event{}, err
		}

		return d.decodeLongString()

	default: // wire.KindReserved
		return Event{}, errs.Wrap(errs.ErrInvalidData, "reserved type code 0x%02X", code)
	}
}

func (d *Decoder) decodeSizedInt(code byte) (Event, error) {
	d.pos++
	signed, size := wire.IntSizeInfo(code)
	raw, err := d.readN(size)
	if err != nil {
		return Event{}, err
	}

	var bits uint64
	switch size {
	case 1:
		bits = uint64(raw[0])
	case 2:
		bits = uint64(d.engine.Uint16(raw))
	case 4:
		bits = uint64(d.engine.Uint32(raw))
	case 8:
		bits = d.engine.Uint64(raw)
	}

	if !signed {
		return Event{Kind: EventUInt, UInt: bits}, nil
	}

	var iv int64
	switch size {
	case 1:
		iv = int64(int8(bits))
	case 2:
		iv = int64(int16(bits))
	case 4:
		iv = int64(int32(bits))
	case 8:
		iv = int64(bits)
	}

	return Event{Kind: EventInt, Int: iv}, nil
}

func (d *Decoder) decodeFloat32() (Event, error) {
	d.pos++
	raw, err := d.readN(4)
	if err != nil {
		return Event{}, err
	}
	f32 := math.Float32frombits(d.engine.Uint32(raw))
	f := float64(f32)
	if err := d.checkFinite(f); err != nil {
		return Event{}, err
	}

	return Event{Kind: EventFloat, Float: f}, nil
}

func (d *Decoder) decodeFloat64() (Event, error) {
	d.pos++
	raw, err := d.readN(8)
	if err != nil {
		return Event{}, err
	}
	f := math.Float64frombits(d.engine.Uint64(raw))
	if err := d.checkFinite(f); err != nil {
		return Event{}, err
	}

	return Event{Kind: EventFloat, Float: f}, nil
}

func (d *Decoder) checkFinite(f float64) error {
	if !d.cfg.allowNaNInfinity && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return errs.Wrap(errs.ErrInvalidData, "non-finite float not allowed")
	}

	return nil
}

// decodeBigNumber reads the 0xCA wire form of spec section 4.4,
// enforcing the no-leading-zero-byte normalization rule.
func (d *Decoder) decodeBigNumber() (Event, error) {
	d.pos++
	exponent, n, err := leb128.ReadVarint(d.buf[d.pos:])
	if err != nil {
		return Event{}, err
	}
	d.pos += n

	signedLength, n, err := leb128.ReadVarint(d.buf[d.pos:])
	if err != nil {
		return Event{}, err
	}
	d.pos += n

	if signedLength == 0 {
		return Event{Kind: EventBigNumber, BigNumber: value.NewBigNumber(0, 0, 0)}, nil
	}

	sign := int8(1)
	length := signedLength
	if signedLength < 0 {
		sign = -1
		length = -signedLength
	}
	if length > 8 {
		return Event{}, errs.Wrap(errs.ErrInvalidData, "BigNumber magnitude length %d exceeds 8 bytes", length)
	}

	magBytes, err := d.readN(int(length))
	if err != nil {
		return Event{}, err
	}
	if magBytes[len(magBytes)-1] == 0 {
		return Event{}, errs.Wrap(errs.ErrInvalidData, "BigNumber magnitude has a leading zero byte")
	}

	var magnitude uint64
	for i := len(magBytes) - 1; i >= 0; i-- {
		magnitude = (magnitude << 8) | uint64(magBytes[i])
	}

	return Event{Kind: EventBigNumber, BigNumber: value.NewBigNumber(sign, magnitude, exponent)}, nil
}

func (d *Decoder) decodeShortString(code byte) (Event, error) {
	d.pos++
	n := wire.ShortStringLen(code)
	raw, err := d.readN(n)
	if err != nil {
		return Event{}, err
	}

	return d.finishString(raw)
}

func (d *Decoder) decodeLongString() (Event, error) {
	d.pos++
	start := d.pos
	end := -1
	for i := start; i < len(d.buf); i++ {
		if d.buf[i] == wire.CodeLongString {
			end = i
			break
		}
	}
	if end < 0 {
		return Event{}, d.eof()
	}
	d.pos = end + 1

	return d.finishString(d.buf[start:end])
}

func (d *Decoder) finishString(raw []byte) (Event, error) {
	if len(raw) > d.cfg.maxStringLength {
		return Event{}, errs.Wrap(errs.ErrLimitExceeded, "string length %d exceeds max_string_length", len(raw))
	}
	if !d.validUTF8(raw) {
		return Event{}, errs.Wrap(errs.ErrInvalidData, "invalid UTF-8 in string")
	}
	if !d.cfg.allowNul {
		for _, b := range raw {
			if b == 0x00 {
				return Event{}, errs.Wrap(errs.ErrInvalidData, "NUL byte in string not allowed")
			}
		}
	}

	// Zero-copy borrow (spec section 8 property 3): alias raw's backing
	// array instead of copying. raw is a sub-slice of d.buf, which the
	// Decoder holds for its entire lifetime, so the resulting string
	// stays valid as long as the caller keeps the Decoder's input alive.
	s := unsafe.String(unsafe.SliceData(raw), len(raw))
	if d.cfg.unicodeNormalize == NormalizationNFC {
		if d.cfg.normalizer == nil {
			return Event{}, errs.Wrap(errs.ErrUnsupportedValue, "NFC normalization requested but no Normalizer configured")
		}
		normalized, err := d.cfg.normalizer.Normalize(s)
		if err != nil {
			return Event{}, errs.Wrap(errs.ErrInvalidData, "normalization failed: %v", err)
		}
		s = normalized
	}

	return Event{Kind: EventString, String: s}, nil
}

func (d *Decoder) validUTF8(raw []byte) bool {
	if d.cfg.utf8Validator != nil {
		return d.cfg.utf8Validator.Valid(raw)
	}

	return utf8.Valid(raw)
}

// TryConsumeContainerEnd advances past a 0xFE byte if the cursor is
// sitting on one, reporting whether it did. It leaves the cursor
// untouched otherwise, per spec section 4.3.
func (d *Decoder) TryConsumeContainerEnd() bool {
	if d.pos >= len(d.buf) || d.buf[d.pos] != wire.CodeContainerEnd {
		return false
	}
	d.pos++
	if len(d.frames) > 0 {
		d.popFrame()
	}

	return true
}

// DecodeI64Direct reads the next item as an int64 without going
// through the Event dispatch, for adapters that already know the
// target type. Unsigned payloads wider than i64::MAX are rejected.
func (d *Decoder) DecodeI64Direct() (int64, error) {
	ev, err := d.NextEvent()
	if err != nil {
		return 0, err
	}
	switch ev.Kind {
	case EventInt:
		return ev.Int, nil
	case EventUInt:
		if ev.UInt > math.MaxInt64 {
			return 0, errs.Wrap(errs.ErrInvalidData, "u64 value overflows i64")
		}

		return int64(ev.UInt), nil
	default:
		return 0, errs.Wrap(errs.ErrInvalidData, "expected integer, got %s", ev.Kind)
	}
}

// DecodeU64Direct reads the next item as a uint64 without going
// through the Event dispatch.
func (d *Decoder) DecodeU64Direct() (uint64, error) {
	ev, err := d.NextEvent()
	if err != nil {
		return 0, err
	}
	switch ev.Kind {
	case EventUInt:
		return ev.UInt, nil
	case EventInt:
		if ev.Int < 0 {
			return 0, errs.Wrap(errs.ErrInvalidData, "negative int requested as u64")
		}

		return uint64(ev.Int), nil
	default:
		return 0, errs.Wrap(errs.ErrInvalidData, "expected integer, got %s", ev.Kind)
	}
}

// DecodeF64Direct reads the next item as a float64 without going
// through the Event dispatch.
func (d *Decoder) DecodeF64Direct() (float64, error) {
	ev, err := d.NextEvent()
	if err != nil {
		return 0, err
	}
	if ev.Kind != EventFloat {
		return 0, errs.Wrap(errs.ErrInvalidData, "expected float, got %s", ev.Kind)
	}

	return ev.Float, nil
}

// DecodeStrDirect reads the next item as a string without going
// through the Event dispatch.
func (d *Decoder) DecodeStrDirect() (string, error) {
	ev, err := d.NextEvent()
	if err != nil {
		return "", err
	}
	if ev.Kind != EventString {
		return "", errs.Wrap(errs.ErrInvalidData, "expected string, got %s", ev.Kind)
	}

	return ev.String, nil
}

// Finish asserts end-of-input, per spec section 4.3.
func (d *Decoder) Finish() error {
	if d.pos < len(d.buf) && !d.cfg.allowTrailingBytes {
		return errs.Wrap(errs.ErrInvalidData, "trailing bytes after root value")
	}

	return nil
}
