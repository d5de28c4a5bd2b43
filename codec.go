package bonjson

import (
	"github.com/bonjson-codec/bonjson/errs"
	"github.com/bonjson-codec/bonjson/internal/dupkey"
	"github.com/bonjson-codec/bonjson/value"
)

// encodeValue dispatches on v's Kind, writing it and recursing into
// Array/Object contents, enforcing cfg.maxDepth as it descends (spec
// section 4.5). depth counts the containers already open around v, so a
// container at depth cfg.maxDepth would open one level too many.
func encodeValue(enc *Encoder, v value.Value, cfg *EncoderConfig, depth int) error {
	isContainer := v.Kind() == value.KindArray || v.Kind() == value.KindObject
	if depth > cfg.maxDepth || (isContainer && depth >= cfg.maxDepth) {
		return errs.Wrap(errs.ErrLimitExceeded, "value nesting exceeds max_depth %d", cfg.maxDepth)
	}

	switch v.Kind() {
	case value.KindNull:
		return enc.WriteNull()
	case value.KindBool:
		b, _ := v.AsBool()
		return enc.WriteBool(b)
	case value.KindInt:
		i, _ := v.AsInt()
		return enc.WriteInt(i)
	case value.KindUInt:
		u, _ := v.AsUInt()
		return enc.WriteUInt(u)
	case value.KindFloat:
		f, _ := v.AsFloat()
		return enc.WriteFloat(f)
	case value.KindBigNumber:
		big, _ := v.AsBigNumber()
		return enc.WriteBigNumber(big.Sign, big.Magnitude, big.Exponent)
	case value.KindString:
		s, _ := v.AsString()
		return enc.WriteString(s)
	case value.KindArray:
		return encodeArray(enc, v, cfg, depth)
	case value.KindObject:
		return encodeObject(enc, v, cfg, depth)
	default:
		return errs.Wrap(errs.ErrUnsupportedValue, "cannot encode value kind %s", v.Kind())
	}
}

func encodeArray(enc *Encoder, v value.Value, cfg *EncoderConfig, depth int) error {
	items, _ := v.AsArray()
	if err := enc.BeginArray(); err != nil {
		return err
	}
	for _, item := range items {
		if err := encodeValue(enc, item, cfg, depth+1); err != nil {
			return err
		}
	}

	return enc.EndContainer()
}

func encodeObject(enc *Encoder, v value.Value, cfg *EncoderConfig, depth int) error {
	obj, _ := v.AsObject()
	if err := enc.BeginObject(); err != nil {
		return err
	}
	for _, pair := range obj.Pairs() {
		if err := enc.WriteKey(pair.Key); err != nil {
			return err
		}
		if err := encodeValue(enc, pair.Value, cfg, depth+1); err != nil {
			return err
		}
	}

	return enc.EndContainer()
}

// decodeValue consumes events from dec and builds a value.Value,
// applying the Object duplicate-key policy and the decoder's
// configured limits (spec section 4.5).
func decodeValue(dec *Decoder) (value.Value, error) {
	ev, err := dec.NextEvent()
	if err != nil {
		return value.Value{}, err
	}

	return decodeValueFromEvent(dec, ev)
}

func decodeValueFromEvent(dec *Decoder, ev Event) (value.Value, error) {
	switch ev.Kind {
	case EventNull:
		return value.Null(), nil
	case EventBool:
		return value.Bool(ev.Bool), nil
	case EventInt:
		return value.Int(ev.Int), nil
	case EventUInt:
		return value.UInt(ev.UInt), nil
	case EventFloat:
		return value.Float(ev.Float), nil
	case EventBigNumber:
		return value.Big(ev.BigNumber), nil
	case EventString:
		return value.String(ev.String), nil
	case EventArrayStart:
		return decodeArray(dec)
	case EventObjectStart:
		return decodeObject(dec)
	case EventEOF:
		return value.Value{}, errs.ErrUnexpectedEOF
	default:
		return value.Value{}, errs.Wrap(errs.ErrInvalidData, "unexpected event %s", ev.Kind)
	}
}

func decodeArray(dec *Decoder) (value.Value, error) {
	var items []value.Value
	for {
		if dec.TryConsumeContainerEnd() {
			return value.Array(items...), nil
		}

		ev, err := dec.NextEvent()
		if err != nil {
			return value.Value{}, err
		}

		v, err := decodeValueFromEvent(dec, ev)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
	}
}

func decodeObject(dec *Decoder) (value.Value, error) {
	obj := value.NewObject(0)
	tracker := dupkey.New(dec.cfg.duplicateKeyMode)

	for {
		if dec.TryConsumeContainerEnd() {
			return value.Obj(obj), nil
		}

		key, err := dec.DecodeStrDirect()
		if err != nil {
			return value.Value{}, err
		}

		v, err := decodeValue(dec)
		if err != nil {
			return value.Value{}, err
		}

		action, priorIndex, err := tracker.Track(key, obj.Len())
		if err != nil {
			return value.Value{}, err
		}
		switch action {
		case dupkey.ActionInsert:
			obj.Append(key, v)
		case dupkey.ActionSkip:
			// KeepFirst: discard the newly decoded value.
		case dupkey.ActionOverwrite:
			obj.SetAt(priorIndex, v)
		}
	}
}
