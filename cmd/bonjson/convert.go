package main

import (
	"encoding/json"
	"fmt"

	"github.com/bonjson-codec/bonjson/value"
)

// jsonToValue converts a decoded encoding/json value (as produced by a
// json.Decoder with UseNumber enabled) into a BONJSON value.Value.
func jsonToValue(v any) (value.Value, error) {
	switch t := v.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case json.Number:
		return jsonNumberToValue(t)
	case string:
		return value.String(t), nil
	case []any:
		items := make([]value.Value, len(t))
		for i, elem := range t {
			item, err := jsonToValue(elem)
			if err != nil {
				return value.Value{}, err
			}
			items[i] = item
		}

		return value.Array(items...), nil
	case map[string]any:
		return jsonObjectToValue(t)
	default:
		return value.Value{}, fmt.Errorf("unsupported JSON value of type %T", v)
	}
}

func jsonNumberToValue(n json.Number) (value.Value, error) {
	if i, err := n.Int64(); err == nil {
		return value.Int(i), nil
	}
	if f, err := n.Float64(); err == nil {
		return value.Float(f), nil
	}

	return value.Value{}, fmt.Errorf("cannot represent JSON number %q", n.String())
}

// jsonObjectToValue converts a decoded JSON object. encoding/json
// erases key order when decoding into map[string]any, so the ordering
// here is Go's map iteration order; a caller that needs exact source
// order should decode with a streaming json.Decoder instead.
func jsonObjectToValue(m map[string]any) (value.Value, error) {
	obj := value.NewObject(len(m))
	for k, v := range m {
		fv, err := jsonToValue(v)
		if err != nil {
			return value.Value{}, err
		}
		obj.Append(k, fv)
	}

	return value.Obj(obj), nil
}

// valueToJSON converts a BONJSON value.Value into a tree of plain Go
// values suitable for encoding/json.Marshal.
func valueToJSON(v value.Value) (any, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, nil
	case value.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case value.KindInt:
		i, _ := v.AsInt()
		return i, nil
	case value.KindUInt:
		u, _ := v.AsUInt()
		return u, nil
	case value.KindFloat:
		f, _ := v.AsFloat()
		return f, nil
	case value.KindBigNumber:
		big, _ := v.AsBigNumber()
		return bigNumberToJSONNumber(big), nil
	case value.KindString:
		s, _ := v.AsString()
		return s, nil
	case value.KindArray:
		items, _ := v.AsArray()
		out := make([]any, len(items))
		for i, item := range items {
			jv, err := valueToJSON(item)
			if err != nil {
				return nil, err
			}
			out[i] = jv
		}

		return out, nil
	case value.KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, obj.Len())
		for _, pair := range obj.Pairs() {
			jv, err := valueToJSON(pair.Value)
			if err != nil {
				return nil, err
			}
			out[pair.Key] = jv
		}

		return out, nil
	default:
		return nil, fmt.Errorf("cannot represent value kind %s as JSON", v.Kind())
	}
}

// bigNumberToJSONNumber renders a BigNumber as a json.Number string,
// the only JSON representation that can hold a value wider than
// float64 without losing precision.
func bigNumberToJSONNumber(b value.BigNumber) json.Number {
	if b.IsZero() {
		return json.Number("0")
	}
	sign := ""
	if b.Sign < 0 {
		sign = "-"
	}

	return json.Number(fmt.Sprintf("%s%de%d", sign, b.Magnitude, b.Exponent))
}
