package bonjson

import "github.com/bonjson-codec/bonjson/value"

// EventKind identifies which variant a decoded Event holds, mirroring
// spec section 4.3's DecodedValue enum.
type EventKind uint8

const (
	EventNull EventKind = iota
	EventBool
	EventInt
	EventUInt
	EventFloat
	EventBigNumber
	EventString
	EventArrayStart
	EventObjectStart
	EventContainerEnd
	EventEOF
)

func (k EventKind) String() string {
	switch k {
	case EventNull:
		return "Null"
	case EventBool:
		return "Bool"
	case EventInt:
		return "Int"
	case EventUInt:
		return "UInt"
	case EventFloat:
		return "Float"
	case EventBigNumber:
		return "BigNumber"
	case EventString:
		return "String"
	case EventArrayStart:
		return "ArrayStart"
	case EventObjectStart:
		return "ObjectStart"
	case EventContainerEnd:
		return "ContainerEnd"
	case EventEOF:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Event is one item pulled from a Decoder by NextEvent. Only the field
// matching Kind is meaningful. String is a borrowed view into the
// decoder's input slice whenever zero-copy decoding applies (spec
// section 8 property 3).
type Event struct {
	Kind      EventKind
	Bool      bool
	Int       int64
	UInt      uint64
	Float     float64
	BigNumber value.BigNumber
	String    string
}
