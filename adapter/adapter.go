package adapter

// Encoder receives primitive and container callbacks from a caller
// that is walking its own in-memory type, translating each call into
// the matching bonjson.Encoder write. Byte sequences have no direct
// BONJSON representation and map to an Array of UInt (spec section
// 6.2): a caller with a []byte field drives SequenceBegin/Uint*/
// SequenceEnd rather than a dedicated bytes hook.
type Encoder interface {
	Null() error
	Bool(v bool) error
	Int(v int64) error
	Uint(v uint64) error
	Float(v float64) error
	Str(v string) error

	SequenceBegin(sizeHint int) error
	SequenceEnd() error

	MapBegin(sizeHint int) error
	MapKey(key string) error
	MapEnd() error
}

// Decoder drives a pull parser over a bonjson.Decoder's event stream.
// NextKind reports which call the adapter should make next; the
// matching typed call both advances the underlying decoder and
// returns the value. Implementations are expected to hold a
// *bonjson.Decoder and forward directly to its NextEvent/direct-decode
// methods, so this interface adds no buffering of its own.
type Decoder interface {
	// NextKind reports the shape of the next item without consuming
	// it, so the adapter can decide which typed call to make.
	NextKind() (Kind, error)

	Bool() (bool, error)
	Int() (int64, error)
	Uint() (uint64, error)
	Float() (float64, error)
	Str() (string, error)

	SequenceBegin() error
	// SequenceNext reports whether another element follows, consuming
	// the container-end marker when it does not.
	SequenceNext() (bool, error)

	MapBegin() error
	// MapNext reports whether another key/value pair follows and, if
	// so, returns the key.
	MapNext() (string, bool, error)
}

// Kind mirrors the decode-side event shapes an adapter needs to
// distinguish before choosing a typed call.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindSequence
	KindMap
)
