package value

// Pair is one key/value entry of an Object, in insertion order.
type Pair struct {
	Key   string
	Value Value
}

// Object is BONJSON's ordered key/value container (spec section 3.1).
// Insertion order is preserved; uniqueness of keys is enforced by the
// value codec's duplicate-key policy, not by Object itself, so that
// Object stays usable as a plain builder for callers who already know
// their keys are unique.
type Object struct {
	pairs []Pair
	index map[string]int
}

// NewObject creates an empty Object, optionally pre-sizing for
// capacityHint pairs.
func NewObject(capacityHint int) *Object {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &Object{
		pairs: make([]Pair, 0, capacityHint),
		index: make(map[string]int, capacityHint),
	}
}

// Append adds a new key/value pair at the end, without checking for
// an existing key. Callers that need duplicate-key policy should check
// via Get/Index first or use the value codec.
func (o *Object) Append(key string, v Value) {
	o.index[key] = len(o.pairs)
	o.pairs = append(o.pairs, Pair{Key: key, Value: v})
}

// SetAt overwrites the value at an existing slot index, preserving
// its position (spec section 9's KeepLast requirement).
func (o *Object) SetAt(idx int, v Value) {
	o.pairs[idx].Value = v
}

// Index returns the slot index of key and whether it is present.
func (o *Object) Index(key string) (int, bool) {
	idx, ok := o.index[key]
	return idx, ok
}

// Get returns the value for key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	idx, ok := o.index[key]
	if !ok {
		return Value{}, false
	}

	return o.pairs[idx].Value, true
}

// Len returns the number of pairs.
func (o *Object) Len() int {
	return len(o.pairs)
}

// Pairs returns the Object's pairs in insertion order. The returned
// slice shares storage with the Object and must not be mutated.
func (o *Object) Pairs() []Pair {
	return o.pairs
}

// Keys returns the Object's keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.pairs))
	for i, p := range o.pairs {
		keys[i] = p.Key
	}

	return keys
}

// Equal compares two Objects pair-by-pair in order: same keys in the
// same positions with equal values. Key order is part of round-trip
// fidelity (spec section 8 property 1), so two Objects with the same
// pairs in different orders are not Equal.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.pairs) != len(other.pairs) {
		return false
	}
	for i := range o.pairs {
		if o.pairs[i].Key != other.pairs[i].Key {
			return false
		}
		if !Equal(o.pairs[i].Value, other.pairs[i].Value) {
			return false
		}
	}

	return true
}
