// Package dupkey tracks the keys seen so far while decoding a BONJSON
// Object and resolves duplicates according to the configured policy.
//
// It is the decode-side counterpart of spec section 4.5's duplicate-key
// set and section 9's requirement that KeepLast overwrite a slot in
// place rather than remove-and-reinsert.
package dupkey

import "github.com/bonjson-codec/bonjson/errs"

// Mode selects how a repeated Object key is resolved.
type Mode uint8

const (
	// ModeError rejects the document with errs.ErrDuplicateKey.
	ModeError Mode = iota
	// ModeKeepFirst discards every value after the first one seen for a key.
	ModeKeepFirst
	// ModeKeepLast keeps the most recently seen value, overwriting the
	// original slot so insertion order is preserved.
	ModeKeepLast
)

// Action tells the caller what to do with the pair it just decoded.
type Action uint8

const (
	// ActionInsert means the key is new: append a pair at the next slot.
	ActionInsert Action = iota
	// ActionSkip means the key is a duplicate under KeepFirst: discard
	// the newly decoded value, keep the existing slot untouched.
	ActionSkip
	// ActionOverwrite means the key is a duplicate under KeepLast:
	// write the newly decoded value into PriorIndex, don't append.
	ActionOverwrite
)

// Tracker tracks Object keys by their raw (or NFC-normalized, if the
// caller normalizes before calling Track) byte form and resolves
// duplicates according to Mode.
type Tracker struct {
	index map[string]int // key -> slot index in the Object's pair slice
	mode  Mode
}

// New creates a Tracker for one Object's decode pass.
func New(mode Mode) *Tracker {
	return &Tracker{
		index: make(map[string]int),
		mode:  mode,
	}
}

// Track records that key was seen, destined for slot nextIndex (the
// position it would occupy if this is the first time the key appears).
// It returns the Action the caller should take and, for
// ActionOverwrite, the PriorIndex to overwrite.
func (t *Tracker) Track(key string, nextIndex int) (action Action, priorIndex int, err error) {
	existing, seen := t.index[key]
	if !seen {
		t.index[key] = nextIndex
		return ActionInsert, -1, nil
	}

	switch t.mode {
	case ModeError:
		return 0, -1, errs.Wrap(errs.ErrDuplicateKey, "duplicate object key %q", key)
	case ModeKeepFirst:
		return ActionSkip, existing, nil
	case ModeKeepLast:
		return ActionOverwrite, existing, nil
	default:
		return 0, -1, errs.Wrap(errs.ErrDuplicateKey, "duplicate object key %q", key)
	}
}

// Count returns the number of distinct keys tracked so far.
func (t *Tracker) Count() int {
	return len(t.index)
}
