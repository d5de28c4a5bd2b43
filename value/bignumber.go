package value

// BigNumber is an arbitrary-precision decimal value:
// sign * magnitude * 10^exponent, where magnitude is bounded to fit a
// uint64 word (spec section 3.1). math/big is deliberately not used
// here: a fixed 64-bit magnitude needs no arbitrary-precision
// arithmetic, only storage and the normalization rule of spec
// section 4.4.
type BigNumber struct {
	// Sign is -1, 0, or +1. A Sign of 0 always represents the value
	// zero, regardless of Magnitude/Exponent.
	Sign int8
	// Magnitude is the non-negative integer magnitude.
	Magnitude uint64
	// Exponent is the power of ten the magnitude is scaled by.
	Exponent int64
}

// NewBigNumber constructs a BigNumber, normalizing zero magnitudes to
// Sign 0 and Exponent 0 per spec section 4.4.
func NewBigNumber(sign int8, magnitude uint64, exponent int64) BigNumber {
	return BigNumber{Sign: sign, Magnitude: magnitude, Exponent: exponent}.Normalize()
}

// Normalize applies spec section 4.4's rule that a zero magnitude
// always has Sign 0 and Exponent 0, so two BigNumbers representing
// zero compare equal regardless of how they were constructed.
func (b BigNumber) Normalize() BigNumber {
	if b.Magnitude == 0 {
		return BigNumber{Sign: 0, Magnitude: 0, Exponent: 0}
	}
	if b.Sign > 0 {
		b.Sign = 1
	} else if b.Sign < 0 {
		b.Sign = -1
	}

	return b
}

// IsZero reports whether b represents the value zero.
func (b BigNumber) IsZero() bool {
	return b.Magnitude == 0
}

// Equal compares two normalized BigNumbers for exact equality (not
// numeric equivalence across different magnitude/exponent pairs that
// happen to represent the same decimal value).
func (b BigNumber) Equal(other BigNumber) bool {
	nb, no := b.Normalize(), other.Normalize()

	return nb.Sign == no.Sign && nb.Magnitude == no.Magnitude && nb.Exponent == no.Exponent
}
