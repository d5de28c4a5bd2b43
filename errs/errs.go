// Package errs provides the closed error-kind taxonomy shared by the
// encoder, decoder, and value codec.
//
// Every fallible operation in bonjson returns one of the sentinel
// errors below (optionally wrapped with additional context via
// fmt.Errorf("%w: ...", errs.ErrInvalidData, ...)). Callers can test
// the kind with errors.Is, and conformance tests can match the stable
// string name returned by Kind.String().
package errs

import "fmt"

// Kind is a closed enumeration of BONJSON failure categories. It is
// never extended with a generic "other" bucket: every failure must be
// classified as one of these.
type Kind uint8

const (
	// InvalidData covers malformed wire bytes: unexpected or reserved
	// type codes, BigNumber denormalization, a NUL byte in a string
	// when disallowed, NaN/Infinity when disallowed, invalid UTF-8,
	// trailing bytes when disallowed, and u64-to-i64 overflow.
	InvalidData Kind = iota
	// UnexpectedEOF means the input ended in the middle of a value.
	UnexpectedEOF
	// LimitExceeded means max_depth, max_container_size,
	// max_string_length, or max_document_size was exceeded.
	LimitExceeded
	// DuplicateKey means an Object contained a repeated key under the
	// Error duplicate-key policy.
	DuplicateKey
	// SinkError means the underlying byte sink failed during encode.
	SinkError
	// UnsupportedValue means the caller tried to encode or request
	// something BONJSON cannot represent.
	UnsupportedValue
)

// String returns the stable external name used by the conformance
// suite and by error messages.
func (k Kind) String() string {
	switch k {
	case InvalidData:
		return "invalid_data"
	case UnexpectedEOF:
		return "unexpected_eof"
	case LimitExceeded:
		return "limit_exceeded"
	case DuplicateKey:
		return "duplicate_key"
	case SinkError:
		return "sink_error"
	case UnsupportedValue:
		return "unsupported_value"
	default:
		return "unknown"
	}
}

// Error is a BONJSON error: a stable Kind plus a human-readable message.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Is reports whether target is the same Kind, so errors.Is(err,
// errs.ErrInvalidData) works even when err has been wrapped with
// additional context via fmt.Errorf("%w: ...", ...).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == other.Kind
}

func newError(kind Kind) *Error {
	return &Error{Kind: kind, msg: kind.String()}
}

// Sentinel errors, one per Kind, for use with errors.Is and as the
// %w argument to fmt.Errorf when more context is available.
var (
	ErrInvalidData      = newError(InvalidData)
	ErrUnexpectedEOF    = newError(UnexpectedEOF)
	ErrLimitExceeded    = newError(LimitExceeded)
	ErrDuplicateKey     = newError(DuplicateKey)
	ErrSinkError        = newError(SinkError)
	ErrUnsupportedValue = newError(UnsupportedValue)
)

// Wrap attaches context to a sentinel error while preserving its Kind
// for errors.Is.
func Wrap(sentinel *Error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
