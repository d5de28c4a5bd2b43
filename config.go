package bonjson

import (
	"github.com/bonjson-codec/bonjson/internal/dupkey"
	"github.com/bonjson-codec/bonjson/internal/options"
)

// UnicodeNormalization selects the string normalization the decoder
// applies before handing a string back to the caller.
type UnicodeNormalization uint8

const (
	// NormalizationNone performs no normalization (default).
	NormalizationNone UnicodeNormalization = iota
	// NormalizationNFC requires Unicode NFC normalization, used by
	// BONJSON's "Secure" compliance profile. An implementation that
	// selects this without installing a Normalizer (see Normalizer)
	// fails loudly at decode time rather than silently skipping it.
	NormalizationNFC
)

// Normalizer performs Unicode normalization on a decoded string. It is
// an injection point: this module does not vendor a normalization
// table, so NormalizationNFC requires a caller-supplied Normalizer via
// WithNormalizer.
type Normalizer interface {
	Normalize(s string) (string, error)
}

// UTF8Validator validates that a byte slice is well-formed UTF-8. The
// default implementation uses unicode/utf8; callers with a SIMD-backed
// validator can inject one via WithUTF8Validator.
type UTF8Validator interface {
	Valid(b []byte) bool
}

// DecoderConfig controls the decoder's limits and leniency, per spec
// section 4.3.
type DecoderConfig struct {
	allowNul            bool
	allowNaNInfinity    bool
	allowTrailingBytes  bool
	duplicateKeyMode    dupkey.Mode
	unicodeNormalize    UnicodeNormalization
	normalizer          Normalizer
	utf8Validator       UTF8Validator
	maxDepth            int
	maxContainerSize    int
	maxStringLength     int
	maxDocumentSize     int
}

// DefaultDecoderConfig returns the spec's documented defaults: no NUL,
// no NaN/Infinity, no trailing bytes, duplicate keys are an error, no
// normalization, and generous but finite limits.
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		allowNul:           false,
		allowNaNInfinity:   false,
		allowTrailingBytes: false,
		duplicateKeyMode:   dupkey.ModeError,
		unicodeNormalize:   NormalizationNone,
		maxDepth:           64,
		maxContainerSize:   1 << 24,
		maxStringLength:    1 << 28,
		maxDocumentSize:    1 << 30,
	}
}

// DecoderOption configures a DecoderConfig.
type DecoderOption = options.Option[*DecoderConfig]

// NewDecoderConfig builds a DecoderConfig from DefaultDecoderConfig
// plus opts applied in order.
func NewDecoderConfig(opts ...DecoderOption) (*DecoderConfig, error) {
	cfg := DefaultDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithAllowNul permits NUL bytes inside decoded strings.
func WithAllowNul() DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.allowNul = true })
}

// WithAllowNaNInfinity permits decoding non-finite floats.
func WithAllowNaNInfinity() DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.allowNaNInfinity = true })
}

// WithAllowTrailingBytes permits bytes after the root value.
func WithAllowTrailingBytes() DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.allowTrailingBytes = true })
}

// WithDuplicateKeyMode selects how the decoder resolves duplicate
// Object keys.
func WithDuplicateKeyMode(mode dupkey.Mode) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.duplicateKeyMode = mode })
}

// WithUnicodeNormalization selects the normalization profile. Selecting
// NormalizationNFC without also calling WithNormalizer causes decoding
// to fail with errs.ErrUnsupportedValue the first time a string is
// decoded, rather than silently skipping normalization.
func WithUnicodeNormalization(mode UnicodeNormalization) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.unicodeNormalize = mode })
}

// WithNormalizer injects the Unicode normalizer used when
// NormalizationNFC is selected.
func WithNormalizer(n Normalizer) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.normalizer = n })
}

// WithUTF8Validator overrides the default unicode/utf8-based validator.
func WithUTF8Validator(v UTF8Validator) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.utf8Validator = v })
}

// WithMaxDepth sets the container nesting ceiling.
func WithMaxDepth(n int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.maxDepth = n })
}

// WithMaxContainerSize sets the per-container cardinality ceiling.
func WithMaxContainerSize(n int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.maxContainerSize = n })
}

// WithMaxStringLength sets the per-string byte-length ceiling.
func WithMaxStringLength(n int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.maxStringLength = n })
}

// WithMaxDocumentSize sets the total input-size ceiling.
func WithMaxDocumentSize(n int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) { c.maxDocumentSize = n })
}

// EncoderConfig controls the encoder's leniency, per spec section 4.2.
type EncoderConfig struct {
	allowNul         bool
	allowNaNInfinity bool
	maxDepth         int
}

// DefaultEncoderConfig mirrors DefaultDecoderConfig's leniency
// defaults for the write side.
func DefaultEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		allowNul:         false,
		allowNaNInfinity: false,
		maxDepth:         64,
	}
}

// EncoderOption configures an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// NewEncoderConfig builds an EncoderConfig from DefaultEncoderConfig
// plus opts applied in order.
func NewEncoderConfig(opts ...EncoderOption) (*EncoderConfig, error) {
	cfg := DefaultEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithEncodeAllowNul permits NUL bytes inside encoded strings.
func WithEncodeAllowNul() EncoderOption {
	return options.NoError(func(c *EncoderConfig) { c.allowNul = true })
}

// WithEncodeAllowNaNInfinity permits encoding non-finite floats.
func WithEncodeAllowNaNInfinity() EncoderOption {
	return options.NoError(func(c *EncoderConfig) { c.allowNaNInfinity = true })
}

// WithEncodeMaxDepth sets the container nesting ceiling enforced by
// the value-level encode driver.
func WithEncodeMaxDepth(n int) EncoderOption {
	return options.NoError(func(c *EncoderConfig) { c.maxDepth = n })
}
