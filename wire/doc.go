// Package wire defines the BONJSON type-code table: the first-byte
// classification of every encoded item, the mask predicates used to
// dispatch on it, and the size lookups for sized integer and string
// forms.
//
// The layout is bit-exact and is the single source of truth for both
// the encoder and the decoder; neither package re-derives ranges.
package wire
