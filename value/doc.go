// Package value implements BONJSON's in-memory dynamic value model: a
// tagged union mirroring the JSON data model plus BigNumber (spec
// section 3.1).
//
// A Value is constructed once and is otherwise immutable; Array and
// Object variants hold their own slices, so copying a Value copies the
// header only (Go slice semantics), matching the "owned by its
// constructor, freed when dropped" lifecycle spec section 3.2
// describes in reference-counting terms.
package value
