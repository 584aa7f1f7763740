// Package value holds the immutable value types that may be stored in
// assignable properties or produced by pure functions, together with the
// registry that makes a value type visible to scripts.
//
// Value types have no identity beyond their fields. They are mapped onto
// cty object types through struct tags so that script expressions and the
// property cells share a single representation.
package value
