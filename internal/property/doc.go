// Package property implements the mutable cells behind assignable
// properties and the append-only collections filled by adding functions.
//
// A Property is always in one of two states: unset, in which case reads
// return its convention, or set, in which case reads return the assigned
// value. The transition from unset to set is one-way. There is no reset, so
// once a value has been assigned the convention is never observed again,
// even if the same value as the convention is assigned.
package property
