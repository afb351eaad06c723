// Package userdata shapes, validates, sanitizes, and summarizes user record
// data for an API layer.
//
// Every operation is synchronous and stateless: inputs are never mutated,
// results are freshly allocated, and malformed input degrades to a zero-ish
// result instead of an error on every path except DeepClone. Operations that
// consume wall-clock time or randomness hang off Service so both sources stay
// injectable.
package userdata
