// Package option contains Option[T], a value that is either present (Some)
// or absent (None), and the combinators that work on it without nil checks.
//
// Highlights:
// - Some/None/Of/FromPtr/FromOk: construct an Option
// - Filter/FilterNot/Exists: query the held value
// - Map/FlatMap/Map2/Map3: transform values, short-circuiting on None
// - Fold/FoldValue: reduce to a concrete value
// - GetOrElse/OrElse (and their Func forms): supply defaults
// - Try: turn a failing call into None
// - OfMap/Lookup: read maps without missing-key checks
//
// Option also behaves as a container with zero or one element (Size,
// Contains, Iterator, All).
package option
