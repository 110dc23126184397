// Package iterx provides the zero- and one-element iterators backing the
// container view of Option values and Either projections.
//
// Producers return a fresh, non-restartable instance on every call:
// - Empty: exhausted immediately
// - Single: yields its value once, then is exhausted
// - Seq: adapts an Iterator to a range-over-func sequence
package iterx
