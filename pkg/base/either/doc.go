// Package either contains Either[L, R], a value that is exactly one of a Left
// or a Right, and the side-biased views used to chain work on one side.
//
// An Either on its own only supports construction, Fold, Swap, Merge and the
// conversions to Option. The combinators live on its projections:
// - Left/Right: select a LeftView or RightView
// - FlatMapLeft/FlatMapRight: continue on the active side, pass the other through
// - MapLeft/MapRight, MapLeft2/MapRight2: transform the active side
// - Exists/Filter/ToOption/GetOrElse: query the active side
//
// Try turns a call returning (T, error) into Either[error, T].
package either
