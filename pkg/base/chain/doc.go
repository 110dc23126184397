// Package chain provides a small fluent Chain[T] over Either[error, T] for
// synchronous railway-style composition.
//
// - Start/FromValue/Failed: create a Chain
// - Then/ThenTry/To: continue on success, skip once a step failed
// - Map/Validate: transform or check the carried value
// - Or/And: pick among alternative chains
// - Ensure: side effects without changing the result
// - Finally: reduce to a concrete value
//
// Each step is a RightView flatMap on the carried Either, so a failure
// short-circuits every later step.
package chain
