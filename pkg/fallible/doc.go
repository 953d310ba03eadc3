// Package fallible contains the adapter protocol shared by every function
// shape in this module. A fallible function is any Go function whose last
// result is an error of type E; the protocol converts a single call of such
// a function into one of:
//
// - LiftCall: an Optional[R], absorbing the failure
// - UncheckedCall: R, panicking with a *WrappedError around the failure
// - SneakyCall: R, panicking with the original failure value
// - TryCall: a Result[R] that keeps the failure as a value
//
// The per-shape packages (supplier, function, bifunction, consumer,
// biconsumer, unaryop, binaryop, predicate, runnable) close over their
// arguments and delegate to these calls.
//
// A panic carrying an error is the ambient failure channel: callers that
// use Unchecked or Sneaky adapters must be prepared to recover it, for
// example with Catch.
package fallible
