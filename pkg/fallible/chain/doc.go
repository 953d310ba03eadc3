// Package chain provides a fluent wrapper around function.Function for
// building pipelines of fallible stages that share one error type E.
//
// Every stage is joined with function.AndThen or function.Compose, so a
// failing stage stops the pipeline and its error reaches the caller
// unchanged.
//
// Key operations:
// - Start: begin a chain from a Function
// - Then: append a stage that may fail
// - Map: append a stage that cannot fail
// - Before: prepend a stage that converts the input
// - Func/Lift/Unchecked/Sneaky/Try: finish the chain with one of the adapters
package chain
