// Package scalargrad is a reverse-mode automatic differentiation engine
// over scalar values.
//
// Every operation on a Value builds a new node in a computation graph and
// records the local derivative of the result with respect to each input at
// construction time. Calling Backward on a terminal node then walks the
// graph in reverse topological order, accumulating gradients into every
// ancestor with the chain rule.
//
// The engine does not guard mathematically undefined operations: dividing
// by a zero-valued node or raising zero to a negative power propagates the
// usual IEEE-754 result (Inf, NaN) instead of failing. Arguments that would
// be type errors in a dynamic language (a non-numeric leaf, a Value used as
// an exponent) are rejected by the type system here: leaves are float64 and
// Pow takes a plain float64 exponent.
//
// Gradients accumulate. Running Backward twice without resetting doubles
// every gradient; call ZeroGrad on the terminal (or ZeroGrad on a Module's
// parameters) before reusing a graph.
package scalargrad
