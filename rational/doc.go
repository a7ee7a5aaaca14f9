// Package rational implements Bulirsch-Stoer diagonal rational
// interpolation over an ordered sample table.
//
// A rational interpolant is a ratio of two polynomials fitted through a
// window of consecutive samples. Unlike a pure polynomial fit it can
// represent poles and is far less prone to Runge oscillation on many
// measured curves, at the price of possible division by a vanishing
// tableau denominator. That condition is detected explicitly: the query
// returns +Inf instead of a finite garbage value.
//
// # Usage
//
// Configure a maximum order, bind a table, query:
//
//	in := rational.New(rational.WithMaxOrder(5))
//	if err := in.BindValues(ts, xs); err != nil { ... }
//	v, err := in.Interpolate(1.5)
//
// The effective order per query is min(maxOrder, table length); each
// query costs O(order²) and allocates two order-sized scratch buffers.
// An Interpolator is not safe for concurrent use, but several
// interpolators may share one immutable table.
//
// Differentiation and integration are permanently unsupported by this
// algorithm; both report [ErrUnsupported].
package rational
