package rational

import "math"

// Unlimited places no cap on the interpolation order beyond the table
// size. It is the default maximum order.
const Unlimited = math.MaxInt

// Option configures an Interpolator at construction time.
type Option func(*Interpolator)

// WithMaxOrder caps the number of samples used per query. Negative
// values are ignored here; use [Interpolator.SetMaxOrder] to get an
// error instead.
func WithMaxOrder(n int) Option {
	return func(in *Interpolator) {
		if n >= 0 {
			in.maxOrder = n
		}
	}
}
