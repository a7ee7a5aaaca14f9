package rational

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-interp/internal/numeric"
	"github.com/cwbudde/algo-interp/table"
)

// Errors returned by interpolator configuration and queries.
var (
	ErrNegativeOrder = errors.New("rational: maximum order must be >= 0")
	ErrNilTable      = errors.New("rational: table is nil")
	ErrNoTable       = errors.New("rational: no table bound")
	ErrEmptyTable    = errors.New("rational: table is empty")
	ErrUnsupported   = errors.New("rational: operation not supported by this algorithm")
)

const (
	// exactEps is the tolerance for the exact-node shortcut. A query that
	// is numerically indistinguishable from a tabulated abscissa returns
	// the tabulated value directly, keeping interpolate(t_i) == x_i and
	// avoiding a guaranteed zero denominator in the tableau.
	exactEps = 1e-12

	// dSeed offsets the d column at level zero so that an interpolant
	// passing exactly through rational data degenerates to 0/0 harmlessly
	// instead of 0/0 at the first recursion level.
	dSeed = 1e-15

	// poleEps flags a tableau denominator as vanished when it is this
	// small relative to the terms that formed it. At a genuine pole the
	// denominator collapses while its operands stay finite; ordinary
	// tableau convergence shrinks denominator and operands together and
	// stays far above this threshold.
	poleEps = 1e-14
)

// Derivatives bundles a value with its first and second derivative.
type Derivatives struct {
	Value  float64
	First  float64
	Second float64
}

// Interpolator evaluates an order-limited diagonal rational interpolant
// over a bound sample table.
//
// Use [New] to construct one. An Interpolator borrows the bound table
// for the session and never mutates it.
type Interpolator struct {
	maxOrder int
	tab      *table.Table
}

// New returns an interpolator with an unlimited maximum order.
func New(opts ...Option) *Interpolator {
	in := &Interpolator{maxOrder: Unlimited}
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}

	return in
}

// MaxOrder returns the configured maximum order.
func (in *Interpolator) MaxOrder() int {
	return in.maxOrder
}

// SetMaxOrder caps the number of samples used per query. n = 0 is a
// degenerate but accepted configuration: every query collapses to the
// nearest tabulated value. Use [Unlimited] to remove the cap.
func (in *Interpolator) SetMaxOrder(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}

	in.maxOrder = n

	return nil
}

// Bind attaches a sample table. The table is borrowed, not copied, and
// must stay unmodified while bound (table.Table is immutable, so any
// table satisfies this).
func (in *Interpolator) Bind(tab *table.Table) error {
	if tab == nil {
		return ErrNilTable
	}

	in.tab = tab

	return nil
}

// BindValues constructs a table from t coordinates and values and binds
// it. Construction errors from [table.New] are returned unchanged.
func (in *Interpolator) BindValues(ts, xs []float64) error {
	tab, err := table.New(ts, xs)
	if err != nil {
		return err
	}

	return in.Bind(tab)
}

// EffectiveOrder returns the number of samples used per query,
// min(MaxOrder, table length). ok is false before any table is bound.
func (in *Interpolator) EffectiveOrder() (order int, ok bool) {
	if in.tab == nil {
		return 0, false
	}

	return in.effectiveOrder(), true
}

func (in *Interpolator) effectiveOrder() int {
	m := in.MaxOrder()
	if n := in.tab.Len(); m > n {
		return n
	}

	return m
}

// SupportsDifferentiation reports whether Differentiate can succeed.
// It is always false for rational interpolation.
func (in *Interpolator) SupportsDifferentiation() bool { return false }

// SupportsIntegration reports whether Integrate can succeed.
// It is always false for rational interpolation.
func (in *Interpolator) SupportsIntegration() bool { return false }

// Differentiate always fails with [ErrUnsupported]: the tableau recursion
// yields no derivative information.
func (in *Interpolator) Differentiate(t float64) (Derivatives, error) {
	return Derivatives{}, fmt.Errorf("%w: differentiation", ErrUnsupported)
}

// Integrate always fails with [ErrUnsupported]: the tableau recursion
// yields no antiderivative information.
func (in *Interpolator) Integrate(t float64) (float64, error) {
	return 0, fmt.Errorf("%w: integration", ErrUnsupported)
}

// suggestOffset selects the sample window for a query.
//
// offset is the first window index: the window of effectiveOrder samples
// is centered on the locate result and clamped into the table. closest is
// the tie-broken nearest sample index; the tie-break deliberately does
// not shift the window, only the tableau's center pointer.
func (in *Interpolator) suggestOffset(t float64, m int) (offset, closest int) {
	n := in.tab.Len()

	closest = in.tab.Locate(t)
	if closest < 0 {
		closest = 0
	}

	offset = numeric.ClampInt(closest-(m-1)/2, 0, n-m)

	if closest < n-1 &&
		math.Abs(in.tab.T(closest+1)-t) < math.Abs(in.tab.T(closest)-t) {
		closest++
	}

	return offset, closest
}

// Interpolate evaluates the rational interpolant at t.
//
// A query at (or numerically indistinguishable from) a tabulated
// abscissa returns the tabulated value directly. When the fitted rational
// function has a pole at t, Interpolate returns +Inf with a nil error;
// the sign of the approaching pole is not determined. Callers must treat
// an infinite result as "no finite rational value fits this window here".
func (in *Interpolator) Interpolate(t float64) (float64, error) {
	if in.tab == nil {
		return 0, ErrNoTable
	}

	n := in.tab.Len()
	if n == 0 {
		return 0, ErrEmptyTable
	}

	m := in.effectiveOrder()
	offset, closest := in.suggestOffset(t, m)

	if numeric.NearlyEqual(t, in.tab.T(closest), exactEps) {
		return in.tab.X(closest), nil
	}

	c := make([]float64, m)
	d := make([]float64, m)
	for i := range c {
		v := in.tab.X(offset + i)
		c[i] = v
		d[i] = v + dSeed
	}

	ns := closest - offset
	x := in.tab.X(offset + ns)
	ns--

	for level := 1; level < m; level++ {
		for i := 0; i < m-level; i++ {
			hp := in.tab.T(offset+i+level) - t
			ho := (in.tab.T(offset+i) - t) * d[i] / hp

			den := ho - c[i+1]
			if math.Abs(den) <= poleEps*math.Max(math.Abs(ho), math.Abs(c[i+1])) {
				return math.Inf(1), nil
			}

			den = (c[i+1] - d[i]) / den
			d[i] = c[i+1] * den
			c[i] = ho * den
		}

		if 2*(ns+1) < m-level {
			x += c[ns+1]
		} else {
			x += d[ns]
			ns--
		}
	}

	return x, nil
}
