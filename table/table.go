package table

import (
	"errors"
	"fmt"
)

// Errors returned by table construction.
var (
	ErrNilSamples     = errors.New("table: sample slice is nil")
	ErrLengthMismatch = errors.New("table: t and x slices differ in length")
	ErrUnsorted       = errors.New("table: t values must be non-decreasing")
)

// Table is an ordered set of (t, x) samples, non-decreasing in t.
//
// The zero value is an empty table. Tables are immutable after
// construction and hold private copies of the caller's slices.
type Table struct {
	ts []float64
	xs []float64
}

// New builds a table from t coordinates and their observed values.
//
// ts must be sorted in non-decreasing order; both slices must be non-nil
// and of equal length. Empty input yields a valid empty table.
func New(ts, xs []float64) (*Table, error) {
	if ts == nil || xs == nil {
		return nil, ErrNilSamples
	}

	if len(ts) != len(xs) {
		return nil, fmt.Errorf("%w: len(ts) = %d, len(xs) = %d",
			ErrLengthMismatch, len(ts), len(xs))
	}

	for i := 0; i < len(ts)-1; i++ {
		if ts[i+1] < ts[i] {
			return nil, fmt.Errorf("%w: ts[%d] = %g > ts[%d] = %g",
				ErrUnsorted, i, ts[i], i+1, ts[i+1])
		}
	}

	tab := &Table{
		ts: make([]float64, len(ts)),
		xs: make([]float64, len(xs)),
	}
	copy(tab.ts, ts)
	copy(tab.xs, xs)

	return tab, nil
}

// Len returns the number of samples.
func (tab *Table) Len() int {
	return len(tab.ts)
}

// T returns the t coordinate of sample i.
//
// T panics if i is outside [0, Len()).
func (tab *Table) T(i int) float64 {
	return tab.ts[i]
}

// X returns the observed value of sample i.
//
// X panics if i is outside [0, Len()).
func (tab *Table) X(i int) float64 {
	return tab.xs[i]
}

// Locate returns the index of the last sample whose t coordinate is <= t.
//
// It returns -1 when t lies below the first sample and Len()-1 when t lies
// at or above the last one. The search is O(log n).
func (tab *Table) Locate(t float64) int {
	lo, hi := 0, len(tab.ts)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if tab.ts[mid] <= t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo - 1
}
