// Package table provides an immutable, ordered table of (t, x) samples
// with logarithmic-time position lookup. It is the data source consumed
// by the interpolators in this module.
//
// A Table is built once from two equal-length slices that must already be
// sorted by t in non-decreasing order; construction fails fast on unsorted
// input instead of sorting silently. After construction a Table is
// read-only, so it may be shared freely between goroutines.
//
// Equal adjacent t values are accepted but the interpolation result at a
// duplicated abscissa is unspecified.
package table
