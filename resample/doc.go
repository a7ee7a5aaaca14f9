// Package resample evaluates a rational interpolant over a uniform grid,
// turning nonuniformly sampled (t, x) tables into evenly spaced signals
// suitable for FFT-based analysis.
//
// A pole of the fitted rational function inside the grid is a hard
// failure here: unlike the rational package, which reports poles as +Inf
// values, Resample rejects the whole grid with [ErrPole] because an
// infinite sample would poison any downstream spectrum.
//
// Spectrum and NormalizePeak are small post-processing helpers for the
// resampled signal.
package resample
