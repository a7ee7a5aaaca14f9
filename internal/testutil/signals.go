package testutil

// UniformPoints returns n points start, start+step, ..., start+(n-1)*step.
func UniformPoints(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Sample evaluates f at every point of ts.
func Sample(f func(float64) float64, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = f(t)
	}
	return out
}
