package rational

import (
	"math"
	"testing"
)

func benchTable(b *testing.B, n int) (ts, xs []float64) {
	b.Helper()
	ts = make([]float64, n)
	xs = make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) * 0.1
		xs[i] = math.Exp(-ts[i] * ts[i] / 40)
	}
	return ts, xs
}

func BenchmarkInterpolateOrder5(b *testing.B) {
	ts, xs := benchTable(b, 1024)

	in := New(WithMaxOrder(5))
	if err := in.BindValues(ts, xs); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for b.Loop() {
		if _, err := in.Interpolate(51.23); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInterpolateOrder16(b *testing.B) {
	ts, xs := benchTable(b, 1024)

	in := New(WithMaxOrder(16))
	if err := in.BindValues(ts, xs); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for b.Loop() {
		if _, err := in.Interpolate(51.23); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLocate(b *testing.B) {
	ts, xs := benchTable(b, 1024)

	in := New()
	if err := in.BindValues(ts, xs); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for b.Loop() {
		in.tab.Locate(51.23)
	}
}
