package lti

import (
	"fmt"
	"testing"
)

func benchFilter(na, nb int) *Filter {
	a := make([]float64, na)
	a[0] = 1
	for k := 1; k < na; k++ {
		a[k] = 0.1 / float64(k)
	}
	b := make([]float64, nb)
	for k := range b {
		b[k] = 1 / float64(nb)
	}
	f, err := New(a, b)
	if err != nil {
		panic(err)
	}
	return f
}

func BenchmarkProcessSample(b *testing.B) {
	for _, order := range []int{2, 4, 8, 16} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			f := benchFilter(order, order)

			x := 1.0
			for b.Loop() {
				x = f.ProcessSample(x)
			}

			_ = x
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, order := range []int{2, 4, 8, 16} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			f := benchFilter(order, order)

			buf := make([]float64, 1024)
			for i := range buf {
				buf[i] = float64(i) * 0.001
			}

			b.SetBytes(1024 * 8)
			b.ResetTimer()

			for range b.N {
				f.ProcessBlock(buf)
			}
		})
	}
}

func BenchmarkConvolve(b *testing.B) {
	f1 := benchFilter(4, 4)
	f2 := benchFilter(4, 4)

	for b.Loop() {
		if _, err := Convolve(f1, f2); err != nil {
			b.Fatal(err)
		}
	}
}
