// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill on float64 matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/akarpovskii/densemat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkV []float64
)

// randDense builds an n×m float64 matrix filled from a seeded source.
func randDense(b *testing.B, n, m int, seed int64) *matrix.Matrix[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, m)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64()
		}
	}

	return matrix.FromRows(rows)
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 1337)
			B := randDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAddInPlace(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 11)
			B := randDense(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := A.AddInPlace(B); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = A
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 7)
			B := randDense(b, n, n, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 3)
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.MulVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n+8, 5) // rectangular
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				A.Transpose()
			}
			sinkM = A
		})
	}
}
