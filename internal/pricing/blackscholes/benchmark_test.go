package blackscholes

import (
	"testing"

	"options-pricer/internal/models"
)

var benchSink float64

// BenchmarkPrice benchmarks the closed-form price.
func BenchmarkPrice(b *testing.B) {
	engine := New(contract(models.Call))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = engine.Price()
	}
}

// BenchmarkGreeks benchmarks computing all five sensitivities.
func BenchmarkGreeks(b *testing.B) {
	engine := New(contract(models.Call))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		greeks := engine.Greeks()
		benchSink = greeks.Delta
	}
}

// BenchmarkImpliedVolatility benchmarks a full Newton-Raphson solve.
func BenchmarkImpliedVolatility(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iv, err := ImpliedVolatility(100, 100, 1, 0.05, 12, models.Call)
		if err != nil {
			b.Fatal(err)
		}
		benchSink = iv
	}
}
