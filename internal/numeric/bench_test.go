package numeric

import (
	"testing"

	"github.com/san-kum/integralab/internal/expr"
)

func BenchmarkMidpoint(b *testing.B) {
	f := expr.MustParse("sin(x)*exp(-x^2)+sqrt(x+4)")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Midpoint(f, -2, 2, DefaultPartitions)
	}
}

func BenchmarkSimpson(b *testing.B) {
	f := expr.MustParse("sin(x)*exp(-x^2)+sqrt(x+4)")
	rule := NewSimpson()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rule.Integrate(f, -2, 2, DefaultPartitions)
	}
}

func BenchmarkSampleFunc(b *testing.B) {
	f := expr.MustParse("1/x+ln(x)")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SampleFunc(f, -5, 5, 640)
	}
}
