package index

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeBenchmark(t *testing.T) {
	in := []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(110),
		decimal.NewFromInt(99),
	}

	out := NormalizeBenchmark(in, decimal.NewFromInt(1000))
	if len(out) != len(in)-1 {
		t.Fatalf("want %d values, got %d", len(in)-1, len(out))
	}

	// First value is capital * (1 + r_1) with r_1 = 10%.
	if !out[0].Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("want 1100, got %s", out[0])
	}
	// 1100 * (99/110) = 990.
	if !out[1].Equal(decimal.NewFromInt(990)) {
		t.Fatalf("want 990, got %s", out[1])
	}
}

func TestNormalizeBenchmarkTooShort(t *testing.T) {
	if out := NormalizeBenchmark([]decimal.Decimal{decimal.NewFromInt(100)}, decimal.NewFromInt(1000)); out != nil {
		t.Fatalf("want nil for single observation, got %v", out)
	}
}

func TestNormalizeBenchmarkFlatSeries(t *testing.T) {
	in := []decimal.Decimal{
		decimal.NewFromInt(4000),
		decimal.NewFromInt(4000),
		decimal.NewFromInt(4000),
	}
	capital := decimal.NewFromInt(1000)

	for i, v := range NormalizeBenchmark(in, capital) {
		if !v.Equal(capital) {
			t.Fatalf("step %d: flat series should hold at %s, got %s", i+1, capital, v)
		}
	}
}
