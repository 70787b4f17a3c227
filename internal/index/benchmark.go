package index

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// NormalizeBenchmark converts a raw benchmark price series into a
// cumulative-return index scaled to the initial capital. The first
// observation only anchors the first return, so the output is one entry
// shorter than the input, matching the simulator's output length.
func NormalizeBenchmark(values []decimal.Decimal, initialCapital decimal.Decimal) []decimal.Decimal {
	if len(values) < 2 {
		return nil
	}

	out := make([]decimal.Decimal, 0, len(values)-1)
	level := initialCapital
	for i := 1; i < len(values); i++ {
		ret := values[i].Div(values[i-1]).Sub(one)
		level = level.Mul(one.Add(ret))
		out = append(out, level)
	}
	return out
}
