// Package index implements the monthly rebalanced bond index simulation and
// the benchmark normalisation it is compared against.
package index

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hannawannana/simulated-bond-index-construction/internal/bond"
)

// ErrTooFewRows indicates the price table cannot seed holdings and still
// produce at least one revaluation step.
var ErrTooFewRows = errors.New("index: price table needs at least two monthly rows")

// Simulate runs a fixed-weight buy-and-rebalance loop over a monthly price
// table. The first row only establishes the initial unit holdings; every
// subsequent row produces one portfolio value net of turnover cost, so the
// output is one entry shorter than the input.
//
// At each step the holdings are revalued at the new prices, target holdings
// restoring the weight mix are computed, and a cost proportional to the
// traded notional is deducted from the reported value. The unit counts then
// move to the pre-cost target quantities; the cost lives only in the value
// sequence, never in the unit counts.
//
// A zero price makes the rebalancing division fault; the fault terminates
// the run and is not recovered here.
func Simulate(prices []bond.Row, weights bond.Vector, initialCapital, costRate decimal.Decimal) ([]decimal.Decimal, error) {
	if len(prices) < 2 {
		return nil, ErrTooFewRows
	}

	var units bond.Vector
	for _, m := range bond.Maturities {
		units.Set(m, initialCapital.Mul(weights.At(m)).Div(prices[0].Values.At(m)))
	}

	values := make([]decimal.Decimal, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		curr := prices[i].Values

		value := decimal.Zero
		for _, m := range bond.Maturities {
			value = value.Add(units.At(m).Mul(curr.At(m)))
		}

		var desired bond.Vector
		turnover := decimal.Zero
		for _, m := range bond.Maturities {
			target := value.Mul(weights.At(m)).Div(curr.At(m))
			desired.Set(m, target)
			turnover = turnover.Add(target.Sub(units.At(m)).Abs().Mul(curr.At(m)))
		}

		value = value.Sub(turnover.Mul(costRate))
		units = desired
		values = append(values, value)
	}

	return values, nil
}
