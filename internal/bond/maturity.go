package bond

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Maturity identifies one of the fixed yield-curve tenors the index is built from.
type Maturity string

const (
	Maturity1Y  Maturity = "1Y"
	Maturity5Y  Maturity = "5Y"
	Maturity10Y Maturity = "10Y"
)

// Maturities lists all supported tenors in curve order.
var Maturities = []Maturity{Maturity1Y, Maturity5Y, Maturity10Y}

// DurationYears returns the fixed discounting exponent for the tenor.
func (m Maturity) DurationYears() int {
	switch m {
	case Maturity1Y:
		return 1
	case Maturity5Y:
		return 5
	case Maturity10Y:
		return 10
	default:
		panic(fmt.Sprintf("unknown maturity %q", string(m)))
	}
}

// Vector holds one decimal per tenor. It doubles as a weight vector, a price
// row, and a unit-holdings record depending on context.
type Vector struct {
	OneYear  decimal.Decimal
	FiveYear decimal.Decimal
	TenYear  decimal.Decimal
}

// At returns the component for the given tenor.
func (v Vector) At(m Maturity) decimal.Decimal {
	switch m {
	case Maturity1Y:
		return v.OneYear
	case Maturity5Y:
		return v.FiveYear
	case Maturity10Y:
		return v.TenYear
	default:
		panic(fmt.Sprintf("unknown maturity %q", string(m)))
	}
}

// Set assigns the component for the given tenor.
func (v *Vector) Set(m Maturity, value decimal.Decimal) {
	switch m {
	case Maturity1Y:
		v.OneYear = value
	case Maturity5Y:
		v.FiveYear = value
	case Maturity10Y:
		v.TenYear = value
	default:
		panic(fmt.Sprintf("unknown maturity %q", string(m)))
	}
}
