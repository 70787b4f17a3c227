package bond

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	faceValue  = decimal.NewFromInt(100)
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
)

// Price converts an annualised yield (in percent) into an implied zero-coupon
// price for a 100 face value bond of the given duration:
//
//	price = 100 / (1 + yield/100)^duration
//
// A yield at or below -100 makes the discount factor zero or negative; the
// resulting division fault is fatal to the run rather than recovered.
func Price(yieldPercent decimal.Decimal, durationYears int) decimal.Decimal {
	discount := one.Add(yieldPercent.Div(oneHundred)).Pow(decimal.NewFromInt(int64(durationYears)))
	return faceValue.Div(discount)
}

// Row pairs a month-end date with one value per tenor (yields or prices).
type Row struct {
	Date   time.Time
	Values Vector
}

// PriceRows maps a table of monthly yields into the implied price table,
// applying Price independently per tenor with its fixed duration.
func PriceRows(yields []Row) []Row {
	prices := make([]Row, 0, len(yields))
	for _, row := range yields {
		priced := Row{Date: row.Date}
		for _, m := range Maturities {
			priced.Values.Set(m, Price(row.Values.At(m), m.DurationYears()))
		}
		prices = append(prices, priced)
	}
	return prices
}
