package bond

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPriceZeroYield(t *testing.T) {
	price := Price(decimal.Zero, 5)
	if !price.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("zero yield should price at face value, got %s", price)
	}
}

func TestPriceKnownValue(t *testing.T) {
	price := Price(decimal.NewFromInt(5), 1)
	expected := decimal.NewFromInt(100).Div(decimal.RequireFromString("1.05"))
	if !price.Equal(expected) {
		t.Fatalf("want %s, got %s", expected, price)
	}
}

func TestPricePositiveAndDecreasingInYield(t *testing.T) {
	step := decimal.RequireFromString("0.5")
	for _, duration := range []int{0, 1, 5, 10} {
		prev := decimal.Decimal{}
		y := decimal.NewFromInt(-50)
		for i := 0; i < 100; i++ {
			price := Price(y, duration)
			if price.Sign() <= 0 {
				t.Fatalf("price at yield %s duration %d not positive: %s", y, duration, price)
			}
			if i > 0 && duration > 0 && price.GreaterThanOrEqual(prev) {
				t.Fatalf("price not decreasing at yield %s duration %d: %s >= %s", y, duration, price, prev)
			}
			prev = price
			y = y.Add(step)
		}
	}
}

func TestPriceRowsAppliesPerTenorDurations(t *testing.T) {
	date := time.Date(2018, time.January, 31, 0, 0, 0, 0, time.UTC)
	yield := decimal.NewFromInt(5)

	row := Row{Date: date}
	for _, m := range Maturities {
		row.Values.Set(m, yield)
	}

	prices := PriceRows([]Row{row})
	if len(prices) != 1 {
		t.Fatalf("want 1 priced row, got %d", len(prices))
	}
	for _, m := range Maturities {
		expected := Price(yield, m.DurationYears())
		if got := prices[0].Values.At(m); !got.Equal(expected) {
			t.Fatalf("%s: want %s, got %s", m, expected, got)
		}
	}
	if prices[0].Values.OneYear.Equal(prices[0].Values.TenYear) {
		t.Fatal("different durations should produce different prices")
	}
}

func TestDurationYears(t *testing.T) {
	cases := map[Maturity]int{Maturity1Y: 1, Maturity5Y: 5, Maturity10Y: 10}
	for m, want := range cases {
		if got := m.DurationYears(); got != want {
			t.Fatalf("%s: want %d, got %d", m, want, got)
		}
	}
}

func TestVectorRoundTrip(t *testing.T) {
	var v Vector
	for i, m := range Maturities {
		v.Set(m, decimal.NewFromInt(int64(i+1)))
	}
	for i, m := range Maturities {
		if !v.At(m).Equal(decimal.NewFromInt(int64(i + 1))) {
			t.Fatalf("%s: unexpected value %s", m, v.At(m))
		}
	}
}
