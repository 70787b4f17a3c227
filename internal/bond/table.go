package bond

import (
	"fmt"

	"github.com/hannawannana/simulated-bond-index-construction/internal/series"
)

// SeriesSet carries one monthly yield series per tenor.
type SeriesSet struct {
	OneYear  series.Series
	FiveYear series.Series
	TenYear  series.Series
}

// At returns the series for the given tenor.
func (s SeriesSet) At(m Maturity) series.Series {
	switch m {
	case Maturity1Y:
		return s.OneYear
	case Maturity5Y:
		return s.FiveYear
	case Maturity10Y:
		return s.TenYear
	default:
		panic(fmt.Sprintf("unknown maturity %q", string(m)))
	}
}

// YieldTable joins the per-tenor monthly series into one table over the
// intersection of their months. A month missing from any tenor is dropped
// from the table entirely.
func YieldTable(set SeriesSet) []Row {
	dates := series.Intersect(set.OneYear, set.FiveYear, set.TenYear)

	rows := make([]Row, 0, len(dates))
	for _, date := range dates {
		row := Row{Date: date}
		for _, m := range Maturities {
			value, _ := set.At(m).At(date)
			row.Values.Set(m, value)
		}
		rows = append(rows, row)
	}
	return rows
}
