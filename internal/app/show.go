package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/hannawannana/simulated-bond-index-construction/internal/bond"
)

// Show fetches the configured window and prints the resampled monthly yields
// alongside the implied bond prices.
func (a *App) Show(ctx context.Context) error {
	start, end, err := a.Config.Analysis.Window()
	if err != nil {
		return err
	}

	yields, err := a.fetchYieldTable(ctx, a.newFetcher(), start, end)
	if err != nil {
		return err
	}
	prices := bond.PriceRows(yields)

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Month\tYield 1Y\tYield 5Y\tYield 10Y\tPrice 1Y\tPrice 5Y\tPrice 10Y")

	for i, row := range yields {
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Date.Format(monthFormat),
			row.Values.OneYear.StringFixed(3),
			row.Values.FiveYear.StringFixed(3),
			row.Values.TenYear.StringFixed(3),
			prices[i].Values.OneYear.StringFixed(3),
			prices[i].Values.FiveYear.StringFixed(3),
			prices[i].Values.TenYear.StringFixed(3),
		)
	}

	return writer.Flush()
}

const monthFormat = "2006-01"
