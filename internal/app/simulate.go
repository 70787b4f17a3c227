package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hannawannana/simulated-bond-index-construction/internal/bond"
	"github.com/hannawannana/simulated-bond-index-construction/internal/index"
)

// Simulate runs both configured strategies against a local monthly price CSV
// instead of fetched market data and prints the resulting value series. The
// file layout is a header row followed by Date,1Y,5Y,10Y records.
func (a *App) Simulate(ctx context.Context, opts SimulateOptions) error {
	if opts.PricesCSVPath == "" {
		return errors.New("a prices csv path is required")
	}

	prices, err := readPricesCSV(opts.PricesCSVPath)
	if err != nil {
		return err
	}

	capital := decimal.NewFromFloat(a.Config.Analysis.InitialCapital)
	costRate := decimal.NewFromFloat(a.Config.Analysis.TransactionCostRate)

	original, err := index.Simulate(prices, weightsVector(a.Config.Analysis.Original.Weights), capital, costRate)
	if err != nil {
		return err
	}
	adjusted, err := index.Simulate(prices, weightsVector(a.Config.Analysis.Adjusted.Weights), capital, costRate)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Month\t%s\t%s\n", a.Config.Analysis.Original.Name, a.Config.Analysis.Adjusted.Name)
	for i, row := range prices[1:] {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", row.Date.Format(monthFormat), original[i].StringFixed(2), adjusted[i].StringFixed(2))
	}
	return writer.Flush()
}

func readPricesCSV(path string) ([]bond.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read prices csv: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("prices csv needs a header and at least one data row")
	}

	rows := make([]bond.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 1+len(bond.Maturities) {
			return nil, fmt.Errorf("prices csv row has %d fields, want %d", len(record), 1+len(bond.Maturities))
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return nil, fmt.Errorf("parse price date %q: %w", record[0], err)
		}

		row := bond.Row{Date: date}
		for i, m := range bond.Maturities {
			value, err := decimal.NewFromString(record[i+1])
			if err != nil {
				return nil, fmt.Errorf("parse %s price %q: %w", m, record[i+1], err)
			}
			row.Values.Set(m, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
