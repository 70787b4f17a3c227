package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hannawannana/simulated-bond-index-construction/internal/bond"
	"github.com/hannawannana/simulated-bond-index-construction/internal/fetcher"
	"github.com/hannawannana/simulated-bond-index-construction/internal/index"
	"github.com/hannawannana/simulated-bond-index-construction/internal/report"
	"github.com/hannawannana/simulated-bond-index-construction/internal/series"
)

// Run executes the full pipeline: fetch, price, simulate, report.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	return a.runWithFetcher(ctx, a.newFetcher(), opts)
}

func (a *App) runWithFetcher(ctx context.Context, f fetcher.SeriesFetcher, opts RunOptions) error {
	start, end, err := a.Config.Analysis.Window()
	if err != nil {
		return err
	}

	yields, err := a.fetchYieldTable(ctx, f, start, end)
	if err != nil {
		return err
	}

	benchValues, err := a.fetchAlignedBenchmark(ctx, f, start, end, yields)
	if err != nil {
		return err
	}

	prices := bond.PriceRows(yields)

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

	benchmark := index.NormalizeBenchmark(benchValues, capital)

	// All three series share the date index starting at the second price row.
	dates := make([]time.Time, 0, len(prices)-1)
	for _, row := range prices[1:] {
		dates = append(dates, row.Date)
	}

	table, err := report.New(dates,
		report.Column{Name: a.Config.Analysis.Original.Name, Values: original},
		report.Column{Name: a.Config.Analysis.Adjusted.Name, Values: adjusted},
		report.Column{Name: a.Config.Analysis.BenchmarkName, Values: benchmark},
	)
	if err != nil {
		return err
	}

	csvPath := a.Config.Output.CSVPath
	if opts.CSVPath != "" {
		csvPath = opts.CSVPath
	}
	pngPath := a.Config.Output.PNGPath
	if opts.PNGPath != "" {
		pngPath = opts.PNGPath
	}

	if csvPath != "" {
		if err := table.WriteCSV(csvPath); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		a.Logger.Info().Str("path", csvPath).Int("rows", len(dates)).Msg("results table written")
	}

	if pngPath != "" {
		chartOpts := report.ChartOptions{
			Title:  a.Config.Output.ChartTitle,
			XLabel: "Date",
			YLabel: "Portfolio Value ($)",
			Width:  a.Config.Output.ChartWidth,
			Height: a.Config.Output.ChartHeight,
		}
		if err := table.RenderPNG(pngPath, chartOpts); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		a.Logger.Info().Str("path", pngPath).Msg("comparison chart written")
	}

	a.Logger.Info().
		Str("original_final", original[len(original)-1].StringFixed(2)).
		Str("adjusted_final", adjusted[len(adjusted)-1].StringFixed(2)).
		Str("benchmark_final", benchmark[len(benchmark)-1].StringFixed(2)).
		Msg("analysis complete")

	return nil
}

// fetchYieldTable downloads the three tenor series, resamples each to monthly
// means, and inner-joins them over their shared months.
func (a *App) fetchYieldTable(ctx context.Context, f fetcher.SeriesFetcher, start, end time.Time) ([]bond.Row, error) {
	ids := a.Config.Analysis.Series

	var set bond.SeriesSet
	for _, fetch := range []struct {
		id     string
		target *series.Series
	}{
		{ids.OneYear, &set.OneYear},
		{ids.FiveYear, &set.FiveYear},
		{ids.TenYear, &set.TenYear},
	} {
		raw, err := f.FetchSeries(ctx, fetch.id, start, end)
		if err != nil {
			return nil, fmt.Errorf("fetch yield series %s: %w", fetch.id, err)
		}
		*fetch.target = series.ResampleMean(raw)
	}

	yields := bond.YieldTable(set)
	if len(yields) == 0 {
		return nil, errors.New("no overlapping months across yield series")
	}

	a.Logger.Info().Int("months", len(yields)).Msg("yield table assembled")
	return yields, nil
}

// fetchAlignedBenchmark downloads the benchmark series, resamples it to the
// last observation per month, and restricts it to exactly the yield months.
// A yield month with no benchmark observation fails the run.
func (a *App) fetchAlignedBenchmark(ctx context.Context, f fetcher.SeriesFetcher, start, end time.Time, yields []bond.Row) ([]decimal.Decimal, error) {
	id := a.Config.Analysis.Series.Benchmark
	raw, err := f.FetchSeries(ctx, id, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch benchmark series %s: %w", id, err)
	}

	monthly := series.ResampleLast(raw)

	values := make([]decimal.Decimal, 0, len(yields))
	for _, row := range yields {
		value, ok := monthly.At(row.Date)
		if !ok {
			return nil, fmt.Errorf("benchmark series %s has no observation for %s", id, row.Date.Format("2006-01"))
		}
		values = append(values, value)
	}
	return values, nil
}
