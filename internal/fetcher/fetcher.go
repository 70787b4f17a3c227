package fetcher

import (
	"context"
	"time"

	"github.com/hannawannana/simulated-bond-index-construction/internal/series"
)

// SeriesFetcher retrieves raw dated observations for a named series over a
// closed date range.
type SeriesFetcher interface {
	FetchSeries(ctx context.Context, seriesID string, start, end time.Time) (series.Series, error)
}
