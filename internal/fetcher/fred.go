package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hannawannana/simulated-bond-index-construction/internal/series"
)

const (
	observationsPath = "/fred/series/observations"
	dateFormat       = "2006-01-02"

	// FRED reports gaps in a series with a literal dot instead of a number.
	missingValueMarker = "."
)

// FREDOptions parameterise the FRED API fetcher.
type FREDOptions struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
}

// FRED fetches observation series from the St. Louis Fed FRED API.
type FRED struct {
	opts    FREDOptions
	logger  zerolog.Logger
	client  *http.Client
	baseURL string
}

// NewFRED constructs a FRED fetcher.
func NewFRED(opts FREDOptions, logger zerolog.Logger) *FRED {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.stlouisfed.org"
	}

	return &FRED{
		opts:    opts,
		logger:  logger.With().Str("component", "fred_fetcher").Logger(),
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// FetchSeries retrieves raw observations for one series, skipping gap
// markers. Any transport, authentication, or decoding failure is returned
// as-is; callers treat it as fatal to the run.
func (f *FRED) FetchSeries(ctx context.Context, seriesID string, start, end time.Time) (series.Series, error) {
	if f.opts.APIKey == "" {
		return nil, errors.New("fred api key not configured")
	}
	if seriesID == "" {
		return nil, errors.New("series id required")
	}

	query := url.Values{}
	query.Set("series_id", seriesID)
	query.Set("api_key", f.opts.APIKey)
	query.Set("file_type", "json")
	query.Set("observation_start", start.Format(dateFormat))
	query.Set("observation_end", end.Format(dateFormat))

	endpoint := f.baseURL + observationsPath + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if ua := strings.TrimSpace(f.opts.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	} else {
		req.Header.Set("User-Agent", "bondindex/1.0")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseHTTPError(resp.StatusCode, payload)
	}

	var decoded observationsResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("decode observations: %w", err)
	}

	obs := make(series.Series, 0, len(decoded.Observations))
	skipped := 0
	for _, raw := range decoded.Observations {
		if raw.Value == missingValueMarker {
			skipped++
			continue
		}

		date, err := time.Parse(dateFormat, raw.Date)
		if err != nil {
			return nil, fmt.Errorf("parse observation date %q: %w", raw.Date, err)
		}
		value, err := decimal.NewFromString(raw.Value)
		if err != nil {
			return nil, fmt.Errorf("parse observation value %q: %w", raw.Value, err)
		}

		obs = append(obs, series.Observation{Date: date, Value: value})
	}

	sort.SliceStable(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })

	f.logger.Debug().
		Str("series_id", seriesID).
		Int("observations", len(obs)).
		Int("skipped", skipped).
		Msg("series fetched")

	return obs, nil
}

type observationsResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

type errorResponse struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

func parseHTTPError(status int, payload []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(payload, &apiErr); err == nil && apiErr.ErrorMessage != "" {
		return fmt.Errorf("fred api error (%d): %s", status, apiErr.ErrorMessage)
	}
	if len(payload) > 0 {
		return fmt.Errorf("fred api error (%d): %s", status, strings.TrimSpace(string(payload)))
	}
	return fmt.Errorf("fred api error (%d)", status)
}

var _ SeriesFetcher = (*FRED)(nil)
