package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func noopLogger() zerolog.Logger {
	return zerolog.Nop()
}

func window() (time.Time, time.Time) {
	return time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func TestFetchSeriesMissingAPIKey(t *testing.T) {
	f := NewFRED(FREDOptions{}, noopLogger())
	start, end := window()
	if _, err := f.FetchSeries(context.Background(), "GS1", start, end); err == nil {
		t.Fatal("missing api key should fail")
	}
}

func TestFetchSeriesMissingSeriesID(t *testing.T) {
	f := NewFRED(FREDOptions{APIKey: "key"}, noopLogger())
	start, end := window()
	if _, err := f.FetchSeries(context.Background(), "", start, end); err == nil {
		t.Fatal("missing series id should fail")
	}
}

func TestFetchSeriesSuccessSkipsGaps(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"observations": []map[string]string{
				{"date": "2018-01-02", "value": "1.80"},
				{"date": "2018-01-03", "value": "."},
				{"date": "2018-01-04", "value": "1.85"},
			},
		})
	}))
	defer srv.Close()

	f := NewFRED(FREDOptions{BaseURL: srv.URL, APIKey: "key", Timeout: time.Second, UserAgent: "test"}, noopLogger())
	start, end := window()

	obs, err := f.FetchSeries(context.Background(), "GS1", start, end)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(obs) != 2 {
		t.Fatalf("gap marker should be skipped, want 2 observations, got %d", len(obs))
	}
	if !obs[0].Value.Equal(decimal.RequireFromString("1.80")) {
		t.Fatalf("unexpected first value %s", obs[0].Value)
	}
	if !obs[1].Date.After(obs[0].Date) {
		t.Fatal("observations should be ascending by date")
	}

	if got := gotQuery["series_id"]; len(got) != 1 || got[0] != "GS1" {
		t.Fatalf("series_id not forwarded: %v", gotQuery)
	}
	if got := gotQuery["observation_start"]; len(got) != 1 || got[0] != "2018-01-01" {
		t.Fatalf("observation_start not forwarded: %v", gotQuery)
	}
	if got := gotQuery["file_type"]; len(got) != 1 || got[0] != "json" {
		t.Fatalf("file_type not forwarded: %v", gotQuery)
	}
}

func TestFetchSeriesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error_code":    400,
			"error_message": "Bad Request. The value for variable api_key is not registered.",
		})
	}))
	defer srv.Close()

	f := NewFRED(FREDOptions{BaseURL: srv.URL, APIKey: "bad", Timeout: time.Second}, noopLogger())
	start, end := window()

	if _, err := f.FetchSeries(context.Background(), "GS1", start, end); err == nil {
		t.Fatal("HTTP 400 should fail")
	}
}

func TestFetchSeriesBadValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"observations": []map[string]string{
				{"date": "2018-01-02", "value": "not-a-number"},
			},
		})
	}))
	defer srv.Close()

	f := NewFRED(FREDOptions{BaseURL: srv.URL, APIKey: "key", Timeout: time.Second}, noopLogger())
	start, end := window()

	if _, err := f.FetchSeries(context.Background(), "GS1", start, end); err == nil {
		t.Fatal("unparseable value should fail")
	}
}
