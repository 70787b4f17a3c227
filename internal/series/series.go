package series

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Observation is a single dated value as reported by the data source.
type Observation struct {
	Date  time.Time
	Value decimal.Decimal
}

// Series is an ordered sequence of observations, ascending by date.
type Series []Observation

// MonthEnd returns the last calendar day of t's month at midnight UTC.
func MonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// ResampleMean buckets observations by calendar month and averages each
// bucket, keying the result to the month-end date. Months with no
// observations simply do not appear in the output.
func ResampleMean(obs Series) Series {
	return resample(obs, func(bucket Series) decimal.Decimal {
		sum := decimal.Zero
		for _, o := range bucket {
			sum = sum.Add(o.Value)
		}
		return sum.Div(decimal.NewFromInt(int64(len(bucket))))
	})
}

// ResampleLast buckets observations by calendar month and keeps the last
// observation of each bucket, keyed to the month-end date.
func ResampleLast(obs Series) Series {
	return resample(obs, func(bucket Series) decimal.Decimal {
		return bucket[len(bucket)-1].Value
	})
}

func resample(obs Series, reduce func(Series) decimal.Decimal) Series {
	if len(obs) == 0 {
		return nil
	}

	buckets := make(map[time.Time]Series)
	for _, o := range obs {
		key := MonthEnd(o.Date)
		buckets[key] = append(buckets[key], o)
	}

	out := make(Series, 0, len(buckets))
	for key, bucket := range buckets {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Date.Before(bucket[j].Date) })
		out = append(out, Observation{Date: key, Value: reduce(bucket)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// At returns the value observed on the given date, if present.
func (s Series) At(date time.Time) (decimal.Decimal, bool) {
	for _, o := range s {
		if o.Date.Equal(date) {
			return o.Value, true
		}
	}
	return decimal.Decimal{}, false
}

// Intersect returns the ascending dates present in every input series.
// Dates missing from any series are dropped entirely; the result never
// contains placeholder entries.
func Intersect(all ...Series) []time.Time {
	if len(all) == 0 {
		return nil
	}

	dates := make([]time.Time, 0, len(all[0]))
	for _, o := range all[0] {
		shared := true
		for _, other := range all[1:] {
			if _, ok := other.At(o.Date); !ok {
				shared = false
				break
			}
		}
		if shared {
			dates = append(dates, o.Date)
		}
	}
	return dates
}
