package engine

import (
	"math"
	"sort"
	"time"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

// Granularity is the bucket width of a time series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// ParseGranularity maps the raw group_by parameter; anything other than
// "month" buckets by day.
func ParseGranularity(raw string) Granularity {
	if raw == string(GranularityMonth) {
		return GranularityMonth
	}
	return GranularityDay
}

// Metrics computes the scalar aggregates over a row set. Rows with a
// non-finite value are skipped; an empty set yields all zeros.
func Metrics(rows []models.Record) models.Metrics {
	var m models.Metrics
	for _, r := range rows {
		if !finite(r.Value) {
			continue
		}
		if m.Count == 0 {
			m.Min = r.Value
			m.Max = r.Value
		} else {
			if r.Value < m.Min {
				m.Min = r.Value
			}
			if r.Value > m.Max {
				m.Max = r.Value
			}
		}
		m.Count++
		m.Sum += r.Value
	}
	if m.Count > 0 {
		m.Average = m.Sum / float64(m.Count)
	}
	return m
}

// TrendBetween compares the requested window against an explicit comparison
// window. Percent is omitted when the comparison sum is zero.
func TrendBetween(current, previous models.Metrics) models.Trend {
	t := models.Trend{Delta: current.Sum - previous.Sum}
	if previous.Sum != 0 {
		pct := t.Delta / previous.Sum * 100
		t.Percent = &pct
	}
	return t
}

// TimeSeries buckets rows at the requested granularity and gap-fills the
// range so the output is contiguous and strictly ascending. Month buckets
// follow calendar month boundaries. When from/to are nil the range defaults
// to the min/max timestamp present in the row set; an empty set yields an
// empty series.
func TimeSeries(rows []models.Record, g Granularity, from, to *time.Time) []models.TimeBucket {
	type acc struct {
		sum      float64
		count    int
		min, max float64
	}
	buckets := map[time.Time]*acc{}

	var dataMin, dataMax time.Time
	for _, r := range rows {
		if !finite(r.Value) {
			continue
		}
		b := bucketStart(r.Timestamp, g)
		a, ok := buckets[b]
		if !ok {
			a = &acc{min: r.Value, max: r.Value}
			buckets[b] = a
		} else {
			if r.Value < a.min {
				a.min = r.Value
			}
			if r.Value > a.max {
				a.max = r.Value
			}
		}
		a.sum += r.Value
		a.count++
		if dataMin.IsZero() || b.Before(dataMin) {
			dataMin = b
		}
		if dataMax.IsZero() || b.After(dataMax) {
			dataMax = b
		}
	}

	start, end := dataMin, dataMax
	if from != nil {
		start = bucketStart(*from, g)
	}
	if to != nil {
		end = bucketStart(*to, g)
	}
	if start.IsZero() || end.IsZero() || start.After(end) {
		return nil
	}

	var series []models.TimeBucket
	for b := start; !b.After(end); b = nextBucket(b, g) {
		tb := models.TimeBucket{Start: b}
		if a, ok := buckets[b]; ok {
			tb.Sum = a.sum
			tb.Count = a.count
			tb.Average = a.sum / float64(a.count)
			tb.Min = a.min
			tb.Max = a.max
		}
		series = append(series, tb)
	}
	return series
}

// Breakdown groups rows by one dimension (or the status column) and computes
// count, sum and percentage-of-total per group. Groups are sorted by sum
// descending, ties by value ascending; empty groups do not appear.
func Breakdown(schema models.Schema, rows []models.Record, dim string) []models.BreakdownEntry {
	type acc struct {
		count int
		sum   float64
	}
	groups := map[string]*acc{}
	var total float64
	for _, r := range rows {
		if !finite(r.Value) {
			continue
		}
		key := dimValue(schema, r, dim)
		a, ok := groups[key]
		if !ok {
			a = &acc{}
			groups[key] = a
		}
		a.count++
		a.sum += r.Value
		total += r.Value
	}

	entries := make([]models.BreakdownEntry, 0, len(groups))
	for key, a := range groups {
		e := models.BreakdownEntry{Value: key, Count: a.count, Sum: a.sum}
		if total != 0 {
			e.Percentage = a.sum / total * 100
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Sum != entries[j].Sum {
			return entries[i].Sum > entries[j].Sum
		}
		return entries[i].Value < entries[j].Value
	})
	return entries
}

func dimValue(schema models.Schema, r models.Record, dim string) string {
	if dim == schema.StatusColumn {
		return r.Status
	}
	return r.Dims[dim]
}

func bucketStart(t time.Time, g Granularity) time.Time {
	t = t.UTC()
	if g == GranularityMonth {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nextBucket(t time.Time, g Granularity) time.Time {
	if g == GranularityMonth {
		return t.AddDate(0, 1, 0)
	}
	return t.AddDate(0, 0, 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
