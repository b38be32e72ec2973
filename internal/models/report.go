package models

import "time"

// Metrics are the scalar aggregates over a filtered row set.
type Metrics struct {
	Count   int     `json:"count"`
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Trend compares the requested window against an explicit comparison window.
// Percent is nil when the comparison sum is zero.
type Trend struct {
	Delta   float64  `json:"delta"`
	Percent *float64 `json:"percent,omitempty"`
}

// MetricsReport is the metrics payload; Trend is present only when the
// caller supplied a comparison window.
type MetricsReport struct {
	Metrics
	Trend *Trend `json:"trend,omitempty"`
}

// TimeBucket is one gap-filled bucket of a time series. Empty buckets carry
// zero values so charts render a continuous line.
type TimeBucket struct {
	Start   time.Time `json:"period_start"`
	Sum     float64   `json:"sum"`
	Count   int       `json:"count"`
	Average float64   `json:"average"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
}

// BreakdownEntry is one group of a dimensional breakdown.
type BreakdownEntry struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Sum        float64 `json:"sum"`
	Percentage float64 `json:"percentage"`
}

// ListPage is a paginated slice of a sorted row set.
type ListPage struct {
	Items      []map[string]interface{} `json:"items"`
	TotalCount int                      `json:"total_count"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
}
