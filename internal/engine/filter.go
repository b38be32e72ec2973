package engine

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

const (
	dateLayout = "2006-01-02"
)

// FilterSpec is the validated, normalized description of the constraints one
// request applies to a domain. Downstream components treat it as read-only.
type FilterSpec struct {
	DateFrom *time.Time
	DateTo   *time.Time
	// Dims holds membership constraints per dimension column; values within
	// one dimension are OR-combined, dimensions AND-combined.
	Dims     map[string][]string
	Statuses []string
	MinValue *float64
	MaxValue *float64
	// Warnings records individual values that were dropped during parsing.
	Warnings []string
}

// ParseFilter builds a FilterSpec from raw query parameters. Unknown keys are
// ignored. Malformed individual values are dropped with a warning; an
// inverted date range always fails with InvalidRange.
func ParseFilter(schema models.Schema, params url.Values) (FilterSpec, error) {
	spec := FilterSpec{Dims: map[string][]string{}}

	rawFrom := params.Get("date_from")
	rawTo := params.Get("date_to")
	if rawFrom != "" {
		if t, ok := parseBound(rawFrom, false); ok {
			spec.DateFrom = &t
		} else {
			spec.warn("date_from", rawFrom)
		}
	}
	if rawTo != "" {
		if t, ok := parseBound(rawTo, true); ok {
			spec.DateTo = &t
		} else {
			spec.warn("date_to", rawTo)
		}
	}
	if spec.DateFrom != nil && spec.DateTo != nil && spec.DateFrom.After(*spec.DateTo) {
		return FilterSpec{}, &ValidationError{
			Kind:   InvalidRange,
			Field:  "date_from",
			Detail: fmt.Sprintf("date_from %s is after date_to %s", rawFrom, rawTo),
		}
	}

	for _, dim := range schema.DimColumns {
		for _, v := range params[dim] {
			if v != "" {
				spec.Dims[dim] = append(spec.Dims[dim], v)
			}
		}
	}
	for _, v := range params["status"] {
		if v != "" {
			spec.Statuses = append(spec.Statuses, v)
		}
	}

	spec.MinValue = spec.parseNumber(params, "min_value")
	spec.MaxValue = spec.parseNumber(params, "max_value")
	if spec.MinValue != nil && spec.MaxValue != nil && *spec.MinValue > *spec.MaxValue {
		spec.Warnings = append(spec.Warnings, "min_value exceeds max_value, numeric range dropped")
		spec.MinValue = nil
		spec.MaxValue = nil
	}

	return spec, nil
}

// ParseWindow parses an explicit comparison window. Malformed bounds are
// dropped (both pointers nil unless both parse); an inverted window is an
// InvalidRange error.
func ParseWindow(from, to string) (*time.Time, *time.Time, error) {
	if from == "" || to == "" {
		return nil, nil, nil
	}
	f, okF := parseBound(from, false)
	t, okT := parseBound(to, true)
	if !okF || !okT {
		return nil, nil, nil
	}
	if f.After(t) {
		return nil, nil, &ValidationError{
			Kind:   InvalidRange,
			Field:  "compare_from",
			Detail: fmt.Sprintf("compare_from %s is after compare_to %s", from, to),
		}
	}
	return &f, &t, nil
}

// parseBound accepts an ISO date or an RFC 3339 timestamp. Date-only values
// are anchored to the start of the day, or its last second when end is true,
// so inclusive range predicates cover the whole day.
func parseBound(s string, end bool) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		if end {
			t = t.Add(24*time.Hour - time.Second)
		}
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func (f *FilterSpec) parseNumber(params url.Values, key string) *float64 {
	raw := params.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		f.warn(key, raw)
		return nil
	}
	return &v
}

func (f *FilterSpec) warn(key, raw string) {
	f.Warnings = append(f.Warnings, fmt.Sprintf("dropped %s value %q", key, raw))
}
