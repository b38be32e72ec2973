package engine

import (
	"fmt"
	"sort"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

// SortDirection orders a list view.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection is permissive: anything other than "asc" sorts
// descending, matching the default temporal ordering of list views.
func ParseSortDirection(raw string) SortDirection {
	if raw == string(SortAsc) {
		return SortAsc
	}
	return SortDesc
}

// Sort returns a sorted copy of rows. The sort is stable: equal keys keep the
// row set's original relative order. An empty field sorts by the temporal
// column; a field outside the schema's allow-list is an InvalidSortField
// error.
func Sort(schema models.Schema, rows []models.Record, field string, dir SortDirection) ([]models.Record, error) {
	if field == "" {
		field = schema.TimeColumn
	}
	if !schema.SortAllowed(field) {
		return nil, &ValidationError{
			Kind:   InvalidSortField,
			Field:  field,
			Detail: fmt.Sprintf("sort field not available for domain %s", schema.Domain),
		}
	}

	sorted := make([]models.Record, len(rows))
	copy(sorted, rows)
	less := lessFunc(schema, field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted, nil
}

// Page sorts rows and slices out one 1-based page. pageSize is clamped to
// maxPageSize; a page beyond the last yields empty items with the true total.
func Page(schema models.Schema, rows []models.Record, field string, dir SortDirection, page, pageSize, maxPageSize int) ([]models.Record, int, error) {
	sorted, err := Sort(schema, rows, field, dir)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if maxPageSize > 0 && pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total := len(sorted)
	start := (page - 1) * pageSize
	if start >= total {
		return []models.Record{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return sorted[start:end], total, nil
}

func lessFunc(schema models.Schema, field string) func(a, b models.Record) bool {
	switch field {
	case "id":
		return func(a, b models.Record) bool { return a.ID < b.ID }
	case schema.TimeColumn:
		return func(a, b models.Record) bool { return a.Timestamp.Before(b.Timestamp) }
	case schema.ValueColumn:
		return func(a, b models.Record) bool { return a.Value < b.Value }
	case schema.StatusColumn:
		return func(a, b models.Record) bool { return a.Status < b.Status }
	default:
		return func(a, b models.Record) bool { return a.Dims[field] < b.Dims[field] }
	}
}
