package models

import (
	"time"
)

// Record is one row of a reporting domain, normalized to the shape the
// analytics engine works on. Which columns feed Dims and Extra is decided
// by the domain Schema.
type Record struct {
	ID        int64             `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Value     float64           `json:"value"`
	Status    string            `json:"status"`
	Dims      map[string]string `json:"dims"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Schema maps a reporting domain onto its backing table. The engine is
// generic over this: both domains share one implementation, instantiated
// with different column mappings.
type Schema struct {
	Domain       string
	Table        string
	TimeColumn   string
	ValueColumn  string
	StatusColumn string
	// DimColumns are the categorical columns usable for equality filters
	// and breakdowns. ExtraColumns only appear in list views.
	DimColumns   []string
	ExtraColumns []string
}

// Transactions is the financial domain: revenue, payments, orders.
var Transactions = Schema{
	Domain:       "transactions",
	Table:        "transactions",
	TimeColumn:   "date",
	ValueColumn:  "amount",
	StatusColumn: "status",
	DimColumns:   []string{"category"},
	ExtraColumns: []string{"description", "customer_id"},
}

// Equipment is the telemetry domain: per-equipment metric readings.
var Equipment = Schema{
	Domain:       "equipment",
	Table:        "equipment_metrics",
	TimeColumn:   "timestamp",
	ValueColumn:  "value",
	StatusColumn: "status",
	DimColumns:   []string{"equipment_id", "metric_name"},
	ExtraColumns: []string{"unit"},
}

// HasDimension reports whether name is one of the schema's dimension columns.
func (s Schema) HasDimension(name string) bool {
	for _, d := range s.DimColumns {
		if d == name {
			return true
		}
	}
	return false
}

// SortFields returns the allow-list of fields a list view may sort by.
func (s Schema) SortFields() []string {
	fields := []string{"id", s.TimeColumn, s.ValueColumn, s.StatusColumn}
	return append(fields, s.DimColumns...)
}

// SortAllowed reports whether field is in the sort allow-list.
func (s Schema) SortAllowed(field string) bool {
	for _, f := range s.SortFields() {
		if f == field {
			return true
		}
	}
	return false
}

// View flattens a record into the column-keyed shape list endpoints return.
func (r Record) View(s Schema) map[string]interface{} {
	view := map[string]interface{}{
		"id":           r.ID,
		s.TimeColumn:   r.Timestamp.Format(time.RFC3339),
		s.ValueColumn:  r.Value,
		s.StatusColumn: r.Status,
	}
	for _, d := range s.DimColumns {
		view[d] = r.Dims[d]
	}
	for _, e := range s.ExtraColumns {
		view[e] = r.Extra[e]
	}
	return view
}
