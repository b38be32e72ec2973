package database

import (
	"context"
	"database/sql"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/engine"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

// timeLayout is how timestamps are stored: RFC 3339 in UTC, so lexicographic
// comparison in SQL matches chronological order.
const timeLayout = "2006-01-02T15:04:05Z"

// Repository is the query executor: it translates a FilterSpec into a WHERE
// conjunction and returns the full matching row set. It never paginates or
// aggregates; those are separate views over the fetched set.
type Repository struct {
	db      *sql.DB
	dialect string
}

func NewRepository(db *sql.DB, dialect string) *Repository {
	return &Repository{db: db, dialect: dialect}
}

// Fetch returns every row satisfying the conjunction of the filter's active
// constraints, ordered by the temporal column descending. Store failures are
// wrapped as StoreUnavailable and propagate unchanged.
func (r *Repository) Fetch(ctx context.Context, schema models.Schema, filter engine.FilterSpec) ([]models.Record, error) {
	cols := append([]string{"id", schema.TimeColumn, schema.ValueColumn, schema.StatusColumn}, schema.DimColumns...)
	cols = append(cols, schema.ExtraColumns...)

	query := "SELECT " + strings.Join(cols, ", ") + " FROM " + schema.Table
	where, args := buildWhere(schema, filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY " + schema.TimeColumn + " DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, &engine.ExecutionError{Kind: engine.StoreUnavailable, Err: err}
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		rec, ok, err := scanRecord(rows, schema)
		if err != nil {
			return nil, &engine.ExecutionError{Kind: engine.StoreUnavailable, Err: err}
		}
		if !ok {
			// Unparsable timestamp: drop the row, not the computation.
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &engine.ExecutionError{Kind: engine.StoreUnavailable, Err: err}
	}
	return records, nil
}

// DistinctValues enumerates the distinct values of a dimension or status
// column over the unfiltered table, sorted ascending. Used to derive the
// filter option sets, which always offer the full option space.
func (r *Repository) DistinctValues(ctx context.Context, schema models.Schema, column string) ([]string, error) {
	if !schema.HasDimension(column) && column != schema.StatusColumn {
		return nil, nil
	}

	query := "SELECT DISTINCT " + column + " FROM " + schema.Table +
		" WHERE " + column + " IS NOT NULL AND " + column + " <> '' ORDER BY " + column + " ASC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &engine.ExecutionError{Kind: engine.StoreUnavailable, Err: err}
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, &engine.ExecutionError{Kind: engine.StoreUnavailable, Err: err}
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &engine.ExecutionError{Kind: engine.StoreUnavailable, Err: err}
	}
	return values, nil
}

// Insert stores one record; used by the seed tool and tests.
func (r *Repository) Insert(ctx context.Context, schema models.Schema, rec models.Record) error {
	cols := append([]string{schema.TimeColumn, schema.ValueColumn, schema.StatusColumn}, schema.DimColumns...)
	cols = append(cols, schema.ExtraColumns...)

	args := []interface{}{rec.Timestamp.UTC().Format(timeLayout), rec.Value, rec.Status}
	for _, d := range schema.DimColumns {
		args = append(args, rec.Dims[d])
	}
	for _, e := range schema.ExtraColumns {
		args = append(args, nullString(rec.Extra[e]))
	}

	query := "INSERT INTO " + schema.Table + " (" + strings.Join(cols, ", ") + ") VALUES (" +
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"
	_, err := r.db.ExecContext(ctx, r.rebind(query), args...)
	return err
}

func buildWhere(schema models.Schema, filter engine.FilterSpec) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.DateFrom != nil {
		conditions = append(conditions, schema.TimeColumn+" >= ?")
		args = append(args, filter.DateFrom.UTC().Format(timeLayout))
	}
	if filter.DateTo != nil {
		conditions = append(conditions, schema.TimeColumn+" <= ?")
		args = append(args, filter.DateTo.UTC().Format(timeLayout))
	}
	for _, dim := range schema.DimColumns {
		values := filter.Dims[dim]
		if len(values) == 0 {
			continue
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
		conditions = append(conditions, dim+" IN ("+placeholders+")")
		for _, v := range values {
			args = append(args, v)
		}
	}
	if len(filter.Statuses) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(filter.Statuses)), ", ")
		conditions = append(conditions, schema.StatusColumn+" IN ("+placeholders+")")
		for _, v := range filter.Statuses {
			args = append(args, v)
		}
	}
	if filter.MinValue != nil {
		conditions = append(conditions, schema.ValueColumn+" >= ?")
		args = append(args, *filter.MinValue)
	}
	if filter.MaxValue != nil {
		conditions = append(conditions, schema.ValueColumn+" <= ?")
		args = append(args, *filter.MaxValue)
	}

	return strings.Join(conditions, " AND "), args
}

func scanRecord(rows *sql.Rows, schema models.Schema) (models.Record, bool, error) {
	var (
		id     int64
		ts     string
		value  sql.NullFloat64
		status sql.NullString
	)
	dims := make([]sql.NullString, len(schema.DimColumns))
	extras := make([]sql.NullString, len(schema.ExtraColumns))

	dest := []interface{}{&id, &ts, &value, &status}
	for i := range dims {
		dest = append(dest, &dims[i])
	}
	for i := range extras {
		dest = append(dest, &extras[i])
	}
	if err := rows.Scan(dest...); err != nil {
		return models.Record{}, false, err
	}

	t, err := time.Parse(timeLayout, ts)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, ts); err != nil {
			return models.Record{}, false, nil
		}
	}

	rec := models.Record{
		ID:        id,
		Timestamp: t.UTC(),
		Status:    status.String,
		Dims:      map[string]string{},
	}
	if value.Valid {
		rec.Value = value.Float64
	} else {
		// Aggregators skip non-finite values row by row.
		rec.Value = math.NaN()
	}
	for i, d := range schema.DimColumns {
		rec.Dims[d] = dims[i].String
	}
	if len(schema.ExtraColumns) > 0 {
		rec.Extra = map[string]string{}
		for i, e := range schema.ExtraColumns {
			rec.Extra[e] = extras[i].String
		}
	}
	return rec, true, nil
}

// rebind rewrites ? placeholders to $1..$n for postgres.
func (r *Repository) rebind(query string) string {
	if r.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
