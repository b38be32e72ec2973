package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/engine"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

// APIRoutes mounts the analytics endpoints for one domain. Both domains share
// this implementation; the schema carries the field mapping.
func (h *Handler) APIRoutes(schema models.Schema) http.Handler {
	r := chi.NewRouter()
	r.Get("/metrics", h.metrics(schema))
	r.Get("/time-series", h.timeSeries(schema))
	r.Get("/breakdown", h.breakdown(schema))
	r.Get("/list", h.list(schema))
	r.Get("/filters", h.filterOptions(schema))
	r.Get("/export", h.export(schema))
	return r
}

// metrics handles GET /metrics: scalar aggregates, plus a trend when the
// caller supplies an explicit compare_from/compare_to window.
func (h *Handler) metrics(schema models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter, err := engine.ParseFilter(schema, q)
		if err != nil {
			h.writeError(w, err)
			return
		}
		rows, err := h.repo.Fetch(r.Context(), schema, filter)
		if err != nil {
			h.writeError(w, err)
			return
		}
		report := models.MetricsReport{Metrics: engine.Metrics(rows)}

		compareFrom, compareTo, err := engine.ParseWindow(q.Get("compare_from"), q.Get("compare_to"))
		if err != nil {
			h.writeError(w, err)
			return
		}
		if compareFrom != nil && compareTo != nil {
			prev := filter
			prev.DateFrom = compareFrom
			prev.DateTo = compareTo
			prevRows, err := h.repo.Fetch(r.Context(), schema, prev)
			if err != nil {
				h.writeError(w, err)
				return
			}
			trend := engine.TrendBetween(report.Metrics, engine.Metrics(prevRows))
			report.Trend = &trend
		}

		h.writeJSON(w, http.StatusOK, report)
	}
}

// timeSeries handles GET /time-series?group_by=day|month
func (h *Handler) timeSeries(schema models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := engine.ParseFilter(schema, r.URL.Query())
		if err != nil {
			h.writeError(w, err)
			return
		}
		rows, err := h.repo.Fetch(r.Context(), schema, filter)
		if err != nil {
			h.writeError(w, err)
			return
		}
		g := engine.ParseGranularity(r.URL.Query().Get("group_by"))
		series := engine.TimeSeries(rows, g, filter.DateFrom, filter.DateTo)
		if series == nil {
			series = []models.TimeBucket{}
		}
		h.writeJSON(w, http.StatusOK, series)
	}
}

// breakdown handles GET /breakdown?dimension=<dim|status>, defaulting to the
// domain's primary dimension.
func (h *Handler) breakdown(schema models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := engine.ParseFilter(schema, r.URL.Query())
		if err != nil {
			h.writeError(w, err)
			return
		}
		dim := r.URL.Query().Get("dimension")
		if dim == "" {
			dim = schema.DimColumns[0]
		}
		if !schema.HasDimension(dim) && dim != schema.StatusColumn {
			h.writeError(w, &engine.ValidationError{
				Kind:   engine.InvalidDimension,
				Field:  dim,
				Detail: "unknown breakdown dimension",
			})
			return
		}
		rows, err := h.repo.Fetch(r.Context(), schema, filter)
		if err != nil {
			h.writeError(w, err)
			return
		}
		entries := engine.Breakdown(schema, rows, dim)
		if entries == nil {
			entries = []models.BreakdownEntry{}
		}
		h.writeJSON(w, http.StatusOK, entries)
	}
}

// list handles GET /list with 1-based pagination and allow-listed sorting.
func (h *Handler) list(schema models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter, err := engine.ParseFilter(schema, q)
		if err != nil {
			h.writeError(w, err)
			return
		}
		rows, err := h.repo.Fetch(r.Context(), schema, filter)
		if err != nil {
			h.writeError(w, err)
			return
		}

		page := intParam(q.Get("page"), 1)
		pageSize := intParam(q.Get("page_size"), 50)
		dir := engine.ParseSortDirection(q.Get("dir"))

		items, total, err := engine.Page(schema, rows, q.Get("sort"), dir, page, pageSize, h.cfg.MaxPageSize)
		if err != nil {
			h.writeError(w, err)
			return
		}

		views := make([]map[string]interface{}, 0, len(items))
		for _, rec := range items {
			views = append(views, rec.View(schema))
		}
		h.writeJSON(w, http.StatusOK, models.ListPage{
			Items:      views,
			TotalCount: total,
			Page:       page,
			PageSize:   pageSize,
		})
	}
}

// filterOptions handles GET /filters: distinct value sets per filterable
// dimension, derived from the unfiltered domain data.
func (h *Handler) filterOptions(schema models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options := map[string][]string{}
		columns := make([]string, 0, len(schema.DimColumns)+1)
		columns = append(columns, schema.DimColumns...)
		columns = append(columns, schema.StatusColumn)
		for _, dim := range columns {
			values, err := h.repo.DistinctValues(r.Context(), schema, dim)
			if err != nil {
				h.writeError(w, err)
				return
			}
			if values == nil {
				values = []string{}
			}
			options[dim] = values
		}
		h.writeJSON(w, http.StatusOK, options)
	}
}

func intParam(raw string, defaultValue int) int {
	if raw == "" {
		return defaultValue
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return n
	}
	return defaultValue
}
