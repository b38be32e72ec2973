package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/config"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/database"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, dialect, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := database.NewRepository(db, dialect)
	seed := []struct {
		ts       string
		amount   float64
		category string
		status   string
	}{
		{"2024-01-01T10:00:00Z", 30, "sales", "completed"},
		{"2024-01-01T12:00:00Z", 10, "refund", "completed"},
		{"2024-01-03T10:00:00Z", 60, "sales", "pending"},
	}
	for _, r := range seed {
		ts, _ := time.Parse(time.RFC3339, r.ts)
		err := repo.Insert(context.Background(), models.Transactions, models.Record{
			Timestamp: ts,
			Value:     r.amount,
			Status:    r.status,
			Dims:      map[string]string{"category": r.category},
		})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	cfg := &config.Config{AppName: "test", DefaultLang: "en", MaxPageSize: 100}
	h := New(repo, cfg)

	r := chi.NewRouter()
	r.Mount("/api/v1/transactions", h.APIRoutes(models.Transactions))
	r.Get("/health", h.Health)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var report models.MetricsReport
	status := getJSON(t, srv.URL+"/api/v1/transactions/metrics", &report)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if report.Count != 3 || report.Sum != 100 {
		t.Fatalf("metrics = %+v, want count 3 sum 100", report.Metrics)
	}
	if report.Trend != nil {
		t.Fatal("trend must be omitted without a comparison window")
	}
}

func TestMetricsEndpointWithTrend(t *testing.T) {
	srv := newTestServer(t)

	url := srv.URL + "/api/v1/transactions/metrics" +
		"?date_from=2024-01-03&date_to=2024-01-03&compare_from=2024-01-01&compare_to=2024-01-01"
	var report models.MetricsReport
	if status := getJSON(t, url, &report); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if report.Sum != 60 {
		t.Fatalf("window sum = %v, want 60", report.Sum)
	}
	if report.Trend == nil || report.Trend.Delta != 20 {
		t.Fatalf("trend = %+v, want delta 20 against the 40 of Jan 1", report.Trend)
	}
	if report.Trend.Percent == nil || *report.Trend.Percent != 50 {
		t.Fatalf("trend percent = %v, want 50", report.Trend.Percent)
	}
}

func TestInvalidRangeIsBadRequest(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]interface{}
	status := getJSON(t, srv.URL+"/api/v1/transactions/metrics?date_from=2024-02-01&date_to=2024-01-01", &body)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["kind"] != "invalid_range" {
		t.Fatalf("kind = %v, want invalid_range", body["kind"])
	}
}

func TestTimeSeriesEndpointGapFills(t *testing.T) {
	srv := newTestServer(t)

	var series []models.TimeBucket
	url := srv.URL + "/api/v1/transactions/time-series?date_from=2024-01-01&date_to=2024-01-03&group_by=day"
	if status := getJSON(t, url, &series); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(series) != 3 {
		t.Fatalf("series = %d buckets, want 3", len(series))
	}
	if series[0].Sum != 40 || series[1].Sum != 0 || series[2].Sum != 60 {
		t.Fatalf("sums = %v %v %v, want 40 0 60", series[0].Sum, series[1].Sum, series[2].Sum)
	}
}

func TestBreakdownEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var entries []models.BreakdownEntry
	if status := getJSON(t, srv.URL+"/api/v1/transactions/breakdown", &entries); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Value != "sales" || entries[0].Sum != 90 {
		t.Fatalf("first entry = %+v, want sales with sum 90", entries[0])
	}
}

func TestListEndpointPagination(t *testing.T) {
	srv := newTestServer(t)

	var page models.ListPage
	url := srv.URL + "/api/v1/transactions/list?sort=amount&dir=asc&page=1&page_size=2"
	if status := getJSON(t, url, &page); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if page.TotalCount != 3 || len(page.Items) != 2 {
		t.Fatalf("page = total %d items %d, want 3 and 2", page.TotalCount, len(page.Items))
	}
	if page.Items[0]["amount"].(float64) != 10 {
		t.Fatalf("first item amount = %v, want 10", page.Items[0]["amount"])
	}

	var badBody map[string]interface{}
	status := getJSON(t, srv.URL+"/api/v1/transactions/list?sort=nope", &badBody)
	if status != http.StatusBadRequest || badBody["kind"] != "invalid_sort_field" {
		t.Fatalf("unknown sort field: status %d body %v", status, badBody)
	}
}

func TestFilterOptionsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var options map[string][]string
	// Filter options always come from the unfiltered data, so constraints in
	// the query must not narrow them.
	url := srv.URL + "/api/v1/transactions/filters?category=refund"
	if status := getJSON(t, url, &options); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if got := options["category"]; len(got) != 2 || got[0] != "refund" || got[1] != "sales" {
		t.Fatalf("categories = %v, want [refund sales]", got)
	}
	if got := options["status"]; len(got) != 2 {
		t.Fatalf("statuses = %v, want 2", got)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	if status := getJSON(t, srv.URL+"/health", &body); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["status"] != "healthy" {
		t.Fatalf("body = %v", body)
	}
}
