package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/models"
)

func listRows(n int) []models.Record {
	rows := make([]models.Record, n)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range rows {
		rows[i] = models.Record{
			ID:        int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Value:     float64(n - i),
			Status:    "completed",
			Dims:      map[string]string{"category": "sales"},
		}
	}
	return rows
}

func TestPageConcatenationReproducesRowSet(t *testing.T) {
	for _, pageSize := range []int{1, 3, 7, 50} {
		rows := listRows(17)
		var collected []int64
		for page := 1; ; page++ {
			items, total, err := Page(models.Transactions, rows, "id", SortAsc, page, pageSize, 100)
			if err != nil {
				t.Fatalf("Page(%d, %d): %v", page, pageSize, err)
			}
			if total != 17 {
				t.Fatalf("total = %d, want 17", total)
			}
			if len(items) == 0 {
				break
			}
			for _, it := range items {
				collected = append(collected, it.ID)
			}
		}
		if len(collected) != 17 {
			t.Fatalf("page size %d: collected %d rows, want 17", pageSize, len(collected))
		}
		for i, id := range collected {
			if id != int64(i+1) {
				t.Fatalf("page size %d: position %d has id %d, want %d (duplication or omission)",
					pageSize, i, id, i+1)
			}
		}
	}
}

func TestPageSortIsStable(t *testing.T) {
	// All values equal: sorting by value must preserve the input order.
	rows := listRows(10)
	for i := range rows {
		rows[i].Value = 1
	}
	sorted, err := Sort(models.Transactions, rows, "amount", SortAsc)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	for i, r := range sorted {
		if r.ID != rows[i].ID {
			t.Fatalf("stable sort violated at %d: id %d, want %d", i, r.ID, rows[i].ID)
		}
	}
}

func TestPageBeyondLastPage(t *testing.T) {
	rows := listRows(5)
	items, total, err := Page(models.Transactions, rows, "id", SortAsc, 99, 10, 100)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %d, want empty page", len(items))
	}
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
}

func TestPageUnknownSortField(t *testing.T) {
	_, _, err := Page(models.Transactions, listRows(3), "nonsense", SortAsc, 1, 10, 100)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Kind != InvalidSortField {
		t.Fatalf("expected InvalidSortField, got %v", err)
	}
}

func TestPageSizeClamped(t *testing.T) {
	items, _, err := Page(models.Transactions, listRows(50), "id", SortAsc, 1, 1000, 10)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("items = %d, want clamped to 10", len(items))
	}
}

func TestPageDoesNotMutateInput(t *testing.T) {
	rows := listRows(5)
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	if _, _, err := Page(models.Transactions, rows, "amount", SortDesc, 1, 2, 10); err != nil {
		t.Fatalf("Page: %v", err)
	}
	for i, r := range rows {
		if r.ID != ids[i] {
			t.Fatal("input row set was reordered")
		}
	}
}

func TestSortByDimension(t *testing.T) {
	rows := listRows(3)
	for i, c := range []string{"c", "a", "b"} {
		rows[i].Dims = map[string]string{"category": c}
	}
	sorted, err := Sort(models.Transactions, rows, "category", SortAsc)
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	var got string
	for _, r := range sorted {
		got += r.Dims["category"]
	}
	if got != "abc" {
		t.Fatalf("category order = %q, want abc", got)
	}
}

func TestParseSortDirection(t *testing.T) {
	cases := []struct {
		input    string
		expected SortDirection
	}{
		{"asc", SortAsc},
		{"", SortDesc},
		{"junk", SortDesc},
	}
	for _, tc := range cases {
		if got := ParseSortDirection(tc.input); got != tc.expected {
			t.Fatalf("ParseSortDirection(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
