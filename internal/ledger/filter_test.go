package ledger

import (
	"fmt"
	"testing"

	"ledgerly/internal/models"
)

func makeSnapshot(n int) []models.Transaction {
	out := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Transaction{
			Title:    fmt.Sprintf("Transaction %02d", i+1),
			Category: "food",
		})
	}
	return out
}

func TestFilter(t *testing.T) {
	snapshot := []models.Transaction{
		{Title: "Train ticket", Category: "travel"},
		{Title: "Groceries", Category: "food"},
		{Title: "Electricity", Category: "utilities"},
		{Title: "Travel insurance", Category: "others"},
	}

	t.Run("empty search keeps everything", func(t *testing.T) {
		got := Filter(snapshot, "")
		if len(got) != len(snapshot) {
			t.Fatalf("expected %d items, got %d", len(snapshot), len(got))
		}
	})

	t.Run("matches title or category case-insensitively", func(t *testing.T) {
		got := Filter(snapshot, "tra")
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d: %v", len(got), got)
		}
		if got[0].Title != "Train ticket" || got[1].Title != "Travel insurance" {
			t.Errorf("order must be preserved, got %v", got)
		}
	})

	t.Run("category match", func(t *testing.T) {
		got := Filter(snapshot, "FOOD")
		if len(got) != 1 || got[0].Title != "Groceries" {
			t.Fatalf("expected the food transaction, got %v", got)
		}
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		if got := Filter(snapshot, "zzz"); len(got) != 0 {
			t.Fatalf("expected no matches, got %v", got)
		}
	})

	t.Run("input is untouched", func(t *testing.T) {
		before := snapshot[0].Title
		Filter(snapshot, "tra")
		if snapshot[0].Title != before {
			t.Error("snapshot must not be mutated")
		}
	})
}

func TestFilterPage(t *testing.T) {
	snapshot := makeSnapshot(25)

	t.Run("splits 25 items into 3 pages", func(t *testing.T) {
		page := FilterPage(snapshot, "", 1)
		if page.TotalPages != 3 {
			t.Fatalf("expected 3 pages, got %d", page.TotalPages)
		}
		if len(page.Data) != PageSize {
			t.Errorf("expected %d items on page 1, got %d", PageSize, len(page.Data))
		}

		last := FilterPage(snapshot, "", 3)
		if len(last.Data) != 5 {
			t.Errorf("expected 5 items on page 3, got %d", len(last.Data))
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page := FilterPage(snapshot, "", 4)
		if len(page.Data) != 0 {
			t.Fatalf("expected empty page, got %d items", len(page.Data))
		}
		if page.TotalPages != 3 {
			t.Errorf("total pages must still be 3, got %d", page.TotalPages)
		}
	})

	t.Run("page below one is treated as page one", func(t *testing.T) {
		page := FilterPage(snapshot, "", 0)
		if page.Page != 1 || len(page.Data) != PageSize {
			t.Fatalf("expected full page 1, got page %d with %d items", page.Page, len(page.Data))
		}
	})

	t.Run("total recomputed from filtered set", func(t *testing.T) {
		page := FilterPage(snapshot, "transaction 0", 1)
		if page.TotalItems != 9 {
			t.Errorf("expected 9 filtered items, got %d", page.TotalItems)
		}
		if page.TotalPages != 1 {
			t.Errorf("expected 1 page, got %d", page.TotalPages)
		}
	})

	t.Run("empty snapshot yields one empty page", func(t *testing.T) {
		page := FilterPage(nil, "", 1)
		if len(page.Data) != 0 || page.TotalItems != 0 || page.TotalPages != 0 {
			t.Fatalf("unexpected page for empty snapshot: %+v", page)
		}
	})
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalItems int
		want       int
	}{
		{"in range", 2, 25, 2},
		{"past end clamps to last", 9, 25, 3},
		{"below one clamps to first", 0, 25, 1},
		{"no items clamps to one", 5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.page, tt.totalItems); got != tt.want {
				t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalItems, got, tt.want)
			}
		})
	}
}
