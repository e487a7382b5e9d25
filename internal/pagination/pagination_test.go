package pagination

import "testing"

func TestDefaults(t *testing.T) {
	p := PageRequest{}
	p.Defaults()
	if p.Page != 1 || p.PageSize != 20 {
		t.Errorf("expected defaults 1/20, got %d/%d", p.Page, p.PageSize)
	}

	p = PageRequest{Page: 3, PageSize: 10}
	p.Defaults()
	if p.Page != 3 || p.PageSize != 10 {
		t.Errorf("explicit values must be kept, got %d/%d", p.Page, p.PageSize)
	}
}

func TestTotalPages(t *testing.T) {
	p := PageRequest{PageSize: 10}
	tests := []struct {
		items int
		want  int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
	}
	for _, tt := range tests {
		if got := p.TotalPages(tt.items); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.items, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	p := PageRequest{Page: 7, PageSize: 10}
	if got := p.Clamp(25); got.Page != 3 {
		t.Errorf("expected clamp to 3, got %d", got.Page)
	}

	p = PageRequest{Page: -2, PageSize: 10}
	if got := p.Clamp(25); got.Page != 1 {
		t.Errorf("expected clamp to 1, got %d", got.Page)
	}

	p = PageRequest{Page: 4, PageSize: 10}
	if got := p.Clamp(0); got.Page != 1 {
		t.Errorf("expected clamp to 1 with no items, got %d", got.Page)
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	got := Slice(items, PageRequest{Page: 1, PageSize: 3})
	if len(got) != 3 || got[0] != 1 {
		t.Errorf("unexpected page 1: %v", got)
	}

	got = Slice(items, PageRequest{Page: 3, PageSize: 3})
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("unexpected page 3: %v", got)
	}

	got = Slice(items, PageRequest{Page: 4, PageSize: 3})
	if len(got) != 0 {
		t.Errorf("expected empty page past the end, got %v", got)
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse([]string{"a", "b"}, 1, 10, 12)
	if resp.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", resp.TotalPages)
	}

	resp = NewPageResponse[string](nil, 1, 10, 0)
	if resp.Data == nil {
		t.Error("nil data must marshal as an empty list, not null")
	}
}
