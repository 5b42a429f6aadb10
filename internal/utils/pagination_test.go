package utils

import (
	"testing"
)

func TestNewPaginate(t *testing.T) {
	tests := []struct {
		name         string
		total        int64
		page         int
		limit        int
		wantLastPage int
	}{
		{"empty result keeps one page", 0, 1, 10, 1},
		{"exact multiple", 20, 1, 10, 2},
		{"partial last page rounds up", 21, 1, 10, 3},
		{"single item", 1, 1, 10, 1},
		{"limit one", 5, 3, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginate(tt.total, tt.page, tt.limit)
			if p.LastPage != tt.wantLastPage {
				t.Errorf("NewPaginate() LastPage = %d, want %d", p.LastPage, tt.wantLastPage)
			}
			if p.Total != tt.total {
				t.Errorf("NewPaginate() Total = %d, want %d", p.Total, tt.total)
			}
			if p.PerPage != tt.limit {
				t.Errorf("NewPaginate() PerPage = %d, want %d", p.PerPage, tt.limit)
			}
			if p.CurrentPage != tt.page {
				t.Errorf("NewPaginate() CurrentPage = %d, want %d", p.CurrentPage, tt.page)
			}
		})
	}
}

func TestParsePageLimit(t *testing.T) {
	tests := []struct {
		name      string
		pageStr   string
		limitStr  string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", "", 1, 10},
		{"explicit values", "3", "25", 3, 25},
		{"zero page falls back", "0", "10", 1, 10},
		{"negative page falls back", "-2", "10", 1, 10},
		{"limit over cap falls back", "1", "500", 1, 10},
		{"limit at cap accepted", "1", "100", 1, 100},
		{"garbage falls back", "abc", "xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ParsePageLimit(tt.pageStr, tt.limitStr)
			if page != tt.wantPage {
				t.Errorf("ParsePageLimit() page = %d, want %d", page, tt.wantPage)
			}
			if limit != tt.wantLimit {
				t.Errorf("ParsePageLimit() limit = %d, want %d", limit, tt.wantLimit)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{"first page", 1, 10, 0},
		{"second page", 2, 10, 10},
		{"large page", 11, 25, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateOffset(tt.page, tt.limit); got != tt.want {
				t.Errorf("CalculateOffset() = %d, want %d", got, tt.want)
			}
		})
	}
}
