package service

import (
	"testing"

	"github.com/hance08/dompet/internal/model"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterState
		want   map[string]string
	}{
		{
			name:   "defaults",
			filter: DefaultFilter(),
			want:   map[string]string{"walletId": "7", "page": "0", "size": "10", "search": "", "sort": "date,desc"},
		},
		{
			name:   "third page by amount",
			filter: FilterState{Page: 3, PageSize: 20, Search: "coffee", SortField: SortByAmount, SortDirection: SortAsc},
			want:   map[string]string{"walletId": "7", "page": "2", "size": "20", "search": "coffee", "sort": "amount,asc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BuildQuery(tt.filter, model.ID("7"))
			for key, want := range tt.want {
				if _, ok := q[key]; !ok {
					t.Errorf("missing %q", key)
					continue
				}
				if got := q.Get(key); got != want {
					t.Errorf("%s = %q, want %q", key, got, want)
				}
			}
			if len(q) != len(tt.want) {
				t.Errorf("got %d params, want %d", len(q), len(tt.want))
			}
		})
	}
}

func TestFilterState_ChangesResetPage(t *testing.T) {
	f := DefaultFilter().WithPage(4)
	if f.Page != 4 {
		t.Fatalf("WithPage: page = %d", f.Page)
	}

	if got := f.WithPageSize(50); got.Page != 1 || got.PageSize != 50 {
		t.Errorf("WithPageSize = %+v", got)
	}
	if got := f.WithSearch("food"); got.Page != 1 || got.Search != "food" {
		t.Errorf("WithSearch = %+v", got)
	}
	if got := f.WithSort(SortByAmount, SortAsc); got.Page != 1 || got.SortField != SortByAmount {
		t.Errorf("WithSort = %+v", got)
	}
	if got := f.WithPage(0); got.Page != 1 {
		t.Errorf("WithPage(0) = %d, want 1", got.Page)
	}
}

func TestFilterState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  FilterState
		wantErr bool
	}{
		{"default", DefaultFilter(), false},
		{"size 20", DefaultFilter().WithPageSize(20), false},
		{"size 15", DefaultFilter().WithPageSize(15), true},
		{"page 0", FilterState{Page: 0, PageSize: 10, SortField: SortByDate, SortDirection: SortDesc}, true},
		{"bad sort", DefaultFilter().WithSort("name", SortAsc), true},
		{"bad order", DefaultFilter().WithSort(SortByDate, "up"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.filter.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
