package transaction

import (
	"testing"

	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/config"
	"github.com/hance08/dompet/internal/service"
)

func TestFilterFlags_Filter(t *testing.T) {
	tests := []struct {
		name    string
		flags   filterFlags
		want    service.FilterState
		wantErr bool
	}{
		{
			name:  "defaults",
			flags: filterFlags{Page: 1, Size: 10, Sort: "date", Order: "desc"},
			want:  service.DefaultFilter(),
		},
		{
			name:  "page survives other fields",
			flags: filterFlags{Page: 3, Size: 20, Search: "kopi", Sort: "amount", Order: "asc"},
			want: service.FilterState{
				Page:          3,
				PageSize:      20,
				Search:        "kopi",
				SortField:     service.SortByAmount,
				SortDirection: service.SortAsc,
			},
		},
		{
			name:  "page below one is clamped",
			flags: filterFlags{Page: 0, Size: 50, Sort: "DATE", Order: "DESC"},
			want: service.FilterState{
				Page:          1,
				PageSize:      50,
				SortField:     service.SortByDate,
				SortDirection: service.SortDesc,
			},
		},
		{name: "bad size", flags: filterFlags{Page: 1, Size: 15, Sort: "date", Order: "desc"}, wantErr: true},
		{name: "bad sort", flags: filterFlags{Page: 1, Size: 10, Sort: "name", Order: "desc"}, wantErr: true},
		{name: "bad order", flags: filterFlags{Page: 1, Size: 10, Sort: "date", Order: "up"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.flags.filter()
			if (err != nil) != tt.wantErr {
				t.Fatalf("filter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("filter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultPageSize(t *testing.T) {
	tests := []struct {
		configured int
		want       int
	}{
		{20, 20},
		{50, 50},
		{0, service.DefaultPageSize},
		{25, service.DefaultPageSize},
	}

	for _, tt := range tests {
		cfg := config.NewDefault()
		cfg.Display.PageSize = tt.configured
		a := &app.App{Config: cfg}

		if got := defaultPageSize(a); got != tt.want {
			t.Errorf("defaultPageSize(%d) = %d, want %d", tt.configured, got, tt.want)
		}
	}
}
