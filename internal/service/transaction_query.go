package service

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/hance08/dompet/internal/model"
)

type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PageSizes are the page sizes the API accepts.
var PageSizes = []int{10, 20, 50}

const DefaultPageSize = 10

// FilterState is everything that decides which page of history is shown.
// Page is 1-based.
type FilterState struct {
	Page          int
	PageSize      int
	Search        string
	SortField     SortField
	SortDirection SortDirection
}

func DefaultFilter() FilterState {
	return FilterState{
		Page:          1,
		PageSize:      DefaultPageSize,
		SortField:     SortByDate,
		SortDirection: SortDesc,
	}
}

// WithPage is the only change that keeps the other fields as they are.
func (f FilterState) WithPage(page int) FilterState {
	if page < 1 {
		page = 1
	}
	f.Page = page
	return f
}

// WithPageSize, WithSearch and WithSort return to the first page.
func (f FilterState) WithPageSize(size int) FilterState {
	f.PageSize = size
	f.Page = 1
	return f
}

func (f FilterState) WithSearch(search string) FilterState {
	f.Search = search
	f.Page = 1
	return f
}

func (f FilterState) WithSort(field SortField, dir SortDirection) FilterState {
	f.SortField = field
	f.SortDirection = dir
	f.Page = 1
	return f
}

func (f FilterState) Validate() error {
	if f.Page < 1 {
		return fmt.Errorf("page must be 1 or greater (got %d)", f.Page)
	}
	if !slices.Contains(PageSizes, f.PageSize) {
		return fmt.Errorf("page size must be one of %v (got %d)", PageSizes, f.PageSize)
	}
	if _, err := ParseSortField(string(f.SortField)); err != nil {
		return err
	}
	if _, err := ParseSortDirection(string(f.SortDirection)); err != nil {
		return err
	}
	return nil
}

func ParseSortField(s string) (SortField, error) {
	switch SortField(strings.ToLower(strings.TrimSpace(s))) {
	case SortByDate:
		return SortByDate, nil
	case SortByAmount:
		return SortByAmount, nil
	default:
		return "", fmt.Errorf("unknown sort field %q (use date or amount)", s)
	}
}

func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("unknown sort order %q (use asc or desc)", s)
	}
}

// BuildQuery turns a filter into GET /transactions parameters. The API pages
// from zero and always receives search, even when empty.
func BuildQuery(filter FilterState, walletID model.ID) url.Values {
	q := url.Values{}
	q.Set("walletId", walletID.String())
	q.Set("page", strconv.Itoa(filter.Page-1))
	q.Set("size", strconv.Itoa(filter.PageSize))
	q.Set("search", filter.Search)
	q.Set("sort", string(filter.SortField)+","+string(filter.SortDirection))
	return q
}
