package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/ui/listing"
	"github.com/hance08/dompet/internal/utils"
)

type staticFetcher struct{}

func (staticFetcher) List(ctx context.Context, filter service.FilterState) (*model.TransactionPage, error) {
	return &model.TransactionPage{TotalPages: 1}, nil
}

func newTestBrowser() *Browser {
	presenter := listing.NewPresenter(service.NewClassifier(service.PolicySender), utils.MustFormatter("id-ID", "IDR"), "1")
	ctrl := listing.NewController(staticFetcher{}, presenter)
	return NewBrowser(context.Background(), ctrl, false)
}

func TestBrowser_RendersStates(t *testing.T) {
	b := newTestBrowser()

	b.Update(viewMsg(listing.View{Version: 1, State: listing.StateLoading, Filter: service.DefaultFilter(), TotalPages: 1}))
	if out := b.View(); !strings.Contains(out, "Loading transactions") {
		t.Errorf("loading view missing spinner text:\n%s", out)
	}

	b.Update(viewMsg(listing.View{Version: 2, State: listing.StateEmpty, Filter: service.DefaultFilter(), TotalPages: 1, Message: listing.EmptyMessage}))
	if out := b.View(); !strings.Contains(out, listing.EmptyMessage) {
		t.Errorf("empty view missing message:\n%s", out)
	}

	rows := []listing.Row{{Date: "01 Jan 2025 10:00", Type: "Transfer", Counterparty: "B", Amount: "-Rp 50.000,00", Direction: service.DirectionDebit}}
	b.Update(viewMsg(listing.View{Version: 3, State: listing.StatePopulated, Filter: service.DefaultFilter().WithPage(2), TotalPages: 3, Rows: rows}))
	out := b.View()
	if !strings.Contains(out, "Page 2 of 3") || !strings.Contains(out, "-Rp 50.000,00") {
		t.Errorf("populated view:\n%s", out)
	}
}

func TestBrowser_IgnoresOlderViews(t *testing.T) {
	b := newTestBrowser()

	b.Update(viewMsg(listing.View{Version: 5, State: listing.StateError, Message: "server down", TotalPages: 1}))
	b.Update(viewMsg(listing.View{Version: 4, State: listing.StateLoading, TotalPages: 1}))

	if b.view.Version != 5 || !strings.Contains(b.View(), "server down") {
		t.Errorf("older view replaced newer one: %+v", b.view)
	}
}

func TestBrowser_Keys(t *testing.T) {
	b := newTestBrowser()

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce QuitMsg")
	}

	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !b.searching {
		t.Error("/ should open search")
	}
	b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if b.searching {
		t.Error("esc should close search")
	}
}
