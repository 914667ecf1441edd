// Package tui is the interactive transaction browser.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/ui/listing"
)

type viewMsg listing.View

type Browser struct {
	ctx   context.Context
	ctrl  *listing.Controller
	view  listing.View
	style styles

	table     table.Model
	search    textinput.Model
	spinner   spinner.Model
	searching bool
	width     int
}

func NewBrowser(ctx context.Context, ctrl *listing.Controller, dark bool) *Browser {
	st := newStyles(dark)

	columns := []table.Column{
		{Title: "Date", Width: 17},
		{Title: "Type", Width: 10},
		{Title: "From/To", Width: 18},
		{Title: "Category", Width: 13},
		{Title: "Description", Width: 22},
		{Title: "Amount", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(st.border).
		BorderBottom(true).
		Bold(true).
		Foreground(st.header)
	ts.Selected = ts.Selected.
		Foreground(st.selectF).
		Background(st.selectB).
		Bold(false)
	t.SetStyles(ts)

	ti := textinput.New()
	ti.Placeholder = "search description or name"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.status

	return &Browser{
		ctx:     ctx,
		ctrl:    ctrl,
		view:    ctrl.View(),
		style:   st,
		table:   t,
		search:  ti,
		spinner: sp,
	}
}

// Run shows the browser until the user quits, then disposes the controller.
func Run(ctx context.Context, ctrl *listing.Controller, dark bool) error {
	b := NewBrowser(ctx, ctrl, dark)
	p := tea.NewProgram(b, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := ctrl.Subscribe(func(v listing.View) {
		p.Send(viewMsg(v))
	})
	defer func() {
		unsubscribe()
		ctrl.Dispose()
	}()

	_, err := p.Run()
	return err
}

// do runs a controller call off the event loop; the controller reports back
// through its subscription.
func (b *Browser) do(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

func (b *Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.do(func() { b.ctrl.Mount(b.ctx) }))
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewMsg:
		v := listing.View(msg)
		if v.Version < b.view.Version {
			return b, nil
		}
		b.view = v
		b.table.SetRows(b.rows())
		b.table.SetCursor(0)
		return b, nil

	case tea.WindowSizeMsg:
		b.width = msg.Width
		if h := msg.Height - 8; h > 3 {
			b.table.SetHeight(h)
		}
		return b, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case tea.KeyMsg:
		if b.searching {
			return b.updateSearch(msg)
		}
		if cmd, handled := b.handleKey(msg); handled {
			return b, cmd
		}
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b *Browser) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		b.searching = false
		b.search.Blur()
		b.table.Focus()
		query := strings.TrimSpace(b.search.Value())
		return b, b.do(func() { b.ctrl.SetSearch(query) })
	case tea.KeyEsc:
		b.searching = false
		b.search.Blur()
		b.search.SetValue(b.view.Filter.Search)
		b.table.Focus()
		return b, nil
	}

	var cmd tea.Cmd
	b.search, cmd = b.search.Update(msg)
	return b, cmd
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	f := b.view.Filter

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit, true
	case "/":
		b.searching = true
		b.table.Blur()
		b.search.SetValue(f.Search)
		return b.search.Focus(), true
	case "n", "right":
		return b.do(b.ctrl.NextPage), true
	case "p", "left":
		return b.do(b.ctrl.PrevPage), true
	case "s":
		field := service.SortByAmount
		if f.SortField == service.SortByAmount {
			field = service.SortByDate
		}
		return b.do(func() { b.ctrl.SetSort(field, f.SortDirection) }), true
	case "o":
		dir := service.SortAsc
		if f.SortDirection == service.SortAsc {
			dir = service.SortDesc
		}
		return b.do(func() { b.ctrl.SetSort(f.SortField, dir) }), true
	case "z":
		idx := slices.Index(service.PageSizes, f.PageSize)
		size := service.PageSizes[(idx+1)%len(service.PageSizes)]
		return b.do(func() { b.ctrl.SetPageSize(size) }), true
	case "r":
		return b.do(b.ctrl.Retry), true
	}
	return nil, false
}

func (b *Browser) rows() []table.Row {
	rows := make([]table.Row, 0, len(b.view.Rows))
	for _, r := range b.view.Rows {
		rows = append(rows, table.Row{r.Date, r.Type, r.Counterparty, r.Category, r.Description, r.Amount})
	}
	return rows
}

func (b *Browser) View() string {
	var sb strings.Builder

	f := b.view.Filter
	sb.WriteString(b.style.title.Render("dompet · transactions"))
	sb.WriteString("  ")
	sb.WriteString(b.style.status.Render(fmt.Sprintf("sort %s %s · %d per page", f.SortField, f.SortDirection, f.PageSize)))
	if f.Search != "" {
		sb.WriteString(b.style.status.Render(fmt.Sprintf(" · search %q", f.Search)))
	}
	sb.WriteString("\n\n")

	switch b.view.State {
	case listing.StateIdle, listing.StateLoading:
		sb.WriteString(b.spinner.View() + " Loading transactions...\n")
	case listing.StateError:
		sb.WriteString(b.style.err.Render(b.view.Message) + "\n")
		sb.WriteString(b.style.help.Render("press r to retry") + "\n")
	case listing.StateEmpty:
		sb.WriteString(b.style.empty.Render(b.view.Message) + "\n")
	case listing.StatePopulated:
		sb.WriteString(b.table.View() + "\n")
		sb.WriteString(b.selectedAmount() + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(b.style.status.Render(fmt.Sprintf("Page %d of %d", f.Page, b.view.TotalPages)))
	sb.WriteString("\n")

	if b.searching {
		sb.WriteString(b.search.View() + "\n")
	} else {
		sb.WriteString(b.style.help.Render("←/p prev · →/n next · / search · s sort · o order · z size · r reload · q quit"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Browser) selectedAmount() string {
	i := b.table.Cursor()
	if i < 0 || i >= len(b.view.Rows) {
		return ""
	}
	r := b.view.Rows[i]
	switch r.Direction {
	case service.DirectionCredit:
		return b.style.credit.Render(r.Amount)
	case service.DirectionDebit:
		return b.style.debit.Render(r.Amount)
	default:
		return r.Amount
	}
}
