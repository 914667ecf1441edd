// Package listing drives the paginated transaction history shared by the
// one-shot list command and the interactive browser.
package listing

import (
	"context"
	"sync"

	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/service"
	"github.com/rs/zerolog"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StatePopulated
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

const EmptyMessage = "No transactions found"

// Fetcher loads one page of history. *service.TransactionService implements
// it.
type Fetcher interface {
	List(ctx context.Context, filter service.FilterState) (*model.TransactionPage, error)
}

// View is a committed controller state. Version increases with every commit.
type View struct {
	Version    uint64
	State      State
	Filter     service.FilterState
	Rows       []Row
	TotalPages int
	Message    string
	Err        error
}

type Option func(*Controller)

func WithFilter(f service.FilterState) Option {
	return func(c *Controller) { c.view.Filter = f }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithErrorMessage sets how fetch errors are worded in the Error state.
func WithErrorMessage(fn func(error) string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.messageFor = fn
		}
	}
}

type Controller struct {
	fetcher    Fetcher
	presenter  *Presenter
	messageFor func(error) string
	log        zerolog.Logger

	mu       sync.Mutex
	ctx      context.Context
	view     View
	seq      uint64
	cancel   context.CancelFunc
	disposed bool
	subs     map[int]func(View)
	nextSub  int
	pending  []View

	notifyMu sync.Mutex
	inflight sync.WaitGroup
}

func NewController(fetcher Fetcher, presenter *Presenter, opts ...Option) *Controller {
	c := &Controller{
		fetcher:    fetcher,
		presenter:  presenter,
		messageFor: func(err error) string { return err.Error() },
		log:        zerolog.Nop(),
		ctx:        context.Background(),
		view:       View{State: StateIdle, Filter: service.DefaultFilter(), TotalPages: 1},
		subs:       make(map[int]func(View)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// View returns the latest committed state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Controller) Filter() service.FilterState {
	return c.View().Filter
}

// Subscribe registers fn for every committed state, delivered in commit
// order. fn may call back into the controller.
func (c *Controller) Subscribe(fn func(View)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Mount starts the first fetch. ctx bounds every later fetch as well.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	c.ctx = ctx
	filter := c.view.Filter
	c.mu.Unlock()

	c.load(filter)
}

func (c *Controller) SetPage(page int) {
	c.load(c.Filter().WithPage(page))
}

func (c *Controller) SetPageSize(size int) {
	c.load(c.Filter().WithPageSize(size))
}

func (c *Controller) SetSearch(search string) {
	c.load(c.Filter().WithSearch(search))
}

func (c *Controller) SetSort(field service.SortField, dir service.SortDirection) {
	c.load(c.Filter().WithSort(field, dir))
}

func (c *Controller) NextPage() {
	v := c.View()
	if v.Filter.Page < v.TotalPages {
		c.SetPage(v.Filter.Page + 1)
	}
}

func (c *Controller) PrevPage() {
	if f := c.Filter(); f.Page > 1 {
		c.SetPage(f.Page - 1)
	}
}

// Retry repeats the fetch for the current filter.
func (c *Controller) Retry() {
	c.load(c.Filter())
}

// Dispose cancels the in-flight fetch and detaches all subscribers. Later
// responses and calls are ignored.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disposed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.subs = make(map[int]func(View))
	c.pending = nil
}

// Wait blocks until every started fetch has returned.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) load(filter service.FilterState) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}

	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancel = cancel

	c.commitLocked(View{
		State:      StateLoading,
		Filter:     filter,
		TotalPages: c.view.TotalPages,
	})
	c.inflight.Add(1)
	c.mu.Unlock()

	c.flush()
	go c.fetch(ctx, cancel, seq, filter)
}

func (c *Controller) fetch(ctx context.Context, cancel context.CancelFunc, seq uint64, filter service.FilterState) {
	defer c.inflight.Done()
	defer cancel()

	page, err := c.fetcher.List(ctx, filter)

	c.mu.Lock()
	if c.disposed || seq != c.seq || filter != c.view.Filter {
		c.mu.Unlock()
		c.log.Debug().Uint64("seq", seq).Int("page", filter.Page).Msg("Dropped stale transaction page")
		return
	}
	c.cancel = nil

	v := View{Filter: filter, TotalPages: c.view.TotalPages}
	switch {
	case err != nil:
		v.State = StateError
		v.Err = err
		v.Message = c.messageFor(err)
		c.log.Warn().Err(err).Int("page", filter.Page).Msg("Failed to load transactions")
	case len(page.Content) == 0 || filter.Page > page.TotalPages:
		v.State = StateEmpty
		v.TotalPages = page.TotalPages
		v.Message = EmptyMessage
	default:
		v.State = StatePopulated
		v.TotalPages = page.TotalPages
		v.Rows = c.presenter.Rows(page.Content)
	}
	c.commitLocked(v)
	c.mu.Unlock()

	c.flush()
}

func (c *Controller) commitLocked(v View) {
	v.Version = c.view.Version + 1
	c.view = v
	c.pending = append(c.pending, v)
}

// flush delivers pending views in order. Only one goroutine delivers at a
// time; the others leave their views to it.
func (c *Controller) flush() {
	for {
		if !c.notifyMu.TryLock() {
			return
		}
		c.drain()
		c.notifyMu.Unlock()

		c.mu.Lock()
		more := len(c.pending) > 0
		c.mu.Unlock()
		if !more {
			return
		}
	}
}

func (c *Controller) drain() {
	for {
		c.mu.Lock()
		batch := c.pending
		c.pending = nil
		subs := make([]func(View), 0, len(c.subs))
		for _, fn := range c.subs {
			subs = append(subs, fn)
		}
		c.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, v := range batch {
			for _, fn := range subs {
				fn(v)
			}
		}
	}
}
