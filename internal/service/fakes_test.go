package service

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/hance08/dompet/internal/api"
	"github.com/hance08/dompet/internal/model"
	"github.com/shopspring/decimal"
)

type fakeBackend struct {
	mu sync.Mutex

	token    string
	loginErr error
	me       *model.CurrentUser
	meErr    error

	registered []api.RegisterRequest

	wallet     *model.Wallet
	walletErr  error
	walletHits int
	recipients []model.Wallet

	pages    []model.TransactionPage
	listErr  error
	queries  []url.Values
	created  []api.CreateTransactionRequest
	createTx *model.Transaction
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeBackend) Register(ctx context.Context, req api.RegisterRequest) error {
	f.registered = append(f.registered, req)
	return nil
}

func (f *fakeBackend) Me(ctx context.Context) (*model.CurrentUser, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	u := *f.me
	return &u, nil
}

func (f *fakeBackend) GetWallet(ctx context.Context, id model.ID) (*model.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.walletHits++
	if f.walletErr != nil {
		return nil, f.walletErr
	}
	w := *f.wallet
	return &w, nil
}

func (f *fakeBackend) ListAvailableWallets(ctx context.Context, userID model.ID) ([]model.Wallet, error) {
	return f.recipients, nil
}

func (f *fakeBackend) ListTransactions(ctx context.Context, query url.Values) (*model.TransactionPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.listErr != nil {
		return nil, f.listErr
	}
	idx := len(f.queries) - 1
	if idx >= len(f.pages) {
		return &model.TransactionPage{TotalPages: 1}, nil
	}
	p := f.pages[idx]
	return &p, nil
}

func (f *fakeBackend) CreateTransaction(ctx context.Context, req api.CreateTransactionRequest) (*model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	if f.createTx != nil {
		return f.createTx, nil
	}
	return &model.Transaction{ID: "99", TransactionType: req.TransactionType}, nil
}

type fakeSession struct {
	token string
	user  *model.CurrentUser
	err   error
}

func (s *fakeSession) Token() (string, bool) { return s.token, s.token != "" }

func (s *fakeSession) SetToken(token string) error {
	if s.err != nil {
		return s.err
	}
	s.token = token
	return nil
}

func (s *fakeSession) Clear() error {
	s.token = ""
	s.user = nil
	return nil
}

func (s *fakeSession) CurrentUser() (*model.CurrentUser, bool) {
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func (s *fakeSession) SetCurrentUser(u *model.CurrentUser) error {
	if s.err != nil {
		return s.err
	}
	c := *u
	s.user = &c
	return nil
}

func (s *fakeSession) ViewerID() (model.ID, bool) {
	if s.user == nil || s.user.ID.IsZero() {
		return "", false
	}
	return s.user.ID, true
}

var errBoom = errors.New("boom")

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func transfer(id string, sender, recipient model.Party, amt string) model.Transaction {
	return model.Transaction{
		ID:              model.ID(id),
		TransactionType: model.TypeTransfer,
		Amount:          amount(amt),
		Sender:          &sender,
		Recipient:       &recipient,
	}
}
