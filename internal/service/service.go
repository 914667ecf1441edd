package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hance08/dompet/internal/api"
	"github.com/hance08/dompet/internal/config"
	"github.com/hance08/dompet/internal/model"
	"github.com/rs/zerolog"
)

// Backend is the part of the wallet API the services call. *api.Client
// implements it.
type Backend interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req api.RegisterRequest) error
	Me(ctx context.Context) (*model.CurrentUser, error)
	GetWallet(ctx context.Context, id model.ID) (*model.Wallet, error)
	ListAvailableWallets(ctx context.Context, userID model.ID) ([]model.Wallet, error)
	ListTransactions(ctx context.Context, query url.Values) (*model.TransactionPage, error)
	CreateTransaction(ctx context.Context, req api.CreateTransactionRequest) (*model.Transaction, error)
}

// SessionStore is the session state shared by every service.
// *session.Session implements it.
type SessionStore interface {
	Token() (string, bool)
	SetToken(token string) error
	Clear() error
	CurrentUser() (*model.CurrentUser, bool)
	SetCurrentUser(u *model.CurrentUser) error
	ViewerID() (model.ID, bool)
}

type Service struct {
	Auth        *AuthService
	Wallet      *WalletService
	Transaction *TransactionService
}

func NewService(backend Backend, sess SessionStore, cfg *config.Config, log zerolog.Logger) (*Service, error) {
	policy, err := ParsePolicy(cfg.Classifier.NonTransferPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid classifier config: %w", err)
	}

	wallet := NewWalletService(backend, sess, log)
	return &Service{
		Auth:        NewAuthService(backend, sess, log),
		Wallet:      wallet,
		Transaction: NewTransactionService(backend, sess, wallet, NewClassifier(policy), log),
	}, nil
}
