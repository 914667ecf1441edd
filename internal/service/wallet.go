package service

import (
	"context"
	"fmt"

	"github.com/hance08/dompet/internal/model"
	"github.com/rs/zerolog"
)

type WalletService struct {
	backend Backend
	session SessionStore
	log     zerolog.Logger
}

func NewWalletService(backend Backend, sess SessionStore, log zerolog.Logger) *WalletService {
	return &WalletService{backend: backend, session: sess, log: log}
}

// walletID is the viewer's wallet. The API keys wallets by owner id.
func (ws *WalletService) walletID() (model.ID, error) {
	id, ok := ws.session.ViewerID()
	if !ok {
		return "", ErrNotLoggedIn
	}
	return id, nil
}

func (ws *WalletService) GetWallet(ctx context.Context) (*model.Wallet, error) {
	id, err := ws.walletID()
	if err != nil {
		return nil, err
	}

	wallet, err := ws.backend.GetWallet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

// RefreshBalance re-reads the wallet and stores the new balance on the
// cached user.
func (ws *WalletService) RefreshBalance(ctx context.Context) (*model.Wallet, error) {
	wallet, err := ws.GetWallet(ctx)
	if err != nil {
		return nil, err
	}

	user, ok := ws.session.CurrentUser()
	if !ok {
		return wallet, nil
	}

	user.Balance = wallet.Balance
	if user.AccountNumber == "" {
		user.AccountNumber = wallet.AccountNumber
	}
	if err := ws.session.SetCurrentUser(user); err != nil {
		return nil, fmt.Errorf("failed to update cached balance: %w", err)
	}

	ws.log.Debug().Str("balance", wallet.Balance.String()).Msg("Balance refreshed")
	return wallet, nil
}

// ListRecipients returns the wallets the viewer can transfer to.
func (ws *WalletService) ListRecipients(ctx context.Context) ([]model.Wallet, error) {
	id, err := ws.walletID()
	if err != nil {
		return nil, err
	}

	wallets, err := ws.backend.ListAvailableWallets(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}

	recipients := make([]model.Wallet, 0, len(wallets))
	for _, w := range wallets {
		if w.User != nil && w.User.ID == id {
			continue
		}
		recipients = append(recipients, w)
	}
	return recipients, nil
}

// FindRecipient looks up a recipient wallet by account number.
func (ws *WalletService) FindRecipient(ctx context.Context, accountNumber string) (*model.Wallet, error) {
	recipients, err := ws.ListRecipients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recipients {
		if recipients[i].AccountNumber == accountNumber {
			return &recipients[i], nil
		}
	}
	return nil, invalid("recipient", "no recipient with account number %s", accountNumber)
}
