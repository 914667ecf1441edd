package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hance08/dompet/internal/api"
	"github.com/hance08/dompet/internal/model"
)

func (in TransferInput) Validate() error {
	if !in.Amount.IsPositive() {
		return invalid("amount", "amount must be greater than zero")
	}
	if strings.TrimSpace(in.RecipientAccountNumber) == "" {
		return invalid("recipient", "please select a recipient")
	}
	if strings.TrimSpace(in.Category) == "" {
		return invalid("category", "please select a category")
	}
	if !slices.Contains(TransferCategories, in.Category) {
		return invalid("category", "unknown category %q (use one of %s)", in.Category, strings.Join(TransferCategories, ", "))
	}
	return nil
}

func (in TopUpInput) Validate() error {
	if !in.Amount.IsPositive() {
		return invalid("amount", "amount must be greater than zero")
	}
	if in.Method == "" {
		return invalid("method", "please select a payment method")
	}
	if !slices.Contains(TopUpMethods, in.Method) {
		return invalid("method", "unknown payment method %q", in.Method)
	}
	return nil
}

// Transfer sends money from the viewer's wallet. Inputs are checked locally
// first; nothing is sent when they are invalid.
func (ts *TransactionService) Transfer(ctx context.Context, in TransferInput) (*Receipt, error) {
	in.RecipientAccountNumber = strings.TrimSpace(in.RecipientAccountNumber)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	viewer, ok := ts.session.CurrentUser()
	if !ok || viewer.ID.IsZero() {
		return nil, ErrNotLoggedIn
	}

	req := api.CreateTransactionRequest{
		WalletID:               viewer.ID,
		TransactionType:        model.TypeTransfer,
		RecipientAccountNumber: in.RecipientAccountNumber,
		Category:               in.Category,
		Amount:                 json.Number(in.Amount.String()),
		Description:            strings.TrimSpace(in.Description),
	}

	tx, err := ts.backend.CreateTransaction(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("transfer failed: %w", err)
	}

	ts.log.Info().
		Str("recipient", in.RecipientAccountNumber).
		Str("amount", in.Amount.String()).
		Msg("Transfer completed")

	receipt := &Receipt{
		TransactionID:   tx.ID,
		TransactionType: model.TypeTransfer,
		Amount:          in.Amount,
		From:            viewer.DisplayName(),
		To:              in.RecipientAccountNumber,
		Category:        in.Category,
		Description:     orDash(req.Description),
		CompletedAt:     time.Now(),
	}
	if tx.Recipient != nil && tx.Recipient.Fullname != "" {
		receipt.To = fmt.Sprintf("%s (%s)", tx.Recipient.Fullname, in.RecipientAccountNumber)
	}

	ts.refreshAfter(ctx, receipt)
	return receipt, nil
}

// TopUp adds money to the viewer's wallet through an external method.
func (ts *TransactionService) TopUp(ctx context.Context, in TopUpInput) (*Receipt, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	wallet, err := ts.wallet.GetWallet(ctx)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = "Top Up from " + string(in.Method)
	}

	tx, err := ts.backend.CreateTransaction(ctx, api.CreateTransactionRequest{
		WalletID:        wallet.ID,
		TransactionType: model.TypeTopUp,
		Amount:          json.Number(in.Amount.String()),
		Description:     description,
	})
	if err != nil {
		return nil, fmt.Errorf("top-up failed: %w", err)
	}

	ts.log.Info().
		Str("method", string(in.Method)).
		Str("amount", in.Amount.String()).
		Msg("Top-up completed")

	receipt := &Receipt{
		TransactionID:   tx.ID,
		TransactionType: model.TypeTopUp,
		Amount:          in.Amount,
		To:              wallet.AccountNumber,
		Method:          in.Method,
		Description:     description,
		CompletedAt:     time.Now(),
	}

	ts.refreshAfter(ctx, receipt)
	return receipt, nil
}

// refreshAfter updates the cached balance. The money already moved, so a
// failure here is logged and not returned.
func (ts *TransactionService) refreshAfter(ctx context.Context, receipt *Receipt) {
	wallet, err := ts.wallet.RefreshBalance(ctx)
	if err != nil {
		ts.log.Warn().Err(err).Msg("Failed to refresh balance after transaction")
		return
	}
	receipt.Balance = wallet.Balance
	receipt.BalanceKnown = true
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
