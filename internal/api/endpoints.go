package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hance08/dompet/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	Fullname    string `json:"fullname"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// CreateTransactionRequest is the body of POST /transactions. Amount is sent
// as a JSON number.
type CreateTransactionRequest struct {
	WalletID               model.ID              `json:"walletId"`
	TransactionType        model.TransactionType `json:"transactionType"`
	RecipientAccountNumber string                `json:"recipientAccountNumber"`
	Category               string                `json:"category,omitempty"`
	Amount                 json.Number           `json:"amount"`
	Description            string                `json:"description"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.Do(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Token) == "" {
		return "", fmt.Errorf("login response did not contain a token")
	}
	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.Do(ctx, http.MethodPost, "/auth/register", nil, req, nil)
}

// Me returns the identity behind the current token.
func (c *Client) Me(ctx context.Context) (*model.CurrentUser, error) {
	var u model.CurrentUser
	if err := c.Do(ctx, http.MethodGet, "/users/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) GetUser(ctx context.Context, id model.ID) (*model.CurrentUser, error) {
	var u model.CurrentUser
	if err := c.Do(ctx, http.MethodGet, "/users/"+url.PathEscape(id.String()), nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) GetWallet(ctx context.Context, id model.ID) (*model.Wallet, error) {
	var w model.Wallet
	if err := c.Do(ctx, http.MethodGet, "/wallets/"+url.PathEscape(id.String()), nil, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// ListAvailableWallets returns the wallets userID may transfer to.
func (c *Client) ListAvailableWallets(ctx context.Context, userID model.ID) ([]model.Wallet, error) {
	var wallets []model.Wallet
	if err := c.Do(ctx, http.MethodGet, "/wallets/availability/"+url.PathEscape(userID.String()), nil, nil, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (c *Client) ListTransactions(ctx context.Context, query url.Values) (*model.TransactionPage, error) {
	// An empty 2xx body skips decoding, so the page starts at one page.
	page := model.TransactionPage{TotalPages: 1}
	if err := c.Do(ctx, http.MethodGet, "/transactions", query, nil, &page); err != nil {
		return nil, err
	}
	if page.TotalPages < 1 {
		page.TotalPages = 1
	}
	return &page, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*model.Transaction, error) {
	var tx model.Transaction
	if err := c.Do(ctx, http.MethodPost, "/transactions", nil, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
