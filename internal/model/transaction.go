package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeTopUp    TransactionType = "TOP_UP"
	TypeTransfer TransactionType = "TRANSFER"
	TypeQR       TransactionType = "QR"
)

const DefaultCategory = "Others"

// Label is the human-facing name of the type.
func (t TransactionType) Label() string {
	switch t {
	case TypeTopUp:
		return "Top Up"
	case TypeTransfer:
		return "Transfer"
	case TypeQR:
		return "QR Payment"
	default:
		if t == "" {
			return "-"
		}
		return string(t)
	}
}

// Party is one side of a transfer.
type Party struct {
	ID            ID     `json:"id"`
	Fullname      string `json:"fullname"`
	AccountNumber string `json:"accountNumber,omitempty"`
}

// DisplayName returns the party name or "-" when the API sent none.
func (p *Party) DisplayName() string {
	if p == nil || strings.TrimSpace(p.Fullname) == "" {
		return "-"
	}
	return p.Fullname
}

// Transaction is a record authored by the wallet API. The client never
// modifies one; derived display values live in separate view models.
type Transaction struct {
	ID              ID              `json:"id"`
	TransactionDate Timestamp       `json:"transactionDate"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category,omitempty"`
	Description     string          `json:"description,omitempty"`
	Sender          *Party          `json:"sender,omitempty"`
	Recipient       *Party          `json:"recipient,omitempty"`
}

// CategoryOrDefault returns the category, falling back to "Others".
func (t Transaction) CategoryOrDefault() string {
	if c := strings.TrimSpace(t.Category); c != "" {
		return c
	}
	return DefaultCategory
}

// TransactionPage is one page of GET /transactions.
type TransactionPage struct {
	Content    []Transaction `json:"content"`
	TotalPages int           `json:"totalPages"`
}

// UnmarshalJSON accepts {"content": [...]} and {"data": [...]} pages as well as
// a bare array. TotalPages is never below 1.
func (p *TransactionPage) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*p = TransactionPage{TotalPages: 1}
		return nil
	}

	if b[0] == '[' {
		var items []Transaction
		if err := json.Unmarshal(b, &items); err != nil {
			return fmt.Errorf("failed to decode transaction list: %w", err)
		}
		*p = TransactionPage{Content: items, TotalPages: 1}
		return nil
	}

	var raw struct {
		Content    []Transaction `json:"content"`
		Data       []Transaction `json:"data"`
		TotalPages int           `json:"totalPages"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("failed to decode transaction page: %w", err)
	}

	items := raw.Content
	if items == nil {
		items = raw.Data
	}

	*p = TransactionPage{Content: items, TotalPages: raw.TotalPages}
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	return nil
}
