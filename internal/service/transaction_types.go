package service

import (
	"time"

	"github.com/hance08/dompet/internal/model"
	"github.com/shopspring/decimal"
)

// TransferCategories are the categories a transfer can be filed under.
var TransferCategories = []string{"Food", "E-Commerce", "Transfer", "Entertainment"}

type TopUpMethod string

const (
	MethodCreditCard   TopUpMethod = "Credit Card"
	MethodBankTransfer TopUpMethod = "Bank Transfer"
	MethodQRIS         TopUpMethod = "QRIS"
)

var TopUpMethods = []TopUpMethod{MethodCreditCard, MethodBankTransfer, MethodQRIS}

type TransferInput struct {
	RecipientAccountNumber string
	Category               string
	Amount                 decimal.Decimal
	Description            string
}

type TopUpInput struct {
	Method      TopUpMethod
	Amount      decimal.Decimal
	Description string
}

// Receipt summarises a completed money movement.
type Receipt struct {
	TransactionID   model.ID
	TransactionType model.TransactionType
	Amount          decimal.Decimal
	From            string
	To              string
	Method          TopUpMethod
	Category        string
	Description     string
	Balance         decimal.Decimal
	BalanceKnown    bool
	CompletedAt     time.Time
}
