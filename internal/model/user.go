package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrentUser is the locally cached snapshot of the signed-in identity.
type CurrentUser struct {
	ID            ID              `json:"id"`
	Fullname      string          `json:"fullname"`
	Username      string          `json:"username,omitempty"`
	Email         string          `json:"email,omitempty"`
	PhoneNumber   string          `json:"phoneNumber,omitempty"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	AvatarURL     string          `json:"avatarUrl,omitempty"`
}

func (u *CurrentUser) DisplayName() string {
	if u == nil {
		return "-"
	}
	if name := strings.TrimSpace(u.Fullname); name != "" {
		return name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// Wallet is the balance-holding account of a user.
type Wallet struct {
	ID            ID              `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	User          *Party          `json:"user,omitempty"`
}

// OwnerName returns the wallet owner's name for recipient pickers.
func (w Wallet) OwnerName() string {
	return w.User.DisplayName()
}
