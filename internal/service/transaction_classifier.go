package service

import (
	"fmt"
	"strings"

	"github.com/hance08/dompet/internal/model"
)

// Direction is how a transaction moved the viewer's balance.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionCredit
	DirectionDebit
)

func (d Direction) String() string {
	switch d {
	case DirectionCredit:
		return "credit"
	case DirectionDebit:
		return "debit"
	default:
		return "unknown"
	}
}

// Sign is +1 for credit, -1 for debit and 0 when unknown.
func (d Direction) Sign() int {
	switch d {
	case DirectionCredit:
		return 1
	case DirectionDebit:
		return -1
	default:
		return 0
	}
}

const NoCounterparty = "-"

type Classification struct {
	Direction    Direction
	Counterparty string
}

func (c Classification) IsCredit() bool {
	return c.Direction == DirectionCredit
}

// NonTransferPolicy decides the direction of TOP_UP and QR records, which
// carry no reliable counterparty.
type NonTransferPolicy string

const (
	// PolicySender debits the viewer only when recorded as the sender.
	PolicySender NonTransferPolicy = "sender"
	// PolicyQRDebit treats QR as a payment and TOP_UP as income.
	PolicyQRDebit NonTransferPolicy = "qr-debit"
	// PolicyCredit treats every non-transfer as income.
	PolicyCredit NonTransferPolicy = "credit"
)

func ParsePolicy(s string) (NonTransferPolicy, error) {
	switch p := NonTransferPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicySender, nil
	case PolicySender, PolicyQRDebit, PolicyCredit:
		return p, nil
	default:
		return "", fmt.Errorf("unknown non-transfer policy %q (use sender, qr-debit or credit)", s)
	}
}

type Classifier struct {
	policy NonTransferPolicy
}

func NewClassifier(policy NonTransferPolicy) *Classifier {
	if policy == "" {
		policy = PolicySender
	}
	return &Classifier{policy: policy}
}

func (c *Classifier) Policy() NonTransferPolicy {
	return c.policy
}

// Classify derives direction and counterparty of tx as seen by viewer. An
// empty viewer yields DirectionUnknown so no amount is ever signed for the
// wrong person.
func (c *Classifier) Classify(tx model.Transaction, viewer model.ID) Classification {
	if viewer.IsZero() {
		return Classification{Direction: DirectionUnknown, Counterparty: NoCounterparty}
	}

	if tx.TransactionType == model.TypeTransfer {
		if isParty(tx.Sender, viewer) {
			return Classification{Direction: DirectionDebit, Counterparty: tx.Recipient.DisplayName()}
		}
		return Classification{Direction: DirectionCredit, Counterparty: tx.Sender.DisplayName()}
	}

	return Classification{Direction: c.nonTransferDirection(tx, viewer), Counterparty: NoCounterparty}
}

func (c *Classifier) nonTransferDirection(tx model.Transaction, viewer model.ID) Direction {
	switch c.policy {
	case PolicyCredit:
		return DirectionCredit
	case PolicyQRDebit:
		if tx.TransactionType == model.TypeQR {
			return DirectionDebit
		}
		return DirectionCredit
	default:
		if isParty(tx.Sender, viewer) {
			return DirectionDebit
		}
		return DirectionCredit
	}
}

func isParty(p *model.Party, viewer model.ID) bool {
	return p != nil && !p.ID.IsZero() && p.ID == viewer
}
