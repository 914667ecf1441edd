package listing

import (
	"strings"

	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/utils"
)

const DateLayout = "02 Jan 2006 15:04"

// Row is the display form of one transaction for one viewer.
type Row struct {
	ID           string
	Date         string
	Type         string
	Counterparty string
	Category     string
	Description  string
	Amount       string
	Direction    service.Direction
	Transaction  model.Transaction
}

func (r Row) IsCredit() bool {
	return r.Direction == service.DirectionCredit
}

// Presenter derives rows from transactions. It never modifies them.
type Presenter struct {
	classifier *service.Classifier
	formatter  *utils.Formatter
	viewer     model.ID
}

func NewPresenter(classifier *service.Classifier, formatter *utils.Formatter, viewer model.ID) *Presenter {
	return &Presenter{classifier: classifier, formatter: formatter, viewer: viewer}
}

func (p *Presenter) Row(tx model.Transaction) Row {
	c := p.classifier.Classify(tx, p.viewer)

	date := "-"
	if !tx.TransactionDate.IsZero() {
		date = tx.TransactionDate.Format(DateLayout)
	}

	description := strings.TrimSpace(tx.Description)
	if description == "" {
		description = "-"
	}

	return Row{
		ID:           tx.ID.String(),
		Date:         date,
		Type:         tx.TransactionType.Label(),
		Counterparty: c.Counterparty,
		Category:     tx.CategoryOrDefault(),
		Description:  description,
		Amount:       p.formatter.FormatSigned(tx.Amount, c.Direction.Sign()),
		Direction:    c.Direction,
		Transaction:  tx,
	}
}

func (p *Presenter) Rows(txs []model.Transaction) []Row {
	rows := make([]Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, p.Row(tx))
	}
	return rows
}
