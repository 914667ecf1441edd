package service

import (
	"github.com/hance08/dompet/internal/model"
	"github.com/shopspring/decimal"
)

// Palette is the fixed chart palette, assigned in label order.
var Palette = []string{
	"#A8DADC", "#457B9D", "#F4A261", "#E76F51", "#2A9D8F",
	"#F7B801", "#FF9F1C", "#9C89B8", "#00A896", "#F94144",
}

const (
	LabelTopUp      = "Top Up"
	LabelSalary     = "Salary"
	LabelTransferIn = "Transfer In"
)

// Series is one chart: Labels, Values and Colors share an index.
type Series struct {
	Name   string
	Labels []string
	Values []decimal.Decimal
	Colors []string
}

func (s Series) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.Values {
		total = total.Add(v)
	}
	return total
}

func (s Series) Len() int {
	return len(s.Labels)
}

type AggregatedSeries struct {
	Income  Series
	Expense Series
}

// Aggregate groups txs into income and expense buckets by category. Labels
// keep first-appearance order. txs is not modified.
func Aggregate(c *Classifier, txs []model.Transaction, viewer model.ID) AggregatedSeries {
	income := newBucketSet("Income")
	expense := newBucketSet("Expenses")

	for _, tx := range txs {
		if c.Classify(tx, viewer).IsCredit() {
			income.add(incomeLabel(tx), tx.Amount)
		} else {
			expense.add(tx.CategoryOrDefault(), tx.Amount)
		}
	}

	return AggregatedSeries{
		Income:  income.series(),
		Expense: expense.series(),
	}
}

func incomeLabel(tx model.Transaction) string {
	switch category := tx.CategoryOrDefault(); category {
	case LabelTopUp, LabelSalary:
		return category
	default:
		return LabelTransferIn
	}
}

type bucketSet struct {
	name   string
	order  []string
	totals map[string]decimal.Decimal
}

func newBucketSet(name string) *bucketSet {
	return &bucketSet{name: name, totals: make(map[string]decimal.Decimal)}
}

func (b *bucketSet) add(label string, amount decimal.Decimal) {
	current, ok := b.totals[label]
	if !ok {
		b.order = append(b.order, label)
		current = decimal.Zero
	}
	b.totals[label] = current.Add(amount)
}

func (b *bucketSet) series() Series {
	s := Series{
		Name:   b.name,
		Labels: make([]string, 0, len(b.order)),
		Values: make([]decimal.Decimal, 0, len(b.order)),
		Colors: make([]string, 0, len(b.order)),
	}
	for i, label := range b.order {
		s.Labels = append(s.Labels, label)
		s.Values = append(s.Values, b.totals[label])
		s.Colors = append(s.Colors, Palette[i%len(Palette)])
	}
	return s
}
