package service

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/hance08/dompet/internal/model"
	"github.com/shopspring/decimal"
)

func sampleHistory() []model.Transaction {
	viewer := model.Party{ID: "1", Fullname: "Me"}
	other := model.Party{ID: "2", Fullname: "Other"}

	food := transfer("1", viewer, other, "25000")
	food.Category = "Food"
	salary := transfer("2", other, viewer, "5000000")
	salary.Category = "Salary"
	gift := transfer("3", other, viewer, "100000")
	gift.Category = "Entertainment"
	uncategorised := transfer("4", viewer, other, "10000.50")
	food2 := transfer("5", viewer, other, "15000")
	food2.Category = "Food"

	topUp := model.Transaction{ID: "6", TransactionType: model.TypeTopUp, Category: "Top Up", Amount: amount("200000")}

	return []model.Transaction{food, salary, gift, uncategorised, topUp, food2}
}

func TestAggregate_Buckets(t *testing.T) {
	got := Aggregate(NewClassifier(PolicySender), sampleHistory(), "1")

	if want := []string{"Salary", "Transfer In", "Top Up"}; !reflect.DeepEqual(got.Income.Labels, want) {
		t.Errorf("income labels = %v, want %v", got.Income.Labels, want)
	}
	if want := []string{"Food", "Others"}; !reflect.DeepEqual(got.Expense.Labels, want) {
		t.Errorf("expense labels = %v, want %v", got.Expense.Labels, want)
	}
	if !got.Expense.Values[0].Equal(amount("40000")) {
		t.Errorf("Food total = %s, want 40000", got.Expense.Values[0])
	}
	if !got.Expense.Values[1].Equal(amount("10000.50")) {
		t.Errorf("Others total = %s, want 10000.50", got.Expense.Values[1])
	}
	if got.Income.Colors[0] != Palette[0] || got.Expense.Colors[1] != Palette[1] {
		t.Errorf("colors = %v / %v", got.Income.Colors, got.Expense.Colors)
	}
}

func TestAggregate_SumConserved(t *testing.T) {
	txs := sampleHistory()
	got := Aggregate(NewClassifier(PolicySender), txs, "1")

	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	if sum := got.Income.Total().Add(got.Expense.Total()); !sum.Equal(total) {
		t.Errorf("income+expense = %s, want %s", sum, total)
	}
}

func TestAggregate_IdempotentAndPure(t *testing.T) {
	txs := sampleHistory()
	before := fmt.Sprintf("%+v", txs)

	c := NewClassifier(PolicySender)
	first := Aggregate(c, txs, "1")
	second := Aggregate(c, txs, "1")

	if !reflect.DeepEqual(first, second) {
		t.Error("aggregating twice gave different results")
	}
	if after := fmt.Sprintf("%+v", txs); after != before {
		t.Error("input transactions were modified")
	}
}

func TestAggregate_PaletteCycles(t *testing.T) {
	me := model.Party{ID: "1"}
	var txs []model.Transaction
	for i := 0; i < 12; i++ {
		tx := transfer(fmt.Sprint(i), me, model.Party{ID: "2"}, "1")
		tx.Category = fmt.Sprintf("cat-%02d", i)
		txs = append(txs, tx)
	}

	got := Aggregate(NewClassifier(PolicySender), txs, "1")
	if got.Expense.Len() != 12 {
		t.Fatalf("expense buckets = %d", got.Expense.Len())
	}
	if got.Expense.Colors[10] != Palette[0] || got.Expense.Colors[11] != Palette[1] {
		t.Errorf("palette did not cycle: %v", got.Expense.Colors[10:])
	}
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(NewClassifier(PolicySender), nil, "1")
	if got.Income.Len() != 0 || got.Expense.Len() != 0 {
		t.Errorf("expected empty series, got %+v", got)
	}
	if !got.Income.Total().IsZero() {
		t.Error("empty total should be zero")
	}
}
