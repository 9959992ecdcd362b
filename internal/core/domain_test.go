package core

import (
	"testing"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:         "t1",
		Date:       "2024-07-15",
		Amount:     Money{Cents: 5000},
		CategoryID: "cat_food_expense",
		Type:       Expense,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Date: "2024-13-01", Amount: Money{Cents: 1}, CategoryID: "c", Type: Expense},
		{Date: "not-a-date", Amount: Money{Cents: 1}, CategoryID: "c", Type: Expense},
		{Date: "2024-07-15", Amount: Money{Cents: 0}, CategoryID: "c", Type: Expense},
		{Date: "2024-07-15", Amount: Money{Cents: -1}, CategoryID: "c", Type: Income},
		{Date: "2024-07-15", Amount: Money{Cents: 1}, CategoryID: "", Type: Expense},
		{Date: "2024-07-15", Amount: Money{Cents: 1}, CategoryID: "c", Type: "transfer"},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestCategoryValidate(t *testing.T) {
	if err := (Category{Name: "Groceries", Type: Expense}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Category{Name: "  ", Type: Expense}).Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := (Category{Name: "Rent", Type: "savings"}).Validate(); err == nil {
		t.Fatalf("expected error for bad type")
	}
}

func TestCategoryDisplayColor(t *testing.T) {
	if got := (Category{Color: "#FFD700"}).DisplayColor(); got != "#FFD700" {
		t.Fatalf("got %q", got)
	}
	if got := (Category{}).DisplayColor(); got != DefaultCategoryColor {
		t.Fatalf("got %q, want default", got)
	}
}

func TestBudgetID(t *testing.T) {
	if got := BudgetID("cat_food_expense", "2024-07"); got != "cat_food_expense_2024-07" {
		t.Fatalf("got %q", got)
	}
}

func TestBudgetValidate(t *testing.T) {
	good := Budget{CategoryID: "c", Period: "2024-07", Amount: Money{Cents: 10000}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bads := []Budget{
		{Period: "2024-07", Amount: Money{Cents: 1}},
		{CategoryID: "c", Period: "2024-7", Amount: Money{Cents: 1}},
		{CategoryID: "c", Period: "2024-07", Amount: Money{Cents: 0}},
	}
	for i, b := range bads {
		if err := b.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
