package report

import (
	"testing"
	"time"

	"budgetto/internal/core"
)

func cents(n int64) core.Money { return core.Money{Cents: n} }

func testSnapshot() core.Snapshot {
	return core.Snapshot{
		Categories: []core.Category{
			{ID: "cat_food_expense", Name: "Groceries", Type: core.Expense, Color: "#FFD700"},
			{ID: "cat_transport_expense", Name: "Transport", Type: core.Expense, Color: "#87CEFA"},
			{ID: "cat_nocolor_expense", Name: "Misc", Type: core.Expense},
			{ID: "cat_salary_income", Name: "Salary", Type: core.Income, Color: "#ADFF2F"},
		},
		Transactions: []core.Transaction{
			{ID: "t1", Date: "2024-07-01", Amount: cents(5000), CategoryID: "cat_food_expense", Type: core.Expense},
			{ID: "t2", Date: "2024-07-20", Amount: cents(3000), CategoryID: "cat_food_expense", Type: core.Expense},
			{ID: "t3", Date: "2024-07-05", Amount: cents(1500), CategoryID: "cat_transport_expense", Type: core.Expense},
			{ID: "t4", Date: "2024-07-10", Amount: cents(250000), CategoryID: "cat_salary_income", Type: core.Income},
			{ID: "t5", Date: "2024-06-28", Amount: cents(9999), CategoryID: "cat_food_expense", Type: core.Expense},
			{ID: "t6", Date: "2024-07-12", Amount: cents(700), CategoryID: "cat_deleted", Type: core.Expense},
			{ID: "t7", Date: "garbage", Amount: cents(12345), CategoryID: "cat_food_expense", Type: core.Expense},
		},
		Budgets: []core.Budget{
			{ID: "cat_food_expense_2024-07", CategoryID: "cat_food_expense", Period: "2024-07", Amount: cents(10000)},
		},
	}
}

func TestActualSpending(t *testing.T) {
	snap := testSnapshot()

	// 50.00 + 30.00 in July; June record, income, other categories,
	// dangling reference, and the malformed date all stay out.
	if got := ActualSpending(snap, "cat_food_expense", "2024-07"); got.Cents != 8000 {
		t.Fatalf("ActualSpending = %d, want 8000", got.Cents)
	}
	if got := ActualSpending(snap, "cat_food_expense", "2024-05"); got.Cents != 0 {
		t.Fatalf("empty period = %d, want 0", got.Cents)
	}
	if got := ActualSpending(snap, "cat_unknown", "2024-07"); got.Cents != 0 {
		t.Fatalf("unknown category = %d, want 0", got.Cents)
	}
}

func TestActualSpendingAdditive(t *testing.T) {
	snap := testSnapshot()
	before := ActualSpending(snap, "cat_food_expense", "2024-07")

	// Unrelated records (other category, other type, other period) must
	// never change the result.
	snap.Transactions = append(snap.Transactions,
		core.Transaction{ID: "x1", Date: "2024-07-15", Amount: cents(4000), CategoryID: "cat_transport_expense", Type: core.Expense},
		core.Transaction{ID: "x2", Date: "2024-07-15", Amount: cents(4000), CategoryID: "cat_food_expense", Type: core.Income},
		core.Transaction{ID: "x3", Date: "2024-08-15", Amount: cents(4000), CategoryID: "cat_food_expense", Type: core.Expense},
	)
	if got := ActualSpending(snap, "cat_food_expense", "2024-07"); got.Cents != before.Cents {
		t.Fatalf("unrelated transactions changed spending: %d -> %d", before.Cents, got.Cents)
	}
}

func TestPeriodTotals(t *testing.T) {
	snap := testSnapshot()
	if got := TotalIncome(snap, "2024-07"); got.Cents != 250000 {
		t.Fatalf("TotalIncome = %d", got.Cents)
	}
	// 8000 food + 1500 transport + 700 dangling-category expense.
	if got := TotalExpenses(snap, "2024-07"); got.Cents != 10200 {
		t.Fatalf("TotalExpenses = %d", got.Cents)
	}
	if got := TotalIncome(snap, "2020-01"); got.Cents != 0 {
		t.Fatalf("empty period income = %d", got.Cents)
	}
	if got := TotalExpenses(snap, "2020-01"); got.Cents != 0 {
		t.Fatalf("empty period expenses = %d", got.Cents)
	}
}

func TestSpendingByCategory(t *testing.T) {
	snap := testSnapshot()
	got := SpendingByCategory(snap, "2024-07")

	// Dangling cat_deleted dropped; sorted by value descending.
	if len(got) != 2 {
		t.Fatalf("got %d rows: %+v", len(got), got)
	}
	if got[0].Name != "Groceries" || got[0].Value.Cents != 8000 || got[0].Color != "#FFD700" {
		t.Fatalf("row 0 = %+v", got[0])
	}
	if got[1].Name != "Transport" || got[1].Value.Cents != 1500 {
		t.Fatalf("row 1 = %+v", got[1])
	}
}

func TestSpendingByCategoryDefaultColorAndStableTies(t *testing.T) {
	snap := testSnapshot()
	snap.Transactions = append(snap.Transactions,
		core.Transaction{ID: "m1", Date: "2024-07-03", Amount: cents(1500), CategoryID: "cat_nocolor_expense", Type: core.Expense},
	)
	got := SpendingByCategory(snap, "2024-07")
	if len(got) != 3 {
		t.Fatalf("got %d rows", len(got))
	}
	// Transport (t3) was encountered before Misc (m1); equal values keep
	// that order.
	if got[1].Name != "Transport" || got[2].Name != "Misc" {
		t.Fatalf("tie order: %q, %q", got[1].Name, got[2].Name)
	}
	if got[2].Color != core.DefaultCategoryColor {
		t.Fatalf("fallback color = %q", got[2].Color)
	}
}

func TestOverallBudgetSummary(t *testing.T) {
	snap := testSnapshot()
	got := OverallBudgetSummary(snap, "2024-07")

	if got.TotalBudgeted.Cents != 10000 {
		t.Fatalf("TotalBudgeted = %d", got.TotalBudgeted.Cents)
	}
	if got.TotalSpent.Cents != 8000 {
		t.Fatalf("TotalSpent = %d", got.TotalSpent.Cents)
	}
	if got.OverallUtilization != 80.0 {
		t.Fatalf("OverallUtilization = %v", got.OverallUtilization)
	}
	if got.CategoriesUnder != 1 || got.CategoriesOver != 0 || got.CategoriesOnBudget != 0 {
		t.Fatalf("classification = %+v", got)
	}
	if got.BudgetedCategoryCount != 1 {
		t.Fatalf("BudgetedCategoryCount = %d", got.BudgetedCategoryCount)
	}
}

func TestOverallBudgetSummaryClassification(t *testing.T) {
	snap := testSnapshot()
	snap.Budgets = append(snap.Budgets,
		core.Budget{ID: "cat_transport_expense_2024-07", CategoryID: "cat_transport_expense", Period: "2024-07", Amount: cents(1500)},
		core.Budget{ID: "cat_nocolor_expense_2024-07", CategoryID: "cat_nocolor_expense", Period: "2024-07", Amount: cents(100)},
	)
	got := OverallBudgetSummary(snap, "2024-07")

	// food under (8000 < 10000), transport exactly on (1500 == 1500),
	// misc over is impossible here: no spend, 0 < 100 so under.
	if got.CategoriesUnder != 2 || got.CategoriesOnBudget != 1 || got.CategoriesOver != 0 {
		t.Fatalf("classification = %+v", got)
	}
	if got.BudgetedCategoryCount != 3 {
		t.Fatalf("BudgetedCategoryCount = %d", got.BudgetedCategoryCount)
	}
}

func TestOverallBudgetSummaryNoBudgets(t *testing.T) {
	snap := testSnapshot()
	snap.Budgets = nil
	got := OverallBudgetSummary(snap, "2024-07")
	if got.OverallUtilization != 0 {
		t.Fatalf("utilization = %v, want 0 with nothing budgeted", got.OverallUtilization)
	}
	if got.TotalBudgeted.Cents != 0 || got.TotalSpent.Cents != 0 || got.BudgetedCategoryCount != 0 {
		t.Fatalf("summary = %+v", got)
	}
}

func TestOverallBudgetSummaryUtilizationRounding(t *testing.T) {
	snap := core.Snapshot{
		Categories: []core.Category{
			{ID: "c1", Name: "A", Type: core.Expense},
		},
		Transactions: []core.Transaction{
			{ID: "t1", Date: "2024-07-01", Amount: cents(1000), CategoryID: "c1", Type: core.Expense},
		},
		Budgets: []core.Budget{
			{ID: "c1_2024-07", CategoryID: "c1", Period: "2024-07", Amount: cents(3000)},
		},
	}
	got := OverallBudgetSummary(snap, "2024-07")
	if got.OverallUtilization != 33.3 {
		t.Fatalf("utilization = %v, want 33.3", got.OverallUtilization)
	}
}

func TestMonthlySpendingTrend(t *testing.T) {
	snap := testSnapshot()
	now := time.Date(2024, time.July, 25, 0, 0, 0, 0, time.UTC)

	got := MonthlySpendingTrend(snap, 3, now)
	if len(got) != 3 {
		t.Fatalf("got %d points", len(got))
	}
	wantPeriods := []core.Period{"2024-05", "2024-06", "2024-07"}
	wantTotals := []int64{0, 9999, 10200}
	for i := range got {
		if got[i].Period != wantPeriods[i] {
			t.Fatalf("point %d period = %q, want %q", i, got[i].Period, wantPeriods[i])
		}
		if got[i].TotalExpenses.Cents != wantTotals[i] {
			t.Fatalf("point %d total = %d, want %d", i, got[i].TotalExpenses.Cents, wantTotals[i])
		}
	}
}

func TestMonthlySpendingTrendYearBoundary(t *testing.T) {
	now := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	got := MonthlySpendingTrend(core.Snapshot{}, 6, now)
	want := []core.Period{"2024-10", "2024-11", "2024-12", "2025-01", "2025-02", "2025-03"}
	if len(got) != 6 {
		t.Fatalf("got %d points", len(got))
	}
	for i := range want {
		if got[i].Period != want[i] {
			t.Fatalf("point %d = %q, want %q", i, got[i].Period, want[i])
		}
		if got[i].TotalExpenses.Cents != 0 {
			t.Fatalf("point %d total = %d, want 0", i, got[i].TotalExpenses.Cents)
		}
	}
}

func TestMonthlySpendingTrendSingleMonth(t *testing.T) {
	now := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	snap := core.Snapshot{
		Transactions: []core.Transaction{
			{ID: "t1", Date: "2024-07-10", Amount: cents(2000), CategoryID: "c", Type: core.Expense},
		},
	}
	got := MonthlySpendingTrend(snap, 1, now)
	if len(got) != 1 || got[0].Period != "2024-07" || got[0].TotalExpenses.Cents != 2000 {
		t.Fatalf("got %+v", got)
	}
}
