// Package report derives every reporting figure from a store snapshot:
// period totals, per-category spending, budget utilization, and the monthly
// trend series.
//
// All functions are pure over their inputs and never fail: missing or
// dangling references degrade to zero or drop out of the result, so a single
// bad record can never blank an entire report.
package report

import (
	"math"
	"sort"
	"time"

	"budgetto/internal/core"
)

// ActualSpending sums expense transactions for one category inside a period.
// Returns zero when nothing matches.
func ActualSpending(snap core.Snapshot, categoryID string, period core.Period) core.Money {
	var total core.Money
	for _, tx := range snap.Transactions {
		if tx.Type == core.Expense && tx.CategoryID == categoryID && period.Contains(tx.Date) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalIncome sums income transactions whose date falls in the period.
func TotalIncome(snap core.Snapshot, period core.Period) core.Money {
	return totalByType(snap, core.Income, period)
}

// TotalExpenses sums expense transactions whose date falls in the period.
func TotalExpenses(snap core.Snapshot, period core.Period) core.Money {
	return totalByType(snap, core.Expense, period)
}

func totalByType(snap core.Snapshot, typ core.TransactionType, period core.Period) core.Money {
	var total core.Money
	for _, tx := range snap.Transactions {
		if tx.Type == typ && period.Contains(tx.Date) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// SpendingByCategory groups the period's expense transactions by category
// and attaches display metadata, sorted by value descending. Ties keep
// encounter order. Transactions whose category no longer exists are dropped:
// the join is deliberately lenient so a deleted category degrades a chart
// instead of erroring it.
func SpendingByCategory(snap core.Snapshot, period core.Period) []core.CategorySpending {
	catByID := make(map[string]core.Category, len(snap.Categories))
	for _, c := range snap.Categories {
		catByID[c.ID] = c
	}

	sums := make(map[string]core.Money)
	var order []string // first-seen order of category ids, for stable ties
	for _, tx := range snap.Transactions {
		if tx.Type != core.Expense || !period.Contains(tx.Date) {
			continue
		}
		if _, ok := catByID[tx.CategoryID]; !ok {
			continue
		}
		if _, seen := sums[tx.CategoryID]; !seen {
			order = append(order, tx.CategoryID)
		}
		sums[tx.CategoryID] = sums[tx.CategoryID].Add(tx.Amount)
	}

	out := make([]core.CategorySpending, 0, len(order))
	for _, id := range order {
		cat := catByID[id]
		out = append(out, core.CategorySpending{
			Name:  cat.Name,
			Value: sums[id],
			Color: cat.DisplayColor(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.Cents > out[j].Value.Cents
	})
	return out
}

// OverallBudgetSummary aggregates utilization across the expense categories
// that carry a positive budget for the period. Classification against the
// budget uses strict comparison; utilization is a percentage rounded to one
// decimal, zero when nothing is budgeted.
func OverallBudgetSummary(snap core.Snapshot, period core.Period) core.BudgetSummary {
	budgetByID := make(map[string]core.Budget, len(snap.Budgets))
	for _, b := range snap.Budgets {
		budgetByID[b.ID] = b
	}

	var summary core.BudgetSummary
	for _, cat := range snap.Categories {
		if cat.Type != core.Expense {
			continue
		}
		budget, ok := budgetByID[core.BudgetID(cat.ID, period)]
		if !ok || budget.Amount.Cents <= 0 {
			continue
		}
		summary.BudgetedCategoryCount++
		summary.TotalBudgeted = summary.TotalBudgeted.Add(budget.Amount)

		actual := ActualSpending(snap, cat.ID, period)
		summary.TotalSpent = summary.TotalSpent.Add(actual)

		switch {
		case actual.Cents > budget.Amount.Cents:
			summary.CategoriesOver++
		case actual.Cents < budget.Amount.Cents:
			summary.CategoriesUnder++
		default:
			summary.CategoriesOnBudget++
		}
	}

	if summary.TotalBudgeted.Cents > 0 {
		ratio := 100 * float64(summary.TotalSpent.Cents) / float64(summary.TotalBudgeted.Cents)
		summary.OverallUtilization = math.Round(ratio*10) / 10
	}
	return summary
}

// MonthlySpendingTrend returns exactly months entries ending with the month
// of now, oldest first. The clock is a parameter so callers own "current
// month" and tests can pin it.
func MonthlySpendingTrend(snap core.Snapshot, months int, now time.Time) []core.TrendPoint {
	periods := core.TrailingPeriods(now, months)
	out := make([]core.TrendPoint, 0, len(periods))
	for _, p := range periods {
		out = append(out, core.TrendPoint{
			Period:        p,
			TotalExpenses: TotalExpenses(snap, p),
		})
	}
	return out
}
