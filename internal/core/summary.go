package core

// CategorySpending is one slice of the per-category expense breakdown for a
// period, carrying the display metadata charts need.
type CategorySpending struct {
	Name  string `json:"name"`
	Value Money  `json:"value"`
	Color string `json:"color"`
}

// BudgetSummary aggregates budget utilization for a period, restricted to
// expense categories that have a positive budget for that period.
type BudgetSummary struct {
	TotalBudgeted         Money   `json:"totalBudgeted"`
	TotalSpent            Money   `json:"totalSpentOnBudgetedCategories"`
	OverallUtilization    float64 `json:"overallUtilization"` // percent, one decimal
	CategoriesOver        int     `json:"categoriesOver"`
	CategoriesUnder       int     `json:"categoriesUnder"`
	CategoriesOnBudget    int     `json:"categoriesOnBudget"`
	BudgetedCategoryCount int     `json:"budgetedCategoryCount"`
}

// TrendPoint is one month of the spending trend series.
type TrendPoint struct {
	Period        Period `json:"name"`
	TotalExpenses Money  `json:"totalExpenses"`
}

// Snapshot is a point-in-time copy of the three collections plus the store
// generation it was taken at. The aggregation engine only ever reads
// snapshots; it never touches the store directly.
type Snapshot struct {
	Generation   uint64
	Transactions []Transaction
	Categories   []Category
	Budgets      []Budget
}
