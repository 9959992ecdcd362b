package store

import "budgetto/internal/core"

// placeholderEmoji decorates repaired category records that have no match in
// the default set.
const placeholderEmoji = "🏷️"

// defaultCategories is seeded on the first-ever category access. The ids are
// stable so budgets and transactions created against a fresh install keep
// working after re-seeding an emptied data directory.
func defaultCategories() []core.Category {
	return []core.Category{
		{ID: "cat_food_expense", Name: "Groceries", Type: core.Expense, Color: "#FFD700", Emoji: "🛒"},
		{ID: "cat_salary_income", Name: "Salary", Type: core.Income, Color: "#ADFF2F", Emoji: "💰"},
		{ID: "cat_transport_expense", Name: "Transport", Type: core.Expense, Color: "#87CEFA", Emoji: "🚌"},
		{ID: "cat_utilities_expense", Name: "Utilities", Type: core.Expense, Color: "#FF8C00", Emoji: "💡"},
		{ID: "cat_freelance_income", Name: "Freelance", Type: core.Income, Color: "#32CD32", Emoji: "💼"},
		{ID: "cat_entertainment_expense", Name: "Entertainment", Type: core.Expense, Color: "#DB7093", Emoji: "🎬"},
		{ID: "cat_health_expense", Name: "Health", Type: core.Expense, Color: "#FF6347", Emoji: "🩺"},
		{ID: "cat_education_expense", Name: "Education", Type: core.Expense, Color: "#6A5ACD", Emoji: "📚"},
		{ID: "cat_gifts_expense", Name: "Gifts", Type: core.Expense, Color: "#FF69B4", Emoji: "🎁"},
		{ID: "cat_other_expense", Name: "Other", Type: core.Expense, Color: "#A9A9A9", Emoji: "📦"},
	}
}

func defaultEmojiByID() map[string]string {
	defaults := defaultCategories()
	out := make(map[string]string, len(defaults))
	for _, c := range defaults {
		out[c.ID] = c.Emoji
	}
	return out
}
