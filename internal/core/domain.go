package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DefaultCategoryColor is used wherever a category has no color of its own.
const DefaultCategoryColor = "#8884d8"

type (
	// TransactionType discriminates income from expense records. The sign of
	// an amount is implied by the type; amounts are never stored negative.
	TransactionType string

	// Transaction is a single income or expense event.
	Transaction struct {
		ID         string          `json:"id"`
		Date       string          `json:"date"` // YYYY-MM-DD, no timezone
		Amount     Money           `json:"amount"`
		CategoryID string          `json:"categoryId"`
		Type       TransactionType `json:"type"`
		Note       string          `json:"note,omitempty"`
	}

	// Category classifies transactions. Type is immutable in practice:
	// changing it would orphan budgets and transactions that reference it.
	Category struct {
		ID    string          `json:"id"`
		Name  string          `json:"name"`
		Type  TransactionType `json:"type"`
		Color string          `json:"color,omitempty"`
		Emoji string          `json:"emoji,omitempty"`
	}

	// Budget is a monthly spending limit for one expense category. Its ID is
	// the deterministic composite categoryId + "_" + period, which guarantees
	// at most one budget per category per period.
	Budget struct {
		ID         string `json:"id"`
		CategoryID string `json:"categoryId"`
		Period     Period `json:"period"`
		Amount     Money  `json:"amount"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidPeriod = errors.New("invalid period")
	ErrEmptyName     = errors.New("empty category name")
	ErrDuplicateName = errors.New("category name already in use")
	ErrMissingField  = errors.New("missing required field")
	ErrNotFound      = errors.New("not found")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// ValidateDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := ValidateDate(t.Date); err != nil {
		return err
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return ErrMissingField
	}
	if len(t.Note) > 500 {
		return errors.New("note too long (max 500 characters)")
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > 100 {
		return errors.New("category name too long (max 100 characters)")
	}
	if !c.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

// DisplayColor returns the category color, falling back to the default.
func (c Category) DisplayColor() string {
	if strings.TrimSpace(c.Color) == "" {
		return DefaultCategoryColor
	}
	return c.Color
}

// BudgetID builds the composite budget identity for a category and period.
func BudgetID(categoryID string, period Period) string {
	return categoryID + "_" + string(period)
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.CategoryID) == "" {
		return ErrMissingField
	}
	if err := b.Period.Validate(); err != nil {
		return err
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	return nil
}
