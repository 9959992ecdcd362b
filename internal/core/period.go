package core

import (
	"strings"
	"time"
)

// Period identifies a calendar month in YYYY-MM form. It is the aggregation
// window for budgets and all reporting.
type Period string

func (p Period) Validate() error {
	if _, err := time.Parse("2006-01", string(p)); err != nil {
		return ErrInvalidPeriod
	}
	return nil
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period(t.Format("2006-01"))
}

// ParsePeriod validates and returns a period from its string form.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.TrimSpace(s))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Contains reports whether the YYYY-MM-DD date string falls inside the
// period. Malformed dates never match; a bad record must not poison an
// aggregate, it simply drops out of every period filter.
func (p Period) Contains(date string) bool {
	if ValidateDate(date) != nil {
		return false
	}
	return strings.HasPrefix(date, string(p))
}

// TrailingPeriods returns exactly n periods ending with the month of now,
// oldest first. Month arithmetic goes through time.AddDate anchored on the
// first of the month, so year boundaries roll over correctly.
func TrailingPeriods(now time.Time, n int) []Period {
	if n <= 0 {
		return nil
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]Period, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, PeriodOf(first.AddDate(0, -i, 0)))
	}
	return out
}
