package models

import (
	"regexp"
	"time"
)

// Budget represents a spending plan for one category in one month.
// At most one budget may exist per (user, category, month); the storage
// layer backs this with a unique index.
type Budget struct {
	ID           string          `json:"id"`
	Category     ExpenseCategory `json:"category"`
	Month        string          `json:"month"`
	BudgetAmount float64         `json:"budgetAmount"`
	ActualAmount float64         `json:"actualAmount"`
	Notes        string          `json:"notes"`
	UserID       string          `json:"userId"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

var monthPattern = regexp.MustCompile(`^(January|February|March|April|May|June|July|August|September|October|November|December) [0-9]{4}$`)

// ValidMonth reports whether s is in the form "June 2023".
func ValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}
