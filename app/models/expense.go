package models

import "time"

// Expense represents a single expense record owned by one user.
type Expense struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        float64         `json:"amount"`
	Date          Date            `json:"date"`
	Category      ExpenseCategory `json:"category"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Notes         string          `json:"notes"`
	UserID        string          `json:"userId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
