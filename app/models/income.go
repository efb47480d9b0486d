package models

import "time"

// Income represents a single income record owned by one user.
type Income struct {
	ID        string         `json:"id"`
	Source    string         `json:"source"`
	Amount    float64        `json:"amount"`
	Date      Date           `json:"date"`
	Category  IncomeCategory `json:"category"`
	Notes     string         `json:"notes"`
	UserID    string         `json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
