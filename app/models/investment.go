package models

import "time"

// Investment represents a single investment record owned by one user.
// Returns is a free-text rate such as "12% p.a.".
type Investment struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Amount    float64        `json:"amount"`
	Date      Date           `json:"date"`
	Type      InvestmentType `json:"type"`
	Returns   string         `json:"returns"`
	Notes     string         `json:"notes"`
	UserID    string         `json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
