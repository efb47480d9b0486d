package models

import "time"

// Settings holds the per-user display preferences returned with every
// auth/profile response.
type Settings struct {
	Currency   string     `json:"currency"`
	Theme      Theme      `json:"theme"`
	DateFormat DateFormat `json:"dateFormat"`
}

// DefaultSettings are applied at registration.
func DefaultSettings() Settings {
	return Settings{
		Currency:   "₹",
		Theme:      ThemeLight,
		DateFormat: DateFormatDMY,
	}
}

// User represents an account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
