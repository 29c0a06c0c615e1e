package models

import "time"

// Product represents a tracked consumable item in the inventory.
// Dates are calendar dates, normalized to midnight UTC.
type Product struct {
	ID                    int        `json:"id"`
	Name                  string     `json:"name"`
	Quantity              int        `json:"quantity"`
	ExpirationDate        time.Time  `json:"expiration_date"`
	ReminderFrequencyDays int        `json:"reminder_frequency"`
	MinimumStock          int        `json:"minimum_stock"`
	LastReminder          *time.Time `json:"last_reminder,omitempty"`
}
