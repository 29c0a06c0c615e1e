package models

import "time"

// Reminder is an alert generated for a product. The product reference is weak:
// the owning product may be deleted while the reminder remains.
type Reminder struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	Message   string    `json:"message"`
	DueDate   time.Time `json:"due_date"`
	Sent      bool      `json:"sent"`
}
