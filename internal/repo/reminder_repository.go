package repo

import (
	"time"

	"github.com/rogerio-castellano/consumables-tracker/internal/models"
)

// ReminderRepository defines the interface for reminder data operations.
// Reminders are created only by the evaluation engine and never mutated
// afterwards except for the sent flag.
type ReminderRepository interface {
	Create(productID int, message string, dueDate time.Time) (models.Reminder, error)
	// GetUnsent returns reminders whose delivery has not been attempted,
	// in insertion order.
	GetUnsent() ([]models.Reminder, error)
	GetByProductID(productID int) ([]models.Reminder, error)
	MarkSent(id int) error
}
