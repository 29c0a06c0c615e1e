package repo

import (
	"time"

	"github.com/rogerio-castellano/consumables-tracker/internal/models"
)

// InMemoryReminderRepository is an in-memory implementation of ReminderRepository.
type InMemoryReminderRepository struct {
	reminders []models.Reminder
	nextID    int
}

// NewInMemoryReminderRepository creates a new instance of InMemoryReminderRepository.
func NewInMemoryReminderRepository() *InMemoryReminderRepository {
	return &InMemoryReminderRepository{
		reminders: []models.Reminder{},
		nextID:    1,
	}
}

func (r *InMemoryReminderRepository) Create(productID int, message string, dueDate time.Time) (models.Reminder, error) {
	rem := models.Reminder{
		ID:        r.nextID,
		ProductID: productID,
		Message:   message,
		DueDate:   dueDate,
	}
	r.nextID++
	r.reminders = append(r.reminders, rem)
	return rem, nil
}

func (r *InMemoryReminderRepository) GetUnsent() ([]models.Reminder, error) {
	var unsent []models.Reminder
	for _, rem := range r.reminders {
		if !rem.Sent {
			unsent = append(unsent, rem)
		}
	}
	return unsent, nil
}

func (r *InMemoryReminderRepository) GetByProductID(productID int) ([]models.Reminder, error) {
	var owned []models.Reminder
	for _, rem := range r.reminders {
		if rem.ProductID == productID {
			owned = append(owned, rem)
		}
	}
	return owned, nil
}

func (r *InMemoryReminderRepository) MarkSent(id int) error {
	for i, rem := range r.reminders {
		if rem.ID == id {
			r.reminders[i].Sent = true
			return nil
		}
	}
	return ErrReminderNotFound
}

// GetAll returns every reminder, sent or not. Used by tests.
func (r *InMemoryReminderRepository) GetAll() []models.Reminder {
	return r.reminders
}

func (r *InMemoryReminderRepository) Clear() {
	r.reminders = []models.Reminder{}
}
