package repo

import (
	"time"

	"github.com/rogerio-castellano/consumables-tracker/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	// AdjustQuantity applies delta to the product quantity, clamping the
	// result at zero. There is no upper bound.
	AdjustQuantity(id, delta int) (models.Product, error)
	// SetLastReminder records the date of the last consumption reminder.
	// Only the evaluation engine calls this.
	SetLastReminder(id int, date time.Time) error
	Delete(id int) error
}
