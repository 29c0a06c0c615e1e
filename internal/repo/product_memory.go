package repo

import (
	"time"

	"github.com/rogerio-castellano/consumables-tracker/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products in insertion order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	return r.products, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// AdjustQuantity applies delta to the product quantity, clamped at zero.
func (r *InMemoryProductRepository) AdjustQuantity(id, delta int) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			p.Quantity += delta
			if p.Quantity < 0 {
				p.Quantity = 0
			}
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// SetLastReminder records the last consumption reminder date for a product.
func (r *InMemoryProductRepository) SetLastReminder(id int, date time.Time) error {
	for i, p := range r.products {
		if p.ID == id {
			d := date
			p.LastReminder = &d
			r.products[i] = p
			return nil
		}
	}
	return ErrProductNotFound
}

// Delete removes a product from the repository by its ID. Reminders that
// reference the product are left in place.
func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
