package repo

import "time"

// InMemoryDashboardRepository computes metrics directly from the in-memory
// product repository.
type InMemoryDashboardRepository struct {
	products *InMemoryProductRepository
}

func NewInMemoryDashboardRepository() *InMemoryDashboardRepository {
	return &InMemoryDashboardRepository{}
}

func (r *InMemoryDashboardRepository) SetRepositories(products *InMemoryProductRepository) {
	r.products = products
}

func (r *InMemoryDashboardRepository) GetMetrics(today time.Time) (Metrics, error) {
	products, err := r.products.GetAll()
	if err != nil {
		return Metrics{}, err
	}

	horizon := today.AddDate(0, 0, ExpiryHorizonDays)

	var m Metrics
	m.TotalProducts = len(products)
	for _, p := range products {
		if p.Quantity <= p.MinimumStock {
			m.LowStock++
		}
		if !p.ExpirationDate.After(horizon) {
			m.ExpiringSoon++
		}
	}
	return m, nil
}
