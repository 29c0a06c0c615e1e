package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresDashboardRepository struct {
	db *sql.DB
}

func NewPostgresDashboardRepository(db *sql.DB) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{db: db}
}

func (r *PostgresDashboardRepository) GetMetrics(today time.Time) (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	horizon := today.AddDate(0, 0, ExpiryHorizonDays)

	var m Metrics
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&m.TotalProducts); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE quantity <= minimum_stock`).Scan(&m.LowStock); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE expiration_date <= $1`, horizon).Scan(&m.ExpiringSoon); err != nil {
		return Metrics{}, err
	}

	return m, nil
}
