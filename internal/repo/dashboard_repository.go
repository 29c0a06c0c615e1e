package repo

import "time"

// Metrics are the dashboard counts shown to the operator.
type Metrics struct {
	TotalProducts int `json:"total_products"`
	LowStock      int `json:"low_stock"`
	ExpiringSoon  int `json:"expiring_soon"`
}

// ExpiryHorizonDays is the window used for the expiring-soon count and the
// expiring-soon reminder rule.
const ExpiryHorizonDays = 30

type DashboardRepository interface {
	// GetMetrics computes the counts as of the given date. The expiring-soon
	// count includes products expiring on today+30 days (boundary inclusive).
	GetMetrics(today time.Time) (Metrics, error)
}
