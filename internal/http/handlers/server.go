package handlers

import (
	"github.com/rogerio-castellano/consumables-tracker/internal/auth"
	"github.com/rogerio-castellano/consumables-tracker/internal/cache"
	repo "github.com/rogerio-castellano/consumables-tracker/internal/repo"
)

var (
	productRepo   repo.ProductRepository
	reminderRepo  repo.ReminderRepository
	dashboardRepo repo.DashboardRepository

	dashboardCache *cache.DashboardCache

	authManager  *auth.Manager
	operatorUser string
	operatorHash string
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetReminderRepo(r repo.ReminderRepository) {
	reminderRepo = r
}

func SetDashboardRepo(r repo.DashboardRepository) {
	dashboardRepo = r
}

// SetDashboardCache wires the optional Redis cache. Handlers fall back to the
// repository when it is nil.
func SetDashboardCache(c *cache.DashboardCache) {
	dashboardCache = c
}

func SetAuth(m *auth.Manager, username, passwordHash string) {
	authManager = m
	operatorUser = username
	operatorHash = passwordHash
}
