package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// GetDashboardHandler godoc
// @Summary Dashboard counts for the operator view
// @Tags dashboard
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	today := time.Now()

	if dashboardCache != nil {
		if payload, ok := dashboardCache.GetDashboard(r.Context(), today); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	m, err := dashboardRepo.GetMetrics(today)
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(m)
	if err != nil {
		log.Printf("Failed to encode metrics: %v", err)
		http.Error(w, "failed to encode metrics", http.StatusInternalServerError)
		return
	}
	if dashboardCache != nil {
		dashboardCache.SetDashboard(r.Context(), today, payload)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func invalidateDashboard(r *http.Request) {
	if dashboardCache != nil {
		dashboardCache.Invalidate(r.Context(), time.Now())
	}
}
