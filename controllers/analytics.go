package controllers

import (
	"net/http"

	"campus-eats/services"
)

// AnalyticsController serves the admin dashboard report.
type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController.
func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// GetAnalytics returns order, menu and revenue aggregates.
func (ac *AnalyticsController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := ac.Analytics.Report(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
