package rest

import (
	"errors"
	"net/http"

	"resto-admin-be/internal/dashboard"
	"resto-admin-be/internal/money"
)

// DashboardHandler serves the aggregated statistics endpoint.
type DashboardHandler struct {
	svc dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		if errors.Is(err, money.ErrInvalidAmount) || errors.Is(err, money.ErrInvalidTimestamp) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "error computing dashboard stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
