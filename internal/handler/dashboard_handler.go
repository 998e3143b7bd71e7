package handler

import (
	"net/http"

	"github.com/gocybercheck/cybercheck/internal/service"
)

type DashboardHandler struct {
	svc *service.AssessmentService
}

func NewDashboardHandler(svc *service.AssessmentService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Dashboard returns aggregate stats over all stored assessments.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
