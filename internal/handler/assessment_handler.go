package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gocybercheck/cybercheck/internal/service"
)

type AssessmentHandler struct {
	svc *service.AssessmentService
}

func NewAssessmentHandler(svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// Submit accepts one completed questionnaire and returns the new id.
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.Submit(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"assessmentId": a.ID,
		"score":        a.Score,
		"message":      "Assessment submitted successfully",
	})
}

// Get returns one stored assessment by id.
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assessmentId")
	a, err := h.svc.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// List returns every assessment submitted under a contact email.
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	assessments, err := h.svc.ListByEmail(email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"assessments": assessments,
		"total":       len(assessments),
	})
}
