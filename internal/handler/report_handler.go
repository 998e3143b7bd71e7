package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/gocybercheck/cybercheck/internal/service"
)

type ReportHandler struct {
	assessments *service.AssessmentService
	reports     *service.ReportService
}

func NewReportHandler(assessments *service.AssessmentService, reports *service.ReportService) *ReportHandler {
	return &ReportHandler{assessments: assessments, reports: reports}
}

// Generate returns the composed report structure for an assessment.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	a, err := h.assessments.Get(chi.URLParam(r, "assessmentId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"reportData": h.reports.Compose(a),
	})
}

// HTML returns the rendered report as a standalone HTML document.
func (h *ReportHandler) HTML(w http.ResponseWriter, r *http.Request) {
	a, err := h.assessments.Get(chi.URLParam(r, "assessmentId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	doc, err := h.reports.RenderHTML(a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(doc)
}

// PDF returns the rendered report as a printable PDF document.
func (h *ReportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	a, err := h.assessments.Get(chi.URLParam(r, "assessmentId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	doc, err := h.reports.RenderPDF(a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cybersecurity-assessment-report.pdf"`)
	w.Write(doc)
}

// SendEmail dispatches the report summary email. Delivery failures are
// surfaced as a warning, not an error: the assessment stays retrievable.
func (h *ReportHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req service.NotifyRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.reports.Notify(req)
	var de *service.DeliveryError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Assessment report sent successfully",
		})
	case errors.As(err, &de):
		logrus.WithError(de.Err).WithField("to", req.To).Warn("report email delivery failed")
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"warning": de.Error(),
		})
	default:
		writeServiceError(w, err)
	}
}
