package service

import (
	"github.com/gocybercheck/cybercheck/internal/models"
	"github.com/gocybercheck/cybercheck/internal/report"
	"github.com/gocybercheck/cybercheck/internal/scoring"
)

// ReportMailer dispatches a rendered summary email. Implemented by the
// SMTP mailer in production and by a stub in tests.
type ReportMailer interface {
	SendReport(to, companyName string, score int, assessmentID string) error
}

// ReportService composes reports from stored assessments and hands summary
// emails to the mail collaborator. Composition itself is pure; delivery is
// the only side effect here.
type ReportService struct {
	strategy scoring.Strategy
	mailer   ReportMailer
}

func NewReportService(strategy scoring.Strategy, mailer ReportMailer) *ReportService {
	return &ReportService{strategy: strategy, mailer: mailer}
}

// Compose derives the full report for an assessment.
func (s *ReportService) Compose(a *models.Assessment) *report.Report {
	return report.Compose(a, s.strategy)
}

// RenderHTML composes the report and renders it as an HTML document.
func (s *ReportService) RenderHTML(a *models.Assessment) ([]byte, error) {
	return report.RenderHTML(s.Compose(a))
}

// RenderPDF composes the report and renders it as a printable PDF.
func (s *ReportService) RenderPDF(a *models.Assessment) ([]byte, error) {
	return report.RenderPDF(s.Compose(a))
}

// NotifyRequest carries the fields of a report summary email.
type NotifyRequest struct {
	To           string `json:"to"`
	CompanyName  string `json:"companyName"`
	Score        *int   `json:"score"`
	AssessmentID string `json:"assessmentId"`
}

// Notify dispatches the summary email. A delivery failure comes back as a
// *DeliveryError; the submission itself is unaffected either way.
func (s *ReportService) Notify(req NotifyRequest) error {
	if req.To == "" {
		return &ValidationError{Field: "to", Reason: "required"}
	}
	if !emailPattern.MatchString(req.To) {
		return &ValidationError{Field: "to", Reason: "must be a valid email address"}
	}
	if req.CompanyName == "" {
		return &ValidationError{Field: "companyName", Reason: "required"}
	}
	if req.Score == nil {
		return &ValidationError{Field: "score", Reason: "required"}
	}
	if req.AssessmentID == "" {
		return &ValidationError{Field: "assessmentId", Reason: "required"}
	}

	if err := s.mailer.SendReport(req.To, req.CompanyName, *req.Score, req.AssessmentID); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}
