package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gocybercheck/cybercheck/internal/handler"
	mw "github.com/gocybercheck/cybercheck/internal/middleware"
)

func New(
	catalogH *handler.CatalogHandler,
	assessmentH *handler.AssessmentHandler,
	reportH *handler.ReportHandler,
	dashH *handler.DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog
		r.Get("/catalog", catalogH.Catalog)

		// Assessments
		r.Post("/assessments", assessmentH.Submit)
		r.Get("/assessments", assessmentH.List)
		r.Get("/assessments/{assessmentId}", assessmentH.Get)

		// Reports
		r.Post("/assessments/{assessmentId}/report", reportH.Generate)
		r.Get("/assessments/{assessmentId}/report.html", reportH.HTML)
		r.Get("/assessments/{assessmentId}/report.pdf", reportH.PDF)

		// Email
		r.Post("/email/send-report", reportH.SendEmail)

		// Dashboard
		r.Get("/dashboard", dashH.Dashboard)
	})

	return r
}
