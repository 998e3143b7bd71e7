package main

import (
	"io"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gocybercheck/cybercheck/internal/config"
	"github.com/gocybercheck/cybercheck/internal/db"
	"github.com/gocybercheck/cybercheck/internal/gelf"
	"github.com/gocybercheck/cybercheck/internal/handler"
	"github.com/gocybercheck/cybercheck/internal/mailer"
	"github.com/gocybercheck/cybercheck/internal/repository"
	"github.com/gocybercheck/cybercheck/internal/router"
	"github.com/gocybercheck/cybercheck/internal/scoring"
	"github.com/gocybercheck/cybercheck/internal/service"
)

func main() {
	cfg := config.Load()

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			logrus.WithError(err).Warn("GELF init failed")
		} else {
			logrus.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			logrus.WithField("addr", cfg.GelfAddr).Info("GELF logging enabled")
		}
	}

	// Storage
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer conn.Close()
	logrus.WithField("path", cfg.DBPath).Info("database ready")

	strategy := scoring.ByName(cfg.ScoringStrategy)
	logrus.WithField("strategy", strategy.Name()).Info("scoring strategy selected")

	// Repositories
	repo := repository.NewAssessmentRepo(conn)

	// Collaborators
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom, cfg.BaseURL)
	if !mail.Enabled() {
		logrus.Warn("SMTP not configured, report emails will be skipped")
	}

	// Services
	assessmentSvc := service.NewAssessmentService(repo, strategy)
	reportSvc := service.NewReportService(strategy, mail)

	// Handlers
	catalogH := handler.NewCatalogHandler()
	assessmentH := handler.NewAssessmentHandler(assessmentSvc)
	reportH := handler.NewReportHandler(assessmentSvc, reportSvc)
	dashH := handler.NewDashboardHandler(assessmentSvc)

	// Router
	r := router.New(catalogH, assessmentH, reportH, dashH)

	logrus.WithField("addr", cfg.HTTPAddr).Info("cybercheck server starting")
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logrus.WithError(err).Fatal("server failed")
	}
}
