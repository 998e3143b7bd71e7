package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("unexpected default addr %q", cfg.HTTPAddr)
	}
	if cfg.ScoringStrategy != "position" {
		t.Errorf("unexpected default strategy %q", cfg.ScoringStrategy)
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("unexpected default smtp port %d", cfg.SMTPPort)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CYBERCHECK_ADDR", ":9999")
	t.Setenv("CYBERCHECK_SMTP_PORT", "2525")
	t.Setenv("CYBERCHECK_SCORING", "keyword")

	cfg := Load()
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("addr override not applied: %q", cfg.HTTPAddr)
	}
	if cfg.SMTPPort != 2525 {
		t.Errorf("smtp port override not applied: %d", cfg.SMTPPort)
	}
	if cfg.ScoringStrategy != "keyword" {
		t.Errorf("strategy override not applied: %q", cfg.ScoringStrategy)
	}
}

func TestEnvIntFallbackOnGarbage(t *testing.T) {
	t.Setenv("CYBERCHECK_SMTP_PORT", "not-a-number")
	if cfg := Load(); cfg.SMTPPort != 587 {
		t.Errorf("expected fallback 587, got %d", cfg.SMTPPort)
	}
}
