// Package report composes and renders assessment reports. Composition and
// rendering are pure functions of a stored assessment plus the static
// catalog and recommendation tables; nothing here touches storage or the
// network.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/gocybercheck/cybercheck/internal/catalog"
	"github.com/gocybercheck/cybercheck/internal/models"
	"github.com/gocybercheck/cybercheck/internal/recommend"
	"github.com/gocybercheck/cybercheck/internal/scoring"
)

// CategoryResult is one category's scored breakdown with its advice list.
type CategoryResult struct {
	CategoryID      string   `json:"categoryId"`
	Title           string   `json:"title"`
	Score           int      `json:"score"`
	MaxScore        int      `json:"maxScore"`
	Percent         int      `json:"percentage"`
	Recommendations []string `json:"recommendations"`
}

// ComplianceEntry maps one framework to its assessed status. A slice keeps
// the grid in a stable presentation order.
type ComplianceEntry struct {
	Framework string `json:"framework"`
	Status    string `json:"status"`
}

// Report is the derived, presentation-ready summary of an assessment.
type Report struct {
	AssessmentID      string            `json:"assessmentId"`
	CompanyName       string            `json:"companyName"`
	Email             string            `json:"email"`
	OverallScore      int               `json:"overallScore"`
	CompletedAt       string            `json:"completedAt"`
	CategoryResults   []CategoryResult  `json:"categoryResults"`
	ExecutiveSummary  string            `json:"executiveSummary"`
	PriorityActions   []string          `json:"priorityActions"`
	ComplianceMapping []ComplianceEntry `json:"complianceMapping"`
}

const (
	statusCompliant = "Likely Compliant"
	statusGaps      = "Gaps Identified"
)

// complianceThresholds gates each framework on a minimum overall score.
// Thresholds are inclusive.
var complianceThresholds = []struct {
	framework string
	minScore  int
}{
	{"ISO 27001", 70},
	{"NIST Framework", 65},
	{"SOC 2", 75},
	{"GDPR", 60},
}

// Compose recomputes the full category breakdown for an assessment and
// derives the executive summary, priority actions and compliance mapping.
// The overall score is recomputed with the given strategy; with the
// canonical strategy it matches the score persisted at submission time.
func Compose(a *models.Assessment, strategy scoring.Strategy) *Report {
	cats := catalog.Categories()
	results := make([]CategoryResult, 0, len(cats))
	raw, max := 0, 0
	for _, c := range cats {
		cs := scoring.ScoreCategory(strategy, c, a.Answers)
		raw += cs.Raw
		max += cs.Max
		results = append(results, CategoryResult{
			CategoryID:      c.ID,
			Title:           c.Title,
			Score:           cs.Raw,
			MaxScore:        cs.Max,
			Percent:         cs.Percent,
			Recommendations: recommend.For(c.ID, cs.Percent),
		})
	}

	overall := scoring.Overall(strategy, cats, a.Answers)

	return &Report{
		AssessmentID:      a.ID,
		CompanyName:       a.CompanyName,
		Email:             a.Email,
		OverallScore:      overall,
		CompletedAt:       formatDate(a.CompletedAt),
		CategoryResults:   results,
		ExecutiveSummary:  executiveSummary(a.CompanyName, overall, results),
		PriorityActions:   priorityActions(results),
		ComplianceMapping: complianceMapping(overall),
	}
}

// ScoreTier returns the qualitative label for an overall score.
func ScoreTier(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "needs significant improvement"
	}
}

// executiveSummary builds a one-paragraph narrative naming the score tier
// and the strongest and weakest categories. First occurrence wins on ties.
func executiveSummary(company string, overall int, results []CategoryResult) string {
	strongest, weakest := results[0], results[0]
	for _, r := range results[1:] {
		if r.Percent > strongest.Percent {
			strongest = r
		}
		if r.Percent < weakest.Percent {
			weakest = r
		}
	}
	return fmt.Sprintf(
		"%s's cybersecurity posture is %s with an overall score of %d%%. "+
			"Your strongest area is %s (%d%%), while %s (%d%%) requires the most attention. "+
			"This assessment evaluated %d key security domains and provides actionable recommendations to enhance your security posture.",
		company, ScoreTier(overall), overall,
		strongest.Title, strongest.Percent,
		weakest.Title, weakest.Percent,
		len(results),
	)
}

// priorityActions takes the three lowest-scoring categories (stable sort,
// catalog order breaks ties) and flattens their top two recommendations,
// yielding at most six actions.
func priorityActions(results []CategoryResult) []string {
	sorted := make([]CategoryResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percent < sorted[j].Percent
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}

	actions := make([]string, 0, 6)
	for _, r := range sorted {
		recs := r.Recommendations
		if len(recs) > 2 {
			recs = recs[:2]
		}
		actions = append(actions, recs...)
	}
	return actions
}

func complianceMapping(overall int) []ComplianceEntry {
	entries := make([]ComplianceEntry, 0, len(complianceThresholds))
	for _, t := range complianceThresholds {
		status := statusGaps
		if overall >= t.minScore {
			status = statusCompliant
		}
		entries = append(entries, ComplianceEntry{Framework: t.framework, Status: status})
	}
	return entries
}

// formatDate renders an RFC3339 timestamp as a report-friendly date,
// passing malformed values through unchanged.
func formatDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("January 2, 2006")
}
