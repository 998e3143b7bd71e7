package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocybercheck/cybercheck/internal/catalog"
	"github.com/gocybercheck/cybercheck/internal/models"
	"github.com/gocybercheck/cybercheck/internal/scoring"
)

// answerAll picks the option at the given index for every question.
func answerAll(optionIndex int) map[string]string {
	answers := map[string]string{}
	for _, c := range catalog.Categories() {
		for _, q := range c.Questions {
			answers[q.ID] = q.Options[optionIndex]
		}
	}
	return answers
}

// answerCategory overrides one category's answers with the given option index.
func answerCategory(answers map[string]string, categoryID string, optionIndex int) {
	c, ok := catalog.FindCategory(categoryID)
	if !ok {
		panic("unknown category " + categoryID)
	}
	for _, q := range c.Questions {
		answers[q.ID] = q.Options[optionIndex]
	}
}

func testAssessment(answers map[string]string) *models.Assessment {
	return &models.Assessment{
		ID:          "a-1",
		Email:       "sec@acme.test",
		CompanyName: "Acme Corp",
		Answers:     answers,
		Score:       scoring.Overall(scoring.PositionStrategy{}, catalog.Categories(), answers),
		CompletedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

func TestComposeReproducesStoredScore(t *testing.T) {
	for _, idx := range []int{0, 1, 2, 3} {
		a := testAssessment(answerAll(idx))
		rep := Compose(a, scoring.PositionStrategy{})
		assert.Equal(t, a.Score, rep.OverallScore, "option index %d", idx)
	}
}

func TestComposeCategoryResults(t *testing.T) {
	a := testAssessment(answerAll(0))
	rep := Compose(a, scoring.PositionStrategy{})

	require.Len(t, rep.CategoryResults, 5)
	for _, cr := range rep.CategoryResults {
		assert.Equal(t, 100, cr.Percent, cr.Title)
		assert.Equal(t, cr.MaxScore, cr.Score, cr.Title)
		assert.Len(t, cr.Recommendations, 2, cr.Title)
	}
	assert.Equal(t, "Security Policy & Governance", rep.CategoryResults[0].Title)
}

func TestExecutiveSummary(t *testing.T) {
	answers := answerAll(1)                   // everything mid-tier
	answerCategory(answers, "data", 0)        // strongest
	answerCategory(answers, "training", 3)    // weakest
	a := testAssessment(answers)
	rep := Compose(a, scoring.PositionStrategy{})

	assert.Contains(t, rep.ExecutiveSummary, "Acme Corp")
	assert.Contains(t, rep.ExecutiveSummary, "Data Protection & Encryption")
	assert.Contains(t, rep.ExecutiveSummary, "Security Awareness & Training")
	assert.Contains(t, rep.ExecutiveSummary, "5 key security domains")
}

func TestExecutiveSummaryTierWording(t *testing.T) {
	tests := []struct {
		optionIndex int
		tier        string
	}{
		{0, "excellent"},
		{3, "needs significant improvement"},
	}
	for _, tt := range tests {
		rep := Compose(testAssessment(answerAll(tt.optionIndex)), scoring.PositionStrategy{})
		assert.Contains(t, rep.ExecutiveSummary, tt.tier)
	}
}

func TestExecutiveSummaryTieBreaksOnFirstCategory(t *testing.T) {
	// All categories score identically, so the first catalog category wins
	// both the strongest and the weakest slot.
	rep := Compose(testAssessment(answerAll(1)), scoring.PositionStrategy{})
	count := strings.Count(rep.ExecutiveSummary, "Security Policy & Governance")
	assert.Equal(t, 2, count)
}

func TestPriorityActions(t *testing.T) {
	answers := answerAll(0)
	answerCategory(answers, "network", 3)
	answerCategory(answers, "training", 3)
	answerCategory(answers, "data", 2)
	a := testAssessment(answers)
	rep := Compose(a, scoring.PositionStrategy{})

	require.Len(t, rep.PriorityActions, 6)

	// Lowest three categories in ascending order: network, training
	// (catalog order breaks the tie), then data.
	assert.Equal(t, "Deploy next-generation firewall with monitoring", rep.PriorityActions[0])
	assert.Equal(t, "Implement 24/7 network traffic monitoring", rep.PriorityActions[1])
	assert.Equal(t, "Establish regular security awareness training program", rep.PriorityActions[2])
	assert.Equal(t, "Conduct monthly phishing simulation exercises", rep.PriorityActions[3])
	assert.Equal(t, "Encrypt all employee devices and storage systems", rep.PriorityActions[4])
	assert.Equal(t, "Implement automated encrypted backup solutions", rep.PriorityActions[5])
}

func TestComplianceThresholdsInclusive(t *testing.T) {
	tests := []struct {
		score int
		want  map[string]string
	}{
		{70, map[string]string{"ISO 27001": "Likely Compliant", "NIST Framework": "Likely Compliant", "SOC 2": "Gaps Identified", "GDPR": "Likely Compliant"}},
		{69, map[string]string{"ISO 27001": "Gaps Identified"}},
		{75, map[string]string{"SOC 2": "Likely Compliant"}},
		{60, map[string]string{"GDPR": "Likely Compliant", "NIST Framework": "Gaps Identified"}},
		{59, map[string]string{"GDPR": "Gaps Identified"}},
	}
	for _, tt := range tests {
		entries := complianceMapping(tt.score)
		byName := map[string]string{}
		for _, e := range entries {
			byName[e.Framework] = e.Status
		}
		for framework, status := range tt.want {
			assert.Equal(t, status, byName[framework], "score %d framework %s", tt.score, framework)
		}
	}
}

func TestScoreTier(t *testing.T) {
	assert.Equal(t, "excellent", ScoreTier(80))
	assert.Equal(t, "good", ScoreTier(60))
	assert.Equal(t, "fair", ScoreTier(40))
	assert.Equal(t, "needs significant improvement", ScoreTier(39))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "August 28, 2026", formatDate("2026-08-28T12:00:00Z"))
	assert.Equal(t, "not-a-date", formatDate("not-a-date"))
}
