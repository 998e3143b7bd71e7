// Package scoring computes weighted questionnaire scores.
//
// Two ranking conventions exist: position-based (option index decides the
// rank) and keyword-based (marker substrings in the answer text decide it).
// Position is the canonical convention; the persisted overall score and all
// report composition use it, so a report always reproduces the score stored
// at submission time. The keyword strategy is kept for parity with reports
// generated by the legacy pipeline and can be selected via configuration.
package scoring

import (
	"math"
	"strings"

	"github.com/gocybercheck/cybercheck/internal/catalog"
)

// MaxRank is the rank awarded for the best answer option.
const MaxRank = 4

// Strategy maps a chosen answer option to a rank in [0,MaxRank].
// Rank 0 means the answer contributes nothing to the raw score.
type Strategy interface {
	Name() string
	Rank(q catalog.Question, answer string) int
}

// PositionStrategy ranks by option position: first option -> 4, last -> 1.
// An answer string that is not one of the question's options ranks 0.
type PositionStrategy struct{}

func (PositionStrategy) Name() string { return "position" }

func (PositionStrategy) Rank(q catalog.Question, answer string) int {
	for i, opt := range q.Options {
		if opt == answer {
			return MaxRank - i
		}
	}
	return 0
}

// KeywordStrategy ranks by marker substrings in the answer text.
type KeywordStrategy struct{}

func (KeywordStrategy) Name() string { return "keyword" }

func (KeywordStrategy) Rank(_ catalog.Question, answer string) int {
	switch {
	case strings.Contains(answer, "Yes, comprehensive"),
		strings.Contains(answer, "24/7"),
		strings.Contains(answer, "Monthly"):
		return 4
	case strings.Contains(answer, "Yes"),
		strings.Contains(answer, "Quarterly"):
		return 3
	case strings.Contains(answer, "Partially"),
		strings.Contains(answer, "Annual"):
		return 2
	default:
		return 1
	}
}

// ByName returns the strategy for a config value, defaulting to position.
func ByName(name string) Strategy {
	if name == "keyword" {
		return KeywordStrategy{}
	}
	return PositionStrategy{}
}

// CategoryScore is the scored result for one category.
type CategoryScore struct {
	CategoryID string
	Title      string
	Raw        int
	Max        int
	Percent    int
}

// ScoreCategory computes raw, max and percent for a single category.
// Unanswered questions contribute 0 raw but still count weight*MaxRank
// toward max, so missing answers lower the percentage. Answer keys not in
// the catalog are ignored entirely.
func ScoreCategory(s Strategy, c catalog.Category, answers map[string]string) CategoryScore {
	cs := CategoryScore{CategoryID: c.ID, Title: c.Title}
	for _, q := range c.Questions {
		cs.Max += q.Weight * MaxRank
		if answer, ok := answers[q.ID]; ok {
			cs.Raw += q.Weight * s.Rank(q, answer)
		}
	}
	cs.Percent = percent(cs.Raw, cs.Max)
	return cs
}

// Overall computes the overall percentage across all categories,
// rounded and clamped to [0,100].
func Overall(s Strategy, categories []catalog.Category, answers map[string]string) int {
	raw, max := 0, 0
	for _, c := range categories {
		cs := ScoreCategory(s, c, answers)
		raw += cs.Raw
		max += cs.Max
	}
	return percent(raw, max)
}

func percent(raw, max int) int {
	if max <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(raw) / float64(max)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
