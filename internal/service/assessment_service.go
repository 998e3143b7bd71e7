package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/gocybercheck/cybercheck/internal/catalog"
	"github.com/gocybercheck/cybercheck/internal/models"
	"github.com/gocybercheck/cybercheck/internal/scoring"
)

// emailPattern accepts the usual local@domain shape and nothing fancier.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AssessmentStore is the persistence contract the service depends on.
// The SQLite repository satisfies it in production; tests use an in-memory
// fake.
type AssessmentStore interface {
	Create(a *models.Assessment) error
	FindByID(id string) (*models.Assessment, error)
	FindByEmail(email string) ([]models.Assessment, error)
	AllScores() ([]int, error)
}

type AssessmentService struct {
	store    AssessmentStore
	strategy scoring.Strategy
}

func NewAssessmentService(store AssessmentStore, strategy scoring.Strategy) *AssessmentService {
	return &AssessmentService{store: store, strategy: strategy}
}

// SubmitRequest carries one completed questionnaire. Score is a pointer so
// a missing field can be told apart from an explicit zero.
type SubmitRequest struct {
	Email       string            `json:"email"`
	CompanyName string            `json:"companyName"`
	Answers     map[string]string `json:"answers"`
	Score       *int              `json:"score"`
}

// Submit validates and persists a completed assessment. The overall score
// is always recomputed server-side with the canonical strategy; the
// client-supplied score is required for contract completeness but is not
// trusted for persistence.
func (s *AssessmentService) Submit(req SubmitRequest) (*models.Assessment, error) {
	if err := validateSubmit(req); err != nil {
		return nil, err
	}

	a := &models.Assessment{
		ID:          uuid.NewString(),
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Answers:     req.Answers,
		Score:       scoring.Overall(s.strategy, catalog.Categories(), req.Answers),
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.store.Create(a); err != nil {
		return nil, fmt.Errorf("persist assessment: %w", err)
	}
	return a, nil
}

func validateSubmit(req SubmitRequest) error {
	if req.Email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if !emailPattern.MatchString(req.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if req.CompanyName == "" {
		return &ValidationError{Field: "companyName", Reason: "required"}
	}
	if req.Answers == nil {
		return &ValidationError{Field: "answers", Reason: "required"}
	}
	if req.Score == nil {
		return &ValidationError{Field: "score", Reason: "required"}
	}
	return nil
}

// Get returns the stored assessment or ErrNotFound.
func (s *AssessmentService) Get(id string) (*models.Assessment, error) {
	a, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// ListByEmail returns every assessment submitted under a contact email,
// most recent first. An unknown email yields an empty list, not an error.
func (s *AssessmentService) ListByEmail(email string) ([]models.Assessment, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "required"}
	}
	return s.store.FindByEmail(email)
}

// DashboardStats aggregates stored scores for the operations dashboard.
type DashboardStats struct {
	AssessmentCount int            `json:"assessmentCount"`
	AverageScore    int            `json:"averageScore"`
	TierCounts      map[string]int `json:"tierCounts"`
}

// Stats computes the submission count, mean score, and per-tier counts.
func (s *AssessmentService) Stats() (*DashboardStats, error) {
	scores, err := s.store.AllScores()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		AssessmentCount: len(scores),
		TierCounts: map[string]int{
			"excellent": 0,
			"good":      0,
			"fair":      0,
			"poor":      0,
		},
	}
	if len(scores) == 0 {
		return stats, nil
	}

	sum := 0
	for _, sc := range scores {
		sum += sc
		switch {
		case sc >= 80:
			stats.TierCounts["excellent"]++
		case sc >= 60:
			stats.TierCounts["good"]++
		case sc >= 40:
			stats.TierCounts["fair"]++
		default:
			stats.TierCounts["poor"]++
		}
	}
	stats.AverageScore = sum / len(scores)
	return stats, nil
}
