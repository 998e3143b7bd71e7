package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gocybercheck/cybercheck/internal/models"
)

// AssessmentRepo persists completed assessments in SQLite. Answers are
// stored as a JSON blob; the catalog re-derives everything else on demand.
type AssessmentRepo struct {
	db *sql.DB
}

func NewAssessmentRepo(db *sql.DB) *AssessmentRepo {
	return &AssessmentRepo{db: db}
}

func (r *AssessmentRepo) Create(a *models.Assessment) error {
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO assessments (id, email, company_name, answers, score, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.CompanyName, string(answers), a.Score, a.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// FindByID returns the stored assessment, or (nil, nil) when no row matches.
func (r *AssessmentRepo) FindByID(id string) (*models.Assessment, error) {
	row := r.db.QueryRow(
		`SELECT id, email, company_name, answers, score, completed_at
		 FROM assessments WHERE id = ?`, id)
	a, err := scanAssessment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindByEmail returns all assessments for a contact, most recent first.
func (r *AssessmentRepo) FindByEmail(email string) ([]models.Assessment, error) {
	rows, err := r.db.Query(
		`SELECT id, email, company_name, answers, score, completed_at
		 FROM assessments WHERE email = ? ORDER BY completed_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []models.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// AllScores returns every stored overall score, used for dashboard stats.
func (r *AssessmentRepo) AllScores() ([]int, error) {
	rows, err := r.db.Query(`SELECT score FROM assessments`)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (*models.Assessment, error) {
	var a models.Assessment
	var answers string
	if err := row.Scan(&a.ID, &a.Email, &a.CompanyName, &answers, &a.Score, &a.CompletedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(answers), &a.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}
	return &a, nil
}
