package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gocybercheck/cybercheck/internal/db"
	"github.com/gocybercheck/cybercheck/internal/models"
)

func newTestRepo(t *testing.T) *AssessmentRepo {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewAssessmentRepo(conn)
}

func testRecord(id, email, completedAt string) *models.Assessment {
	return &models.Assessment{
		ID:          id,
		Email:       email,
		CompanyName: "Acme Corp",
		Answers:     map[string]string{"policy_1": "Yes, comprehensive policies"},
		Score:       72,
		CompletedAt: completedAt,
	}
}

func TestCreateAndFindByID(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC().Format(time.RFC3339)

	if err := repo.Create(testRecord("a-1", "sec@acme.test", now)); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID("a-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("expected record, got nil")
	}
	if got.CompanyName != "Acme Corp" || got.Score != 72 {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.Answers["policy_1"] != "Yes, comprehensive policies" {
		t.Errorf("answers not round-tripped: %+v", got.Answers)
	}
}

func TestFindByIDMissing(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.FindByID("nope")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}

func TestFindByEmailMostRecentFirst(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a-1", "a-2", "a-3"} {
		ts := base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339)
		if err := repo.Create(testRecord(id, "sec@acme.test", ts)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	if err := repo.Create(testRecord("other", "someone@else.test", base.Format(time.RFC3339))); err != nil {
		t.Fatalf("create other: %v", err)
	}

	got, err := repo.FindByEmail("sec@acme.test")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, want := range []string{"a-3", "a-2", "a-1"} {
		if got[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestFindByEmailUnknown(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.FindByEmail("nobody@nowhere.test")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d records", len(got))
	}
}

func TestAllScores(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now().UTC().Format(time.RFC3339)
	for i, id := range []string{"a-1", "a-2"} {
		rec := testRecord(id, "sec@acme.test", now)
		rec.Score = 50 + i*10
		if err := repo.Create(rec); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	scores, err := repo.AllScores()
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
}
