package catalog

import "testing"

func TestQuestionIDsGloballyUnique(t *testing.T) {
	seen := map[string]string{}
	for _, c := range Categories() {
		for _, q := range c.Questions {
			if prev, dup := seen[q.ID]; dup {
				t.Errorf("question id %q appears in both %q and %q", q.ID, prev, c.ID)
			}
			seen[q.ID] = c.ID
		}
	}
}

func TestCatalogShape(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	for _, c := range cats {
		if c.ID == "" || c.Title == "" {
			t.Errorf("category missing id or title: %+v", c)
		}
		for _, q := range c.Questions {
			if len(q.Options) != 4 {
				t.Errorf("question %s: expected 4 options, got %d", q.ID, len(q.Options))
			}
			if q.Weight <= 0 {
				t.Errorf("question %s: weight must be positive, got %d", q.ID, q.Weight)
			}
		}
	}
}

func TestQuestionCount(t *testing.T) {
	if got := QuestionCount(); got != 15 {
		t.Errorf("expected 15 questions, got %d", got)
	}
}

func TestFindCategory(t *testing.T) {
	c, ok := FindCategory("network")
	if !ok {
		t.Fatal("expected to find network category")
	}
	if c.Title != "Network Security" {
		t.Errorf("unexpected title %q", c.Title)
	}
	if _, ok := FindCategory("nope"); ok {
		t.Error("expected miss for unknown category id")
	}
}
