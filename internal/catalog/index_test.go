package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/claude/treinolog/internal/models"
)

// TestMergeDefaults verifies records with an invalid unit fall back to kg and
// that empty ids are skipped.
func TestMergeDefaults(t *testing.T) {
	idx := New()
	idx.Merge([]models.Exercise{
		{ID: "a", Name: "Supino reto"},
		{ID: "", Name: "sem id"},
	})

	if idx.Len() != 1 {
		t.Fatalf("len = %d, want 1", idx.Len())
	}
	e, ok := idx.Lookup("a")
	if !ok {
		t.Fatal("lookup miss")
	}
	if e.WeightUnit != models.UnitKg {
		t.Errorf("unit = %q, want kg default", e.WeightUnit)
	}
	if e.MuscleGroup != "" {
		t.Errorf("muscle group = %q, want empty default", e.MuscleGroup)
	}
}

// TestMergeNewerWins verifies key-wise merge semantics: later batches update
// colliding keys and keep everything else.
func TestMergeNewerWins(t *testing.T) {
	idx := New()
	idx.Merge([]models.Exercise{
		{ID: "a", Name: "Supino", MuscleGroup: "peito", WeightUnit: models.UnitKg},
		{ID: "b", Name: "Remada", MuscleGroup: "costas", WeightUnit: models.UnitKg},
	})
	idx.Merge([]models.Exercise{
		{ID: "a", Name: "Supino reto", MuscleGroup: "peito", WeightUnit: models.UnitKg},
	})

	if idx.Len() != 2 {
		t.Fatalf("len = %d, want 2 (incremental merge must not discard)", idx.Len())
	}
	a, _ := idx.Lookup("a")
	if a.Name != "Supino reto" {
		t.Errorf("a.Name = %q, want newer record", a.Name)
	}
	if _, ok := idx.Lookup("b"); !ok {
		t.Error("b lost after second merge")
	}
}

// pagedLister serves canned pages and can fail on a chosen page.
type pagedLister struct {
	pages  []models.ExercisePage
	failAt int // page number to fail on, -1 = never
	calls  int
}

func (l *pagedLister) ListExercises(_ context.Context, _, _ string, _ int, cursor string) (models.ExercisePage, error) {
	if l.failAt >= 0 && l.calls == l.failAt {
		l.calls++
		return models.ExercisePage{}, errors.New("catalog unavailable")
	}
	page := l.pages[l.calls]
	l.calls++
	return page, nil
}

// TestLoadAllWalksCursor verifies all pages merge into the index.
func TestLoadAllWalksCursor(t *testing.T) {
	lister := &pagedLister{
		failAt: -1,
		pages: []models.ExercisePage{
			{Items: []models.Exercise{{ID: "a", Name: "A"}}, NextCursor: "1"},
			{Items: []models.Exercise{{ID: "b", Name: "B"}}, NextCursor: ""},
		},
	}
	idx := New()
	if err := LoadAll(context.Background(), lister, idx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Len() != 2 {
		t.Errorf("len = %d, want 2", idx.Len())
	}
}

// TestLoadAllFailureKeepsMergedPages verifies a mid-walk failure reports the
// error while the index keeps the pages already merged — stale but
// consistent, never corrupted.
func TestLoadAllFailureKeepsMergedPages(t *testing.T) {
	lister := &pagedLister{
		failAt: 1,
		pages: []models.ExercisePage{
			{Items: []models.Exercise{{ID: "a", Name: "A"}}, NextCursor: "1"},
			{},
		},
	}
	idx := New()
	if err := LoadAll(context.Background(), lister, idx, 1); err == nil {
		t.Fatal("expected error")
	}
	if idx.Len() != 1 {
		t.Errorf("len = %d, want 1 (first page kept)", idx.Len())
	}
	if _, ok := idx.Lookup("a"); !ok {
		t.Error("a missing after partial load")
	}
}
