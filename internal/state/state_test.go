package state

import (
	"context"
	"errors"
	"testing"

	"github.com/claude/treinolog/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening state db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestTokenRoundTrip covers the logged-out default, store, replace, and clear.
func TestTokenRoundTrip(t *testing.T) {
	db := openTestDB(t)

	tok, err := db.Token()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "" {
		t.Errorf("fresh db token = %q, want empty", tok)
	}

	if err := db.SetToken("first"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetToken("second"); err != nil {
		t.Fatal(err)
	}
	tok, err = db.Token()
	if err != nil {
		t.Fatal(err)
	}
	if tok != "second" {
		t.Errorf("token = %q, want %q", tok, "second")
	}

	if err := db.ClearToken(); err != nil {
		t.Fatal(err)
	}
	tok, err = db.Token()
	if err != nil {
		t.Fatal(err)
	}
	if tok != "" {
		t.Errorf("token after clear = %q, want empty", tok)
	}
}

// TestDayLabelCache covers misses and hits on the label cache.
func TestDayLabelCache(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := db.DayLabel("d1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("empty cache reported a hit")
	}

	if err := db.SetDayLabel("d1", "Upper A"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetDayLabel("d1", "Upper A (rev)"); err != nil {
		t.Fatal(err)
	}

	label, ok, err := db.DayLabel("d1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || label != "Upper A (rev)" {
		t.Errorf("label = %q ok=%v, want updated hit", label, ok)
	}
}

// countingSource fakes the API client for label resolution, counting fetches.
type countingSource struct {
	labels map[string]string
	calls  int
}

func (c *countingSource) GetTrainingDay(_ context.Context, id string) (models.TrainingDayDetail, error) {
	c.calls++
	label, ok := c.labels[id]
	if !ok {
		return models.TrainingDayDetail{}, errors.New("not found")
	}
	return models.TrainingDayDetail{ID: id, Label: label, Items: []models.DayExerciseRef{}}, nil
}

// TestResolveDayLabel verifies the fetch happens once and later lookups come
// from the cache.
func TestResolveDayLabel(t *testing.T) {
	db := openTestDB(t)
	src := &countingSource{labels: map[string]string{"d1": "Full Body"}}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		label, err := db.ResolveDayLabel(ctx, src, "d1")
		if err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
		if label != "Full Body" {
			t.Errorf("resolve %d label = %q", i, label)
		}
	}
	if src.calls != 1 {
		t.Errorf("source fetched %d times, want 1", src.calls)
	}

	if _, err := db.ResolveDayLabel(ctx, src, "missing"); err == nil {
		t.Error("unknown day resolved without error")
	}
}
