// Package catalog maintains the client-side index of the exercise catalog:
// an id → display-metadata mapping built from paginated API batches, held for
// the lifetime of the enclosing command or page.
package catalog

import (
	"context"
	"sync"

	"github.com/claude/treinolog/internal/models"
)

// Entry is the display metadata kept per exercise.
type Entry struct {
	Name        string
	MuscleGroup string
	WeightUnit  models.WeightUnit
}

// Index maps exerciseId → Entry. Batches merge key-wise; on collision the
// newer record wins. There is no eviction.
type Index struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns an empty Index.
func New() *Index {
	return &Index{entries: make(map[string]Entry)}
}

// Merge folds a batch of fetched exercises into the index. Records with an
// empty id are skipped. Muscle group defaults to "" and unit to kg for
// records that were not normalized upstream.
func (x *Index) Merge(batch []models.Exercise) {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, ex := range batch {
		if ex.ID == "" {
			continue
		}
		unit := ex.WeightUnit
		if !unit.Valid() {
			unit = models.UnitKg
		}
		x.entries[ex.ID] = Entry{
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			WeightUnit:  unit,
		}
	}
}

// Lookup returns the entry for an exercise id.
func (x *Index) Lookup(id string) (Entry, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	e, ok := x.entries[id]
	return e, ok
}

// Len returns the number of indexed exercises.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}

// Lister fetches one catalog page. Satisfied by the API client.
type Lister interface {
	ListExercises(ctx context.Context, search, muscle string, limit int, cursor string) (models.ExercisePage, error)
}

// LoadAll walks the cursor pagination to the end, merging each page as it
// arrives. A failed page fetch leaves the index as it was after the last
// successful merge (stale but consistent) and is reported to the caller.
func LoadAll(ctx context.Context, src Lister, x *Index, pageSize int) error {
	cursor := ""
	for {
		page, err := src.ListExercises(ctx, "", "", pageSize, cursor)
		if err != nil {
			return err
		}
		x.Merge(page.Items)
		if page.NextCursor == "" {
			return nil
		}
		cursor = page.NextCursor
	}
}
