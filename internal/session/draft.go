package session

import (
	"context"
	"strings"
	"time"

	"github.com/claude/treinolog/internal/catalog"
	"github.com/claude/treinolog/internal/models"
	"github.com/google/uuid"
)

// SetRow is one staged set. Nil Reps/Load mean "not entered yet"; they
// normalize to JSON null at build time.
type SetRow struct {
	ID   string
	Reps *int
	Load *float64
	Unit models.WeightUnit
}

// Item is one exercise's participation in the draft. Name, muscle group and
// base unit are copied out of the catalog index at seed time, so later index
// merges never reach an already-seeded draft.
type Item struct {
	ExerciseID  string
	Name        string
	MuscleGroup string
	BaseUnit    models.WeightUnit
	Sets        []SetRow
}

// Draft is the in-memory, unsaved training session being composed. The draft
// exclusively owns its items and their set rows. A zero PerformedAt means
// "now at build time".
type Draft struct {
	TrainingDayID string
	Notes         string
	PerformedAt   time.Time
	Items         []Item
}

// Seed replaces the entire item list from an expanded day, one zero-set item
// per slot. Any previously staged items and sets are discarded — changing the
// day mid-edit starts over.
func (d *Draft) Seed(day ExpandedDay) {
	d.TrainingDayID = day.ID
	items := make([]Item, 0, len(day.Exercises))
	for _, ex := range day.Exercises {
		items = append(items, Item{
			ExerciseID:  ex.ExerciseID,
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			BaseUnit:    ex.BaseUnit,
			Sets:        []SetRow{},
		})
	}
	d.Items = items
}

// SeedFromDay expands dayID and seeds the draft with the result. The draft is
// left untouched when the fetch fails or the context is already done by the
// time the result arrives (the caller's view may be gone).
func (d *Draft) SeedFromDay(ctx context.Context, f DayFetcher, idx *catalog.Index, dayID string) error {
	day, err := ExpandDay(ctx, f, idx, dayID)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	d.Seed(day)
	return nil
}

// item returns a pointer into Items for the given exercise, or nil.
func (d *Draft) item(exerciseID string) *Item {
	for i := range d.Items {
		if d.Items[i].ExerciseID == exerciseID {
			return &d.Items[i]
		}
	}
	return nil
}

// AddSet appends an empty set row to the named item, pre-filled with the
// item's base unit, and returns the new row's id. Unknown exercise ids are a
// no-op (ok=false).
func (d *Draft) AddSet(exerciseID string) (id string, ok bool) {
	it := d.item(exerciseID)
	if it == nil {
		return "", false
	}
	row := SetRow{ID: uuid.NewString(), Unit: it.BaseUnit}
	it.Sets = append(it.Sets, row)
	return row.ID, true
}

// SetPatch is a partial update to one set row. Nil fields are left unchanged;
// the Clear flags reset a field back to "not entered".
type SetPatch struct {
	Reps      *int
	Load      *float64
	Unit      *models.WeightUnit
	ClearReps bool
	ClearLoad bool
}

// UpdateSet applies patch to the row identified by (exerciseID, setID). Both
// must match exactly; anything else is a no-op returning false, and no other
// row is touched.
func (d *Draft) UpdateSet(exerciseID, setID string, patch SetPatch) bool {
	it := d.item(exerciseID)
	if it == nil {
		return false
	}
	for i := range it.Sets {
		if it.Sets[i].ID != setID {
			continue
		}
		row := &it.Sets[i]
		if patch.ClearReps {
			row.Reps = nil
		} else if patch.Reps != nil {
			v := *patch.Reps
			row.Reps = &v
		}
		if patch.ClearLoad {
			row.Load = nil
		} else if patch.Load != nil {
			v := *patch.Load
			row.Load = &v
		}
		if patch.Unit != nil {
			row.Unit = *patch.Unit
		}
		return true
	}
	return false
}

// RemoveSet deletes the row by id. Removing the last row leaves the item in
// place with an empty set list — only Seed removes items.
func (d *Draft) RemoveSet(exerciseID, setID string) bool {
	it := d.item(exerciseID)
	if it == nil {
		return false
	}
	for i := range it.Sets {
		if it.Sets[i].ID == setID {
			it.Sets = append(it.Sets[:i], it.Sets[i+1:]...)
			return true
		}
	}
	return false
}

// CanSave reports whether the draft is worth submitting: a day is chosen and
// at least one item has at least one set. Zero-set items don't block saving;
// they are simply dropped from the payload.
func (d *Draft) CanSave() bool {
	if d.TrainingDayID == "" {
		return false
	}
	for _, it := range d.Items {
		if len(it.Sets) > 0 {
			return true
		}
	}
	return false
}

// BuildPayload produces the save payload. Items with empty set lists are
// filtered out. Per row: unset reps/load become null, load is always null for
// bodyweight sets regardless of what was typed, the unit passes through.
// Blank notes are omitted rather than sent as "". BuildPayload is pure; it
// does not guard against CanSave being false — that check is the caller's.
func (d *Draft) BuildPayload() models.SessionPayload {
	performedAt := d.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now()
	}

	p := models.SessionPayload{
		TrainingDayID: d.TrainingDayID,
		PerformedAt:   performedAt.UTC().Format(time.RFC3339),
		Exercises:     make([]models.SessionExercise, 0, len(d.Items)),
	}
	if strings.TrimSpace(d.Notes) != "" {
		notes := d.Notes
		p.Notes = &notes
	}

	for _, it := range d.Items {
		if len(it.Sets) == 0 {
			continue
		}
		ex := models.SessionExercise{
			ExerciseID: it.ExerciseID,
			Sets:       make([]models.SessionSet, 0, len(it.Sets)),
		}
		for _, row := range it.Sets {
			set := models.SessionSet{Unit: row.Unit}
			if row.Reps != nil {
				v := *row.Reps
				set.Reps = &v
			}
			if row.Unit != models.UnitBodyweight && row.Load != nil {
				v := *row.Load
				set.Weight = &v
			}
			ex.Sets = append(ex.Sets, set)
		}
		p.Exercises = append(p.Exercises, ex)
	}
	return p
}
