package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/claude/treinolog/internal/models"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func unitPtr(u models.WeightUnit) *models.WeightUnit { return &u }

// twoExerciseDay returns an expanded day with exercises A and B.
func twoExerciseDay() ExpandedDay {
	return ExpandedDay{
		ID:    "d1",
		Label: "Full Body",
		Exercises: []ResolvedExercise{
			{ExerciseID: "a", Name: "Supino reto", MuscleGroup: "peito", BaseUnit: models.UnitKg, Order: 0},
			{ExerciseID: "b", Name: "Remada curvada", MuscleGroup: "costas", BaseUnit: models.UnitKg, Order: 1},
		},
	}
}

// TestSeedReplacesItems verifies that reseeding fully replaces the item list:
// no set row survives a day change, even for an exercise present in both days.
func TestSeedReplacesItems(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())

	setID, ok := d.AddSet("a")
	if !ok {
		t.Fatal("AddSet(a) failed")
	}
	d.UpdateSet("a", setID, SetPatch{Reps: intPtr(10), Load: floatPtr(50)})

	// New day also contains exercise "a".
	d.Seed(ExpandedDay{
		ID: "d2",
		Exercises: []ResolvedExercise{
			{ExerciseID: "a", Name: "Supino reto", BaseUnit: models.UnitKg},
		},
	})

	if d.TrainingDayID != "d2" {
		t.Errorf("TrainingDayID = %q, want d2", d.TrainingDayID)
	}
	if len(d.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(d.Items))
	}
	if got := len(d.Items[0].Sets); got != 0 {
		t.Errorf("sets survived reseed: %d rows", got)
	}
}

// TestAddSetUsesBaseUnit verifies new rows start empty with the item's
// seed-time base unit.
func TestAddSetUsesBaseUnit(t *testing.T) {
	d := &Draft{}
	d.Seed(ExpandedDay{
		ID: "d1",
		Exercises: []ResolvedExercise{
			{ExerciseID: "a", Name: "Barra fixa", BaseUnit: models.UnitBodyweight},
		},
	})

	if _, ok := d.AddSet("a"); !ok {
		t.Fatal("AddSet(a) failed")
	}
	row := d.Items[0].Sets[0]
	if row.Unit != models.UnitBodyweight {
		t.Errorf("unit = %q, want bodyweight", row.Unit)
	}
	if row.Reps != nil || row.Load != nil {
		t.Error("new row should have unset reps and load")
	}
	if row.ID == "" {
		t.Error("new row should have an id")
	}
}

// TestAddSetUnknownExercise verifies AddSet is a no-op for exercises outside
// the draft.
func TestAddSetUnknownExercise(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())

	if _, ok := d.AddSet("nope"); ok {
		t.Error("AddSet(nope) = ok, want no-op")
	}
	for _, it := range d.Items {
		if len(it.Sets) != 0 {
			t.Errorf("item %s gained a set", it.ExerciseID)
		}
	}
}

// TestUpdateSetExactMatch verifies a patch lands only on the row whose
// exercise id AND set id both match.
func TestUpdateSetExactMatch(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())

	idA, _ := d.AddSet("a")
	idB, _ := d.AddSet("b")

	// Right set id, wrong exercise: must not touch anything.
	if d.UpdateSet("b", idA, SetPatch{Reps: intPtr(99)}) {
		t.Error("UpdateSet(b, idA) = true, want false")
	}
	if d.Items[0].Sets[0].Reps != nil || d.Items[1].Sets[0].Reps != nil {
		t.Fatal("mismatched patch corrupted a row")
	}

	if !d.UpdateSet("b", idB, SetPatch{Reps: intPtr(8)}) {
		t.Fatal("UpdateSet(b, idB) failed")
	}
	if d.Items[0].Sets[0].Reps != nil {
		t.Error("patch to b leaked into a")
	}
	if got := d.Items[1].Sets[0].Reps; got == nil || *got != 8 {
		t.Errorf("b reps = %v, want 8", got)
	}
}

// TestUpdateSetClear verifies the Clear flags reset fields to unset.
func TestUpdateSetClear(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())
	id, _ := d.AddSet("a")
	d.UpdateSet("a", id, SetPatch{Reps: intPtr(10), Load: floatPtr(40)})

	d.UpdateSet("a", id, SetPatch{ClearReps: true, ClearLoad: true})
	row := d.Items[0].Sets[0]
	if row.Reps != nil || row.Load != nil {
		t.Errorf("cleared row = reps %v load %v, want both nil", row.Reps, row.Load)
	}
}

// TestRemoveSetKeepsItem verifies removing the only row keeps the item in the
// draft with an empty set list, while the payload omits it.
func TestRemoveSetKeepsItem(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())

	idA, _ := d.AddSet("a")
	d.UpdateSet("a", idA, SetPatch{Reps: intPtr(10)})
	idB, _ := d.AddSet("b")
	d.UpdateSet("b", idB, SetPatch{Reps: intPtr(5)})

	if !d.RemoveSet("a", idA) {
		t.Fatal("RemoveSet failed")
	}

	if len(d.Items) != 2 {
		t.Fatalf("items = %d, want 2 (items are never auto-removed)", len(d.Items))
	}
	if len(d.Items[0].Sets) != 0 {
		t.Errorf("item a sets = %d, want 0", len(d.Items[0].Sets))
	}

	p := d.BuildPayload()
	if len(p.Exercises) != 1 || p.Exercises[0].ExerciseID != "b" {
		t.Errorf("payload exercises = %+v, want only b", p.Exercises)
	}
}

// TestCanSave verifies the save predicate across the draft lifecycle.
func TestCanSave(t *testing.T) {
	d := &Draft{}
	if d.CanSave() {
		t.Error("empty draft: CanSave = true")
	}

	d.Seed(twoExerciseDay())
	if d.CanSave() {
		t.Error("seeded draft with no sets: CanSave = true")
	}

	id, _ := d.AddSet("a")
	if !d.CanSave() {
		t.Error("draft with one set: CanSave = false (empty item b must not block)")
	}

	d.RemoveSet("a", id)
	if d.CanSave() {
		t.Error("draft back to zero sets: CanSave = true")
	}

	// No day selected: never savable, sets or not.
	d2 := &Draft{Items: []Item{{ExerciseID: "a", Sets: []SetRow{{ID: "s"}}}}}
	if d2.CanSave() {
		t.Error("draft without a day: CanSave = true")
	}
}

// TestBuildPayloadFiltersEmptyItems covers the concrete scenario: one set on
// A, none on B → payload has exactly one entry, for A.
func TestBuildPayloadFiltersEmptyItems(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())

	id, _ := d.AddSet("a")
	d.UpdateSet("a", id, SetPatch{Reps: intPtr(10), Load: floatPtr(50), Unit: unitPtr(models.UnitKg)})

	if !d.CanSave() {
		t.Fatal("CanSave = false")
	}

	p := d.BuildPayload()
	if p.TrainingDayID != "d1" {
		t.Errorf("trainingDayId = %q, want d1", p.TrainingDayID)
	}
	if len(p.Exercises) != 1 {
		t.Fatalf("payload exercises = %d, want 1", len(p.Exercises))
	}
	ex := p.Exercises[0]
	if ex.ExerciseID != "a" {
		t.Errorf("exerciseId = %q, want a", ex.ExerciseID)
	}
	if len(ex.Sets) != 1 {
		t.Fatalf("sets = %d, want 1", len(ex.Sets))
	}
	set := ex.Sets[0]
	if set.Reps == nil || *set.Reps != 10 {
		t.Errorf("reps = %v, want 10", set.Reps)
	}
	if set.Weight == nil || *set.Weight != 50 {
		t.Errorf("weight = %v, want 50", set.Weight)
	}
	if set.Unit != models.UnitKg {
		t.Errorf("unit = %q, want kg", set.Unit)
	}
}

// TestBuildPayloadBodyweightNullsLoad verifies that a bodyweight set always
// saves weight null, even when a stray load value was typed first.
func TestBuildPayloadBodyweightNullsLoad(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())

	id, _ := d.AddSet("a")
	// User types a load, then flips the unit to bodyweight.
	d.UpdateSet("a", id, SetPatch{Reps: intPtr(12), Load: floatPtr(75)})
	d.UpdateSet("a", id, SetPatch{Unit: unitPtr(models.UnitBodyweight)})

	set := d.BuildPayload().Exercises[0].Sets[0]
	if set.Weight != nil {
		t.Errorf("weight = %v, want null for bodyweight", *set.Weight)
	}
	if set.Reps == nil || *set.Reps != 12 {
		t.Errorf("reps = %v, want 12", set.Reps)
	}
	if set.Unit != models.UnitBodyweight {
		t.Errorf("unit = %q, want bodyweight", set.Unit)
	}

	// The stored row keeps the stray value; only the payload normalizes.
	if d.Items[0].Sets[0].Load == nil {
		t.Error("stored load was erased; normalization should happen at build time only")
	}
}

// TestBuildPayloadUnsetFieldsAreNull verifies unset reps/load serialize as
// explicit JSON nulls, not omitted fields.
func TestBuildPayloadUnsetFieldsAreNull(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())
	d.AddSet("a")

	data, err := json.Marshal(d.BuildPayload())
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Exercises []struct {
			Sets []map[string]json.RawMessage `json:"sets"`
		} `json:"exercises"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	set := decoded.Exercises[0].Sets[0]
	for _, field := range []string{"reps", "weight"} {
		raw, ok := set[field]
		if !ok {
			t.Fatalf("%s missing from wire set; want explicit null", field)
		}
		if string(raw) != "null" {
			t.Errorf("%s = %s, want null", field, raw)
		}
	}
}

// TestBuildPayloadNotes verifies blank notes are omitted and real notes pass
// through.
func TestBuildPayloadNotes(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())
	d.AddSet("a")

	for _, blank := range []string{"", "   ", "\t\n"} {
		d.Notes = blank
		if p := d.BuildPayload(); p.Notes != nil {
			t.Errorf("notes %q: payload notes = %q, want omitted", blank, *p.Notes)
		}
	}

	d.Notes = "treino pesado"
	p := d.BuildPayload()
	if p.Notes == nil || *p.Notes != "treino pesado" {
		t.Errorf("notes = %v, want 'treino pesado'", p.Notes)
	}
}

// TestBuildPayloadIdempotent verifies two builds without intervening mutation
// are byte-identical when the draft carries an explicit timestamp.
func TestBuildPayloadIdempotent(t *testing.T) {
	d := &Draft{PerformedAt: time.Date(2025, 11, 3, 18, 30, 0, 0, time.UTC)}
	d.Seed(twoExerciseDay())
	id, _ := d.AddSet("a")
	d.UpdateSet("a", id, SetPatch{Reps: intPtr(10), Load: floatPtr(50)})
	d.Notes = "ok"

	first, err := json.Marshal(d.BuildPayload())
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(d.BuildPayload())
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("payloads differ:\n%s\n%s", first, second)
	}

	if got := d.BuildPayload().PerformedAt; got != "2025-11-03T18:30:00Z" {
		t.Errorf("performedAt = %q, want 2025-11-03T18:30:00Z", got)
	}
}

// TestBuildPayloadDefaultsTimestamp verifies a zero PerformedAt defaults to
// "now" at build time.
func TestBuildPayloadDefaultsTimestamp(t *testing.T) {
	d := &Draft{}
	d.Seed(twoExerciseDay())
	d.AddSet("a")

	before := time.Now().UTC().Add(-time.Second)
	got, err := time.Parse(time.RFC3339, d.BuildPayload().PerformedAt)
	if err != nil {
		t.Fatalf("performedAt did not parse: %v", err)
	}
	after := time.Now().UTC().Add(time.Second)
	if got.Before(before) || got.After(after) {
		t.Errorf("performedAt = %v, want between %v and %v", got, before, after)
	}
}
