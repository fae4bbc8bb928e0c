package models

import (
	"encoding/json"
	"testing"
)

// TestNormalizeDefaults verifies missing muscle group and unit get their
// defaults and the legacy "_id" key is honored.
func TestNormalizeDefaults(t *testing.T) {
	var dto ExerciseDTO
	raw := `{"_id":"abc123","name":"Supino reto"}`
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatal(err)
	}

	ex := dto.Normalize()
	if ex.ID != "abc123" {
		t.Errorf("id = %q, want abc123", ex.ID)
	}
	if ex.MuscleGroup != "" {
		t.Errorf("muscleGroup = %q, want empty", ex.MuscleGroup)
	}
	if ex.WeightUnit != UnitKg {
		t.Errorf("weightUnit = %q, want kg", ex.WeightUnit)
	}
}

// TestNormalizePrefersModernID verifies "id" wins over "_id" when both exist.
func TestNormalizePrefersModernID(t *testing.T) {
	dto := ExerciseDTO{ID: "new", LegacyID: "old", Name: "x"}
	if got := dto.Normalize().ID; got != "new" {
		t.Errorf("id = %q, want new", got)
	}
}

// TestNormalizeInvalidUnit verifies an unknown unit value falls back to kg.
func TestNormalizeInvalidUnit(t *testing.T) {
	bad := WeightUnit("lbs")
	dto := ExerciseDTO{ID: "a", Name: "x", WeightUnit: &bad}
	if got := dto.Normalize().WeightUnit; got != UnitKg {
		t.Errorf("weightUnit = %q, want kg fallback", got)
	}
}

// TestWeightUnitValid enumerates the canonical units.
func TestWeightUnitValid(t *testing.T) {
	for _, u := range []WeightUnit{UnitKg, UnitStack, UnitBodyweight} {
		if !u.Valid() {
			t.Errorf("%q reported invalid", u)
		}
	}
	for _, u := range []WeightUnit{"", "lbs", "KG"} {
		if u.Valid() {
			t.Errorf("%q reported valid", u)
		}
	}
}
