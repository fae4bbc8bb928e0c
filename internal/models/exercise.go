package models

// WeightUnit is the canonical load unit for an exercise or a logged set.
type WeightUnit string

const (
	UnitKg         WeightUnit = "kg"
	UnitStack      WeightUnit = "stack"
	UnitBodyweight WeightUnit = "bodyweight"
)

// Valid reports whether u is one of the canonical units.
func (u WeightUnit) Valid() bool {
	switch u {
	case UnitKg, UnitStack, UnitBodyweight:
		return true
	}
	return false
}

// Exercise is a catalog entry as the client sees it: normalized, with
// muscle group and unit always populated.
type Exercise struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	MuscleGroup string     `json:"muscleGroup"`
	WeightUnit  WeightUnit `json:"weightUnit"`
}

// ExerciseDTO is the raw shape the API returns. Older records carry the ID
// under "_id" and may omit muscle group and unit entirely.
type ExerciseDTO struct {
	ID          string      `json:"id"`
	LegacyID    string      `json:"_id"`
	Name        string      `json:"name"`
	MuscleGroup *string     `json:"muscleGroup"`
	WeightUnit  *WeightUnit `json:"weightUnit"`
}

// Normalize converts a DTO into a fully-populated Exercise: muscle group
// defaults to the empty string, unit defaults to kg.
func (d ExerciseDTO) Normalize() Exercise {
	ex := Exercise{
		ID:         d.ID,
		Name:       d.Name,
		WeightUnit: UnitKg,
	}
	if ex.ID == "" {
		ex.ID = d.LegacyID
	}
	if d.MuscleGroup != nil {
		ex.MuscleGroup = *d.MuscleGroup
	}
	if d.WeightUnit != nil && d.WeightUnit.Valid() {
		ex.WeightUnit = *d.WeightUnit
	}
	return ex
}

// ExercisePage is one cursor-paginated batch of exercises. An empty
// NextCursor means the listing is exhausted.
type ExercisePage struct {
	Items      []Exercise
	NextCursor string
}

// ExerciseCreate is the body for POST /exercises.
type ExerciseCreate struct {
	Name        string     `json:"name"`
	MuscleGroup string     `json:"muscleGroup"`
	WeightUnit  WeightUnit `json:"weightUnit"`
}

// ExercisePatch is the body for PATCH /exercises/{id}. Nil fields are left
// untouched server-side.
type ExercisePatch struct {
	Name        *string     `json:"name,omitempty"`
	MuscleGroup *string     `json:"muscleGroup,omitempty"`
	WeightUnit  *WeightUnit `json:"weightUnit,omitempty"`
}
