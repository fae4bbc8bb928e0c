// Package dayplan builds a new training day: an ordered list of catalog
// exercises composed in memory, then flattened into the create payload.
package dayplan

import (
	"github.com/claude/treinolog/internal/models"
	"github.com/google/uuid"
)

// Item is one planned slot. ID is a local handle for move/remove; name and
// muscle group are kept only for display.
type Item struct {
	ID          string
	ExerciseID  string
	Name        string
	MuscleGroup string
}

// Plan is an in-memory training day under composition.
type Plan struct {
	Label string
	Notes string
	Items []Item
}

// Add appends an exercise to the plan. An exercise already in the plan is
// rejected — a day lists each exercise at most once.
func (p *Plan) Add(ex models.Exercise) bool {
	for _, it := range p.Items {
		if it.ExerciseID == ex.ID {
			return false
		}
	}
	p.Items = append(p.Items, Item{
		ID:          uuid.NewString(),
		ExerciseID:  ex.ID,
		Name:        ex.Name,
		MuscleGroup: ex.MuscleGroup,
	})
	return true
}

// Remove deletes the slot with the given local id.
func (p *Plan) Remove(id string) bool {
	for i := range p.Items {
		if p.Items[i].ID == id {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Move swaps the slot with its neighbor: dir -1 moves it up, +1 down. Moves
// past either end are a no-op.
func (p *Plan) Move(id string, dir int) bool {
	if dir != -1 && dir != 1 {
		return false
	}
	for i := range p.Items {
		if p.Items[i].ID != id {
			continue
		}
		j := i + dir
		if j < 0 || j >= len(p.Items) {
			return false
		}
		p.Items[i], p.Items[j] = p.Items[j], p.Items[i]
		return true
	}
	return false
}

// Clear discards all slots.
func (p *Plan) Clear() {
	p.Items = nil
}

// CanSave reports whether the plan is submittable: a non-empty label and at
// least one slot.
func (p *Plan) CanSave() bool {
	return p.Label != "" && len(p.Items) > 0
}

// Build flattens the plan into the create payload. Order is the current list
// position, dense from zero.
func (p *Plan) Build() models.TrainingDayCreate {
	out := models.TrainingDayCreate{
		Label:     p.Label,
		Exercises: make([]models.DayExerciseRef, 0, len(p.Items)),
	}
	for i, it := range p.Items {
		out.Exercises = append(out.Exercises, models.DayExerciseRef{
			ExerciseID: it.ExerciseID,
			Order:      i,
		})
	}
	return out
}
