// Package session implements the training-session draft: expanding a
// training day into its ordered exercises, staging set rows in memory, and
// producing the normalized save payload for the API.
package session

import (
	"context"
	"fmt"
	"sort"

	"github.com/claude/treinolog/internal/catalog"
	"github.com/claude/treinolog/internal/models"
)

// placeholderName is shown when a day references an exercise that is no
// longer in the catalog (e.g. deleted server-side after the day was created).
const placeholderName = "Exercício"

// ResolvedExercise is one day slot joined with its catalog metadata.
type ResolvedExercise struct {
	ExerciseID  string
	Name        string
	MuscleGroup string
	BaseUnit    models.WeightUnit
	Order       int
}

// ExpandedDay is a training day ready for seeding a draft: slots sorted by
// their order key, metadata resolved.
type ExpandedDay struct {
	ID        string
	Label     string
	Exercises []ResolvedExercise
}

// DayFetcher fetches one training day. Satisfied by the API client.
type DayFetcher interface {
	GetTrainingDay(ctx context.Context, id string) (models.TrainingDayDetail, error)
}

// ExpandDay fetches a training day and resolves each exercise reference
// against the catalog index. Slots sort ascending by order; ties keep fetch
// order. A reference missing from the index gets the placeholder name and an
// empty muscle group rather than failing the expansion — only the fetch
// itself is all-or-nothing.
func ExpandDay(ctx context.Context, f DayFetcher, idx *catalog.Index, dayID string) (ExpandedDay, error) {
	day, err := f.GetTrainingDay(ctx, dayID)
	if err != nil {
		return ExpandedDay{}, fmt.Errorf("expanding day %s: %w", dayID, err)
	}

	refs := make([]models.DayExerciseRef, len(day.Items))
	copy(refs, day.Items)
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Order < refs[j].Order })

	out := ExpandedDay{
		ID:        day.ID,
		Label:     day.Label,
		Exercises: make([]ResolvedExercise, 0, len(refs)),
	}
	for _, ref := range refs {
		res := ResolvedExercise{
			ExerciseID: ref.ExerciseID,
			Name:       placeholderName,
			BaseUnit:   models.UnitKg,
			Order:      ref.Order,
		}
		if e, ok := idx.Lookup(ref.ExerciseID); ok {
			res.Name = e.Name
			res.MuscleGroup = e.MuscleGroup
			res.BaseUnit = e.WeightUnit
		}
		out.Exercises = append(out.Exercises, res)
	}
	return out, nil
}
