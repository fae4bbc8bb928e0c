package state

import (
	"context"

	"github.com/claude/treinolog/internal/models"
)

// LabelSource fetches a training day when its label is not cached yet.
// Satisfied by the API client.
type LabelSource interface {
	GetTrainingDay(ctx context.Context, id string) (models.TrainingDayDetail, error)
}

// ResolveDayLabel returns a day's label, hitting the API only on a cache
// miss. Fetched labels are cached for subsequent lookups; a failed cache
// write does not fail the resolution.
func (s *DB) ResolveDayLabel(ctx context.Context, src LabelSource, dayID string) (string, error) {
	if label, ok, err := s.DayLabel(dayID); err == nil && ok {
		return label, nil
	}
	day, err := src.GetTrainingDay(ctx, dayID)
	if err != nil {
		return "", err
	}
	_ = s.SetDayLabel(dayID, day.Label)
	return day.Label, nil
}
