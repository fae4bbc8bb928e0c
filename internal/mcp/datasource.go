package mcp

import (
	"context"

	"github.com/claude/treinolog/internal/api"
	"github.com/claude/treinolog/internal/models"
)

// DataSource abstracts the API surface the MCP tools need. Satisfied by
// *api.Client; tests substitute an in-memory fake.
type DataSource interface {
	ListExercises(ctx context.Context, search, muscle string, limit int, cursor string) (models.ExercisePage, error)
	ListTrainingDays(ctx context.Context) ([]models.TrainingDayRef, error)
	GetTrainingDay(ctx context.Context, id string) (models.TrainingDayDetail, error)
	ListTrainingSessions(ctx context.Context, f api.SessionFilters) (models.SessionPage, error)
}

// Compile-time check: *api.Client satisfies DataSource.
var _ DataSource = (*api.Client)(nil)
