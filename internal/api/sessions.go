package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/claude/treinolog/internal/models"
)

// SessionFilters narrow a session listing. Zero values mean "no filter"; the
// server caps Limit at 100.
type SessionFilters struct {
	TrainingDayID string
	ExerciseID    string
	From          string // ISO date or date-time
	To            string
	Page          int
	Limit         int
	Sort          string // "asc" | "desc"
}

// CreateTrainingSession submits a save payload built by the draft and returns
// the new session's id.
func (c *Client) CreateTrainingSession(ctx context.Context, p models.SessionPayload) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/training-sessions", nil, p, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// ListTrainingSessions pages through logged sessions.
func (c *Client) ListTrainingSessions(ctx context.Context, f SessionFilters) (models.SessionPage, error) {
	params := url.Values{}
	if f.TrainingDayID != "" {
		params.Set("trainingDayId", f.TrainingDayID)
	}
	if f.ExerciseID != "" {
		params.Set("exerciseId", f.ExerciseID)
	}
	if f.From != "" {
		params.Set("from", f.From)
	}
	if f.To != "" {
		params.Set("to", f.To)
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}

	var page models.SessionPage
	if err := c.do(ctx, http.MethodGet, "/training-sessions", params, nil, &page); err != nil {
		return models.SessionPage{}, err
	}
	if page.Limit == 0 {
		page.Limit = len(page.Items)
	}
	if page.Page == 0 {
		page.Page = 1
	}
	return page, nil
}
