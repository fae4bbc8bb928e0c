package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/claude/treinolog/internal/models"
)

// ListExercises fetches one catalog page. search is a substring filter on the
// name, muscle an exact group filter; both may be empty. cursor is the opaque
// continuation token from the previous page ("" for the first).
func (c *Client) ListExercises(ctx context.Context, search, muscle string, limit int, cursor string) (models.ExercisePage, error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	if muscle != "" {
		params.Set("muscle", muscle)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	var resp struct {
		Items      []models.ExerciseDTO `json:"items"`
		NextCursor *string              `json:"nextCursor"`
	}
	if err := c.do(ctx, http.MethodGet, "/exercises", params, nil, &resp); err != nil {
		return models.ExercisePage{}, err
	}

	page := models.ExercisePage{Items: make([]models.Exercise, 0, len(resp.Items))}
	for _, d := range resp.Items {
		page.Items = append(page.Items, d.Normalize())
	}
	if resp.NextCursor != nil {
		page.NextCursor = *resp.NextCursor
	}
	return page, nil
}

// GetExercise fetches a single exercise by id.
func (c *Client) GetExercise(ctx context.Context, id string) (models.Exercise, error) {
	var d models.ExerciseDTO
	if err := c.do(ctx, http.MethodGet, "/exercises/"+url.PathEscape(id), nil, nil, &d); err != nil {
		return models.Exercise{}, err
	}
	return d.Normalize(), nil
}

// CreateExercise registers a new catalog exercise.
func (c *Client) CreateExercise(ctx context.Context, in models.ExerciseCreate) (models.Exercise, error) {
	var d models.ExerciseDTO
	if err := c.do(ctx, http.MethodPost, "/exercises", nil, in, &d); err != nil {
		return models.Exercise{}, err
	}
	return d.Normalize(), nil
}

// UpdateExercise applies a partial update.
func (c *Client) UpdateExercise(ctx context.Context, id string, patch models.ExercisePatch) (models.Exercise, error) {
	var d models.ExerciseDTO
	if err := c.do(ctx, http.MethodPatch, "/exercises/"+url.PathEscape(id), nil, patch, &d); err != nil {
		return models.Exercise{}, err
	}
	return d.Normalize(), nil
}

// DeleteExercise removes an exercise from the catalog.
func (c *Client) DeleteExercise(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/exercises/"+url.PathEscape(id), nil, nil, nil)
}
