package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/claude/treinolog/internal/models"
)

// dayDTO tolerates the API's two vintages of training-day JSON: id under
// "id" or "_id", the label under "label" or "name", and the exercise refs
// under "items" or "exercises".
type dayDTO struct {
	ID        string                  `json:"id"`
	LegacyID  string                  `json:"_id"`
	Label     string                  `json:"label"`
	Name      string                  `json:"name"`
	Items     []models.DayExerciseRef `json:"items"`
	Exercises []models.DayExerciseRef `json:"exercises"`
}

func (d dayDTO) id() string {
	if d.ID != "" {
		return d.ID
	}
	return d.LegacyID
}

func (d dayDTO) label() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

func (d dayDTO) refs() []models.DayExerciseRef {
	if d.Items != nil {
		return d.Items
	}
	return d.Exercises
}

// ListTrainingDays returns the current user's days (id + label).
func (c *Client) ListTrainingDays(ctx context.Context) ([]models.TrainingDayRef, error) {
	var raw []dayDTO
	if err := c.do(ctx, http.MethodGet, "/training-days", nil, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]models.TrainingDayRef, 0, len(raw))
	for _, d := range raw {
		out = append(out, models.TrainingDayRef{ID: d.id(), Label: d.label()})
	}
	return out, nil
}

// GetTrainingDay fetches one day with its ordered exercise references.
func (c *Client) GetTrainingDay(ctx context.Context, id string) (models.TrainingDayDetail, error) {
	var raw dayDTO
	if err := c.do(ctx, http.MethodGet, "/training-days/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return models.TrainingDayDetail{}, err
	}
	refs := raw.refs()
	if refs == nil {
		refs = []models.DayExerciseRef{}
	}
	return models.TrainingDayDetail{ID: raw.id(), Label: raw.label(), Items: refs}, nil
}

// CreateTrainingDay saves a new day and returns its id.
func (c *Client) CreateTrainingDay(ctx context.Context, in models.TrainingDayCreate) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/training-days", nil, in, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}
