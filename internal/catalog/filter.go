package catalog

import (
	"strings"

	"github.com/claude/treinolog/internal/models"
)

// Filter narrows a fetched catalog slice the way the list view does: a
// case-insensitive substring match on the name and an exact muscle-group
// match. Empty arguments match everything.
func Filter(items []models.Exercise, query, muscle string) []models.Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Exercise, 0, len(items))
	for _, ex := range items {
		if q != "" && !strings.Contains(strings.ToLower(ex.Name), q) {
			continue
		}
		if muscle != "" && ex.MuscleGroup != muscle {
			continue
		}
		out = append(out, ex)
	}
	return out
}
