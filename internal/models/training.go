package models

import "time"

// TrainingDayRef is the list-view shape of a training day (id + label only).
type TrainingDayRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DayExerciseRef is one exercise slot inside a training day. Order is a sort
// key, not an array index: values are usually dense from 0 but gaps are legal.
type DayExerciseRef struct {
	ExerciseID string `json:"exerciseId"`
	Order      int    `json:"order"`
}

// TrainingDayDetail is a full training day: label plus its ordered exercise
// references. Fetched whole, never partially mutated on the client.
type TrainingDayDetail struct {
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Items []DayExerciseRef `json:"items"`
}

// TrainingDayCreate is the body for POST /training-days.
type TrainingDayCreate struct {
	Label     string           `json:"label"`
	Exercises []DayExerciseRef `json:"exercises"`
}

// SessionSet is one normalized set in a session save payload. Reps and Weight
// serialize as explicit nulls when unset, which the API distinguishes from
// absent fields.
type SessionSet struct {
	Reps   *int       `json:"reps"`
	Weight *float64   `json:"weight"`
	Unit   WeightUnit `json:"unit"`
}

// SessionExercise groups the sets logged against one exercise.
type SessionExercise struct {
	ExerciseID string       `json:"exerciseId"`
	Sets       []SessionSet `json:"sets"`
}

// SessionPayload is the body for POST /training-sessions, exactly as produced
// by the draft builder. Notes is omitted (not sent as "") when blank.
type SessionPayload struct {
	TrainingDayID string            `json:"trainingDayId"`
	PerformedAt   string            `json:"performedAt"`
	Notes         *string           `json:"notes,omitempty"`
	Exercises     []SessionExercise `json:"exercises"`
}

// TrainingSessionRef is the list-view shape of a logged session.
type TrainingSessionRef struct {
	ID            string    `json:"id"`
	TrainingDayID string    `json:"trainingDayId"`
	PerformedAt   time.Time `json:"performedAt"`
	Title         string    `json:"title,omitempty"`
	Volume        *float64  `json:"volume,omitempty"`
	DurationMin   *int      `json:"durationMin,omitempty"`
}

// SessionPage is one page of a session listing.
type SessionPage struct {
	Items []TrainingSessionRef `json:"items"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// User is the authenticated account identity.
type User struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}
