// Package apitest is an in-memory fake of the training REST API for tests.
// It speaks the same routes and JSON vintages as the real backend, including
// the legacy "_id" spelling on exercise records, so client code is exercised
// against realistic payloads without a network.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/claude/treinolog/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Token is the bearer credential the fake issues on login and expects on
// every authenticated route.
const Token = "test-token"

type exerciseRec struct {
	ID          string
	Name        string
	MuscleGroup string
	WeightUnit  string // "" = omitted in JSON, exercising client defaults
}

type dayRec struct {
	ID    string
	Label string
	Items []models.DayExerciseRef
}

type sessionRec struct {
	ID            string
	TrainingDayID string
	PerformedAt   string
	Raw           []byte
}

// Server is the fake API. Zero state; seed via the Seed* methods.
type Server struct {
	mu        sync.Mutex
	router    chi.Router
	email     string
	password  string
	exercises []exerciseRec
	days      []dayRec
	sessions  []sessionRec

	// FailExercises makes GET /exercises answer 500, for fetch-failure paths.
	FailExercises bool
}

// NewServer creates a fake with one registered account.
func NewServer(email, password string) *Server {
	s := &Server{email: email, password: password, router: chi.NewRouter()}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SeedExercise adds a catalog exercise and returns its id. An empty unit is
// omitted from list responses, exercising the client's kg default.
func (s *Server) SeedExercise(name, muscleGroup, unit string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.exercises = append(s.exercises, exerciseRec{ID: id, Name: name, MuscleGroup: muscleGroup, WeightUnit: unit})
	return id
}

// SeedDay adds a training day and returns its id.
func (s *Server) SeedDay(label string, items []models.DayExerciseRef) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.days = append(s.days, dayRec{ID: id, Label: label, Items: items})
	return id
}

// SessionBodies returns the raw JSON bodies received by POST
// /training-sessions, in arrival order.
func (s *Server) SessionBodies() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.sessions))
	for i, rec := range s.sessions {
		out[i] = rec.Raw
	}
	return out
}

func (s *Server) routes() {
	s.router.Post("/auth/register", s.handleRegister)
	s.router.Post("/auth/login", s.handleLogin)

	s.router.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/auth/protected", s.handleMe)
		r.Post("/auth/logout", s.handleLogout)

		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises", s.handleCreateExercise)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Patch("/exercises/{id}", s.handlePatchExercise)
		r.Delete("/exercises/{id}", s.handleDeleteExercise)

		r.Get("/training-days", s.handleListDays)
		r.Post("/training-days", s.handleCreateDay)
		r.Get("/training-days/{id}", s.handleGetDay)

		r.Get("/training-sessions", s.handleListSessions)
		r.Post("/training-sessions", s.handleCreateSession)
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth != "Bearer "+Token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing or invalid token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email and password required"})
		return
	}
	s.mu.Lock()
	s.email, s.password = body.Email, body.Password
	s.mu.Unlock()

	resp := map[string]any{"id": uuid.NewString(), "email": body.Email, "token": Token}
	if body.Name != "" {
		resp["name"] = body.Name
	} else {
		resp["name"] = nil
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	s.mu.Lock()
	ok := body.Email == s.email && body.Password == s.password
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": "u1", "name": nil, "email": body.Email, "token": Token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	email := s.email
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"id": "u1", "name": nil, "email": email})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// exerciseJSON renders a record the way the backend does: legacy "_id" key,
// muscle group and unit omitted when unset.
func exerciseJSON(rec exerciseRec) map[string]any {
	out := map[string]any{"_id": rec.ID, "name": rec.Name}
	if rec.MuscleGroup != "" {
		out["muscleGroup"] = rec.MuscleGroup
	}
	if rec.WeightUnit != "" {
		out["weightUnit"] = rec.WeightUnit
	}
	return out
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	if s.FailExercises {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "catalog unavailable"})
		return
	}

	q := r.URL.Query()
	search := strings.ToLower(q.Get("search"))
	muscle := q.Get("muscle")
	limit := 20
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(q.Get("cursor")); err == nil && v > 0 {
		offset = v
	}

	s.mu.Lock()
	var filtered []exerciseRec
	for _, rec := range s.exercises {
		if search != "" && !strings.Contains(strings.ToLower(rec.Name), search) {
			continue
		}
		if muscle != "" && rec.MuscleGroup != muscle {
			continue
		}
		filtered = append(filtered, rec)
	}
	s.mu.Unlock()

	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]map[string]any, 0, end-offset)
	for _, rec := range filtered[offset:end] {
		items = append(items, exerciseJSON(rec))
	}

	var next any
	if end < len(filtered) {
		next = strconv.Itoa(end)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "nextCursor": next})
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		MuscleGroup string `json:"muscleGroup"`
		WeightUnit  string `json:"weightUnit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}
	s.mu.Lock()
	rec := exerciseRec{ID: uuid.NewString(), Name: body.Name, MuscleGroup: body.MuscleGroup, WeightUnit: body.WeightUnit}
	s.exercises = append(s.exercises, rec)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, exerciseJSON(rec))
}

func (s *Server) findExercise(id string) (int, bool) {
	for i, rec := range s.exercises {
		if rec.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.findExercise(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, exerciseJSON(s.exercises[i]))
}

func (s *Server) handlePatchExercise(w http.ResponseWriter, r *http.Request) {
	var patch struct {
		Name        *string `json:"name"`
		MuscleGroup *string `json:"muscleGroup"`
		WeightUnit  *string `json:"weightUnit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.findExercise(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	if patch.Name != nil {
		s.exercises[i].Name = *patch.Name
	}
	if patch.MuscleGroup != nil {
		s.exercises[i].MuscleGroup = *patch.MuscleGroup
	}
	if patch.WeightUnit != nil {
		s.exercises[i].WeightUnit = *patch.WeightUnit
	}
	writeJSON(w, http.StatusOK, exerciseJSON(s.exercises[i]))
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.findExercise(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	s.exercises = append(s.exercises[:i], s.exercises[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListDays(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.days))
	for _, d := range s.days {
		out = append(out, map[string]any{"_id": d.ID, "label": d.Label})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateDay(w http.ResponseWriter, r *http.Request) {
	var body models.TrainingDayCreate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Label == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "label required"})
		return
	}
	s.mu.Lock()
	rec := dayRec{ID: uuid.NewString(), Label: body.Label, Items: body.Exercises}
	s.days = append(s.days, rec)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]string{"id": rec.ID})
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.days {
		if d.ID == id {
			writeJSON(w, http.StatusOK, map[string]any{"id": d.ID, "label": d.Label, "items": d.Items})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		return
	}
	var body struct {
		TrainingDayID string `json:"trainingDayId"`
		PerformedAt   string `json:"performedAt"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.TrainingDayID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "trainingDayId required"})
		return
	}
	s.mu.Lock()
	rec := sessionRec{ID: uuid.NewString(), TrainingDayID: body.TrainingDayID, PerformedAt: body.PerformedAt, Raw: raw}
	s.sessions = append(s.sessions, rec)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]string{"id": rec.ID})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	dayFilter := r.URL.Query().Get("trainingDayId")
	limit := 20
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		if v > 100 {
			v = 100
		}
		limit = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]map[string]any, 0, len(s.sessions))
	for _, rec := range s.sessions {
		if dayFilter != "" && rec.TrainingDayID != dayFilter {
			continue
		}
		if len(items) == limit {
			break
		}
		items = append(items, map[string]any{
			"_id":           rec.ID,
			"id":            rec.ID,
			"trainingDayId": rec.TrainingDayID,
			"performedAt":   rec.PerformedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items), "page": 1, "limit": limit})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
