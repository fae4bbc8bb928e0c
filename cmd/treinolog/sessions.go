package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/claude/treinolog/internal/api"
	"github.com/claude/treinolog/internal/catalog"
	"github.com/claude/treinolog/internal/dayplan"
	"github.com/claude/treinolog/internal/models"
	"github.com/claude/treinolog/internal/session"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// setSpec is one parsed -set argument.
type setSpec struct {
	ExerciseID string
	Reps       *int
	Load       *float64
	Unit       *models.WeightUnit
}

// parseSetSpec parses "exerciseId:reps:load[:unit]". Empty reps/load fields
// stay unset and save as null; an empty or missing unit keeps the exercise's
// base unit.
func parseSetSpec(spec string) (setSpec, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return setSpec{}, fmt.Errorf("set %q: want exerciseId:reps:load[:unit]", spec)
	}
	out := setSpec{ExerciseID: parts[0]}
	if out.ExerciseID == "" {
		return setSpec{}, fmt.Errorf("set %q: empty exercise id", spec)
	}

	if parts[1] != "" {
		reps, err := strconv.Atoi(parts[1])
		if err != nil || reps < 0 {
			return setSpec{}, fmt.Errorf("set %q: bad reps %q", spec, parts[1])
		}
		out.Reps = &reps
	}
	if parts[2] != "" {
		load, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || load < 0 {
			return setSpec{}, fmt.Errorf("set %q: bad load %q", spec, parts[2])
		}
		out.Load = &load
	}
	if len(parts) == 4 && parts[3] != "" {
		unit := models.WeightUnit(parts[3])
		if !unit.Valid() {
			return setSpec{}, fmt.Errorf("set %q: bad unit %q", spec, parts[3])
		}
		out.Unit = &unit
	}
	return out, nil
}

func cmdDayCreate(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("day-create", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	label := fs.String("label", "", "day label (required)")
	var exerciseIDs stringList
	fs.Var(&exerciseIDs, "exercise", "exercise id, repeatable; order given is the day order")
	_ = fs.Parse(args)

	if *label == "" {
		return fmt.Errorf("-label is required")
	}
	if len(exerciseIDs) == 0 {
		return fmt.Errorf("at least one -exercise is required")
	}

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()
	warnIfExpired(a, log)

	plan := dayplan.Plan{Label: *label}
	for _, id := range exerciseIDs {
		ex, err := a.client.GetExercise(ctx, id)
		if err != nil {
			return fmt.Errorf("resolving exercise %s: %w", id, err)
		}
		if !plan.Add(ex) {
			log.Warn("exercise listed twice, keeping first position", "id", id)
		}
	}
	if !plan.CanSave() {
		return fmt.Errorf("nothing to save")
	}

	dayID, err := a.client.CreateTrainingDay(ctx, plan.Build())
	if err != nil {
		return err
	}
	_ = a.state.SetDayLabel(dayID, *label)
	log.Info("training day created", "id", dayID, "label", *label)
	return nil
}

func cmdLog(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	dayID := fs.String("day", "", "training day id (required)")
	notes := fs.String("notes", "", "session notes")
	at := fs.String("at", "", "performed-at timestamp (RFC 3339, default now)")
	var setSpecs stringList
	fs.Var(&setSpecs, "set", "logged set as exerciseId:reps:load[:unit], repeatable")
	_ = fs.Parse(args)

	if *dayID == "" {
		return fmt.Errorf("-day is required")
	}
	if len(setSpecs) == 0 {
		return fmt.Errorf("at least one -set is required")
	}

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()
	warnIfExpired(a, log)

	idx := catalog.New()
	if err := catalog.LoadAll(ctx, a.client, idx, 100); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	draft := &session.Draft{Notes: *notes}
	if *at != "" {
		ts, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			return fmt.Errorf("parsing -at: %w", err)
		}
		draft.PerformedAt = ts
	}

	if err := draft.SeedFromDay(ctx, a.client, idx, *dayID); err != nil {
		return err
	}

	for _, spec := range setSpecs {
		parsed, err := parseSetSpec(spec)
		if err != nil {
			return err
		}
		setID, ok := draft.AddSet(parsed.ExerciseID)
		if !ok {
			return fmt.Errorf("exercise %s is not part of that day", parsed.ExerciseID)
		}
		draft.UpdateSet(parsed.ExerciseID, setID, session.SetPatch{
			Reps: parsed.Reps,
			Load: parsed.Load,
			Unit: parsed.Unit,
		})
	}

	if !draft.CanSave() {
		return fmt.Errorf("nothing to save: no sets were staged")
	}

	sessionID, err := a.client.CreateTrainingSession(ctx, draft.BuildPayload())
	if err != nil {
		return err
	}
	log.Info("session saved", "id", sessionID, "day", *dayID, "sets", len(setSpecs))
	return nil
}

func cmdRecent(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("recent", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	limit := fs.Int("limit", 5, "sessions to show")
	_ = fs.Parse(args)

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()
	warnIfExpired(a, log)

	page, err := a.client.ListTrainingSessions(ctx, api.SessionFilters{Limit: *limit, Sort: "desc"})
	if err != nil {
		return err
	}

	for _, s := range page.Items {
		title := s.Title
		if title == "" {
			// Day labels are memoized locally; only misses hit the API.
			if label, err := a.state.ResolveDayLabel(ctx, a.client, s.TrainingDayID); err == nil {
				title = label
			} else {
				title = s.TrainingDayID
			}
		}
		fmt.Printf("%s  %-24s %s\n", s.ID, title, s.PerformedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
