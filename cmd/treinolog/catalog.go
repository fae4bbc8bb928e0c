package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/claude/treinolog/internal/catalog"
	"github.com/claude/treinolog/internal/models"
	"github.com/claude/treinolog/internal/session"
)

func cmdExercises(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("exercises", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	search := fs.String("search", "", "substring filter on the name")
	muscle := fs.String("muscle", "", "exact muscle group filter")
	limit := fs.Int("limit", 50, "page size")
	all := fs.Bool("all", false, "follow pagination to the end")
	_ = fs.Parse(args)

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()
	warnIfExpired(a, log)

	cursor := ""
	for {
		page, err := a.client.ListExercises(ctx, *search, *muscle, *limit, cursor)
		if err != nil {
			return err
		}
		for _, ex := range page.Items {
			printExercise(ex)
		}
		if !*all || page.NextCursor == "" {
			if page.NextCursor != "" {
				fmt.Printf("… more available (cursor %s; rerun with -all)\n", page.NextCursor)
			}
			return nil
		}
		cursor = page.NextCursor
	}
}

func printExercise(ex models.Exercise) {
	group := ex.MuscleGroup
	if group == "" {
		group = "-"
	}
	fmt.Printf("%s  %-30s %-14s %s\n", ex.ID, ex.Name, group, ex.WeightUnit)
}

func cmdExerciseAdd(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("exercise-add", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	name := fs.String("name", "", "exercise name (required)")
	muscle := fs.String("muscle", "", "muscle group")
	unit := fs.String("unit", "kg", "weight unit: kg, stack, or bodyweight")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("-name is required")
	}
	u := models.WeightUnit(*unit)
	if !u.Valid() {
		return fmt.Errorf("invalid unit %q", *unit)
	}

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()
	warnIfExpired(a, log)

	ex, err := a.client.CreateExercise(ctx, models.ExerciseCreate{
		Name:        *name,
		MuscleGroup: *muscle,
		WeightUnit:  u,
	})
	if err != nil {
		return err
	}
	log.Info("exercise created", "id", ex.ID, "name", ex.Name)
	return nil
}

func cmdDays(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("days", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	_ = fs.Parse(args)

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()
	warnIfExpired(a, log)

	days, err := a.client.ListTrainingDays(ctx)
	if err != nil {
		return err
	}
	for _, d := range days {
		fmt.Printf("%s  %s\n", d.ID, d.Label)
	}
	return nil
}

func cmdDay(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("day", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	id := fs.String("id", "", "training day id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()
	warnIfExpired(a, log)

	idx := catalog.New()
	if err := catalog.LoadAll(ctx, a.client, idx, 100); err != nil {
		return err
	}

	day, err := session.ExpandDay(ctx, a.client, idx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", day.ID, day.Label)
	for i, ex := range day.Exercises {
		group := ex.MuscleGroup
		if group == "" {
			group = "-"
		}
		fmt.Printf("  %d. %-30s %-14s %s\n", i+1, ex.Name, group, ex.BaseUnit)
	}
	return nil
}
