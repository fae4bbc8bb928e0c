package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/claude/treinolog/internal/api"
	"github.com/claude/treinolog/internal/config"
	"github.com/claude/treinolog/internal/state"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: treinolog [-config config.yaml] <command> [flags]

Commands:
  register       create an account and store the token
  login          authenticate and store the token
  logout         drop the server session and forget the token
  me             show the authenticated identity
  exercises      list the exercise catalog
  exercise-add   register a new exercise
  days           list training days
  day            show one training day expanded
  day-create     compose and save a new training day
  log            log a training session against a day
  recent         show recently logged sessions
  version        print version and exit

Run 'treinolog <command> -h' for command flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cmd, args := os.Args[1], os.Args[2:]
	if cmd == "version" {
		fmt.Println("treinolog", Version)
		return
	}

	run, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if err := run(context.Background(), args, log); err != nil {
		log.Error(cmd+" failed", "error", err)
		os.Exit(1)
	}
}

var commands = map[string]func(context.Context, []string, *slog.Logger) error{
	"register":     cmdRegister,
	"login":        cmdLogin,
	"logout":       cmdLogout,
	"me":           cmdMe,
	"exercises":    cmdExercises,
	"exercise-add": cmdExerciseAdd,
	"days":         cmdDays,
	"day":          cmdDay,
	"day-create":   cmdDayCreate,
	"log":          cmdLog,
	"recent":       cmdRecent,
}

// app bundles the pieces every command needs: config, the local state DB,
// and the API client wired to read its bearer token from that DB.
type app struct {
	cfg    *config.Config
	state  *state.DB
	client *api.Client
	log    *slog.Logger
}

func newApp(configPath string, log *slog.Logger) (*app, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	st, err := state.Open(cfg.State.Dir)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.API.BaseURL, st)
	if cfg.API.TimeoutSec > 0 {
		client.SetTimeout(time.Duration(cfg.API.TimeoutSec) * time.Second)
	}
	return &app{cfg: cfg, state: st, client: client, log: log}, nil
}

func (a *app) Close() {
	if err := a.state.Close(); err != nil {
		a.log.Warn("closing state db", "error", err)
	}
}
