package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/treinolog/internal/api"
)

func cmdRegister(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	name := fs.String("name", "", "display name (optional)")
	email := fs.String("email", "", "account email (required)")
	password := fs.String("password", "", "account password (required)")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("-email and -password are required")
	}

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()

	user, token, err := a.client.Register(ctx, *name, *email, *password)
	if err != nil {
		return err
	}
	if token != "" {
		if err := a.state.SetToken(token); err != nil {
			return err
		}
	}
	log.Info("account created", "id", user.ID, "email", user.Email)
	return nil
}

func cmdLogin(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	email := fs.String("email", "", "account email (required)")
	password := fs.String("password", "", "account password (required)")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("-email and -password are required")
	}

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()

	user, token, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("server returned no token")
	}
	if err := a.state.SetToken(token); err != nil {
		return err
	}
	log.Info("logged in", "email", user.Email)
	return nil
}

func cmdLogout(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	_ = fs.Parse(args)

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()

	// Best-effort server-side; the local token goes away regardless.
	a.client.Logout(ctx)
	if err := a.state.ClearToken(); err != nil {
		return err
	}
	log.Info("logged out")
	return nil
}

func cmdMe(ctx context.Context, args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("me", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	_ = fs.Parse(args)

	a, err := newApp(*configPath, log)
	if err != nil {
		return err
	}
	defer a.Close()

	warnIfExpired(a, log)

	user, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	name := ""
	if user.Name != nil {
		name = *user.Name
	}
	fmt.Printf("%s  %s  %s\n", user.ID, user.Email, name)
	return nil
}

// warnIfExpired inspects the stored token's exp claim so the user learns
// about a stale login before the request bounces.
func warnIfExpired(a *app, log *slog.Logger) {
	tok, err := a.state.Token()
	if err != nil || tok == "" {
		return
	}
	if api.TokenExpired(tok, time.Now()) {
		log.Warn("stored token is expired; run 'treinolog login'")
	}
}
