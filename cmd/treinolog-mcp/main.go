package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/claude/treinolog/internal/api"
	"github.com/claude/treinolog/internal/config"
	"github.com/claude/treinolog/internal/mcp"
	"github.com/claude/treinolog/internal/state"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("treinolog-mcp", Version)
		return
	}

	// stdout is the MCP transport; logs must go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	st, err := state.Open(cfg.State.Dir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	tok, err := st.Token()
	if err != nil || tok == "" {
		log.Error("no stored token; run 'treinolog login' first")
		os.Exit(1)
	}
	if api.TokenExpired(tok, time.Now()) {
		log.Warn("stored token is expired; requests will likely fail")
	}

	client := api.New(cfg.API.BaseURL, st)
	if cfg.API.TimeoutSec > 0 {
		client.SetTimeout(time.Duration(cfg.API.TimeoutSec) * time.Second)
	}

	srv := mcp.New(client, Version, log)
	log.Info("treinolog MCP server starting", "api", cfg.API.BaseURL)

	if err := server.ServeStdio(srv); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
