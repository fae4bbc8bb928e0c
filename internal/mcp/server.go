// Package mcp exposes the training data over the Model Context Protocol: the
// exercise catalog, training days, and logged sessions, served from a local
// stdio process that talks to the remote API.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("treinolog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Training log server. Browse the exercise catalog, inspect training days (ordered exercise templates), and query logged training sessions. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolListTrainingDays, Handler: h.listTrainingDays},
		server.ServerTool{Tool: toolGetTrainingDay, Handler: h.getTrainingDay},
		server.ServerTool{Tool: toolListSessions, Handler: h.listSessions},
	)

	s.AddResources(
		server.ServerResource{Resource: resTrainingDays, Handler: h.trainingDaysResource},
		server.ServerResource{Resource: resRecentSessions, Handler: h.recentSessionsResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}
