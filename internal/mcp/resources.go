package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/treinolog/internal/api"
	"github.com/mark3labs/mcp-go/mcp"
)

var resTrainingDays = mcp.NewResource(
	"treinolog://training_days",
	"Training Days",
	mcp.WithResourceDescription("All of the user's training days (id and label)"),
	mcp.WithMIMEType("application/json"),
)

var resRecentSessions = mcp.NewResource(
	"treinolog://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("The most recently logged training sessions"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) trainingDaysResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	days, err := h.ds.ListTrainingDays(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, days)
}

func (h *handlers) recentSessionsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	page, err := h.ds.ListTrainingSessions(ctx, api.SessionFilters{Limit: 10, Sort: "desc"})
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, page.Items)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
