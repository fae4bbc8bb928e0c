package mcp

import (
	"context"

	"github.com/claude/treinolog/internal/api"
	"github.com/claude/treinolog/internal/catalog"
	"github.com/claude/treinolog/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// catalogPageSize is the batch size used when walking the full catalog to
// resolve exercise names.
const catalogPageSize = 100

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("Browse the exercise catalog. Returns exercises with name, muscle group and weight unit (kg, stack, or bodyweight)."),
	mcp.WithString("search", mcp.Description("Substring filter on the exercise name (case-insensitive)")),
	mcp.WithString("muscle", mcp.Description("Exact muscle group filter (e.g. 'peito', 'costas', 'quadríceps')")),
	mcp.WithString("cursor", mcp.Description("Continuation cursor from a previous page")),
)

var toolListTrainingDays = mcp.NewTool("list_training_days",
	mcp.WithDescription("List the user's training days (reusable ordered exercise templates). Returns id and label per day."),
)

var toolGetTrainingDay = mcp.NewTool("get_training_day",
	mcp.WithDescription("Fetch one training day expanded to its ordered exercises, with names and muscle groups resolved against the catalog."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Training day id")),
)

var toolListSessions = mcp.NewTool("list_training_sessions",
	mcp.WithDescription("Query logged training sessions, newest first."),
	mcp.WithString("training_day_id", mcp.Description("Filter by training day")),
	mcp.WithString("from", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD)")),
	mcp.WithString("to", mcp.Description("End date (ISO 8601 or YYYY-MM-DD)")),
	mcp.WithNumber("limit", mcp.Description("Max sessions to return (default 20, server caps at 100)")),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := h.ds.ListExercises(ctx,
		req.GetString("search", ""),
		req.GetString("muscle", ""),
		catalogPageSize,
		req.GetString("cursor", ""),
	)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"items":      page.Items,
		"nextCursor": page.NextCursor,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTrainingDays(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := h.ds.ListTrainingDays(ctx)
	if err != nil {
		h.log.Error("mcp list_training_days", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(days)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	idx := catalog.New()
	if err := catalog.LoadAll(ctx, h.ds, idx, catalogPageSize); err != nil {
		h.log.Error("mcp get_training_day: catalog load", "error", err)
		return mcp.NewToolResultError("catalog load failed: " + err.Error()), nil
	}

	day, err := session.ExpandDay(ctx, h.ds, idx, id)
	if err != nil {
		h.log.Error("mcp get_training_day", "error", err, "id", id)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(day)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filters := api.SessionFilters{
		TrainingDayID: req.GetString("training_day_id", ""),
		From:          req.GetString("from", ""),
		To:            req.GetString("to", ""),
		Limit:         req.GetInt("limit", 20),
		Sort:          "desc",
	}

	page, err := h.ds.ListTrainingSessions(ctx, filters)
	if err != nil {
		h.log.Error("mcp list_training_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(page)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
