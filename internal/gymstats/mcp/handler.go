package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/fitstats/internal/gymstats/energy"
	"github.com/2beens/fitstats/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service reads and formats the results.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any, errPrefix string, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return errorResult(errPrefix + err.Error()), nil, nil
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

// SchemaInput is the (empty) input of get_fitstats_schema.
type SchemaInput struct{}

func (h *Handler) GetFitstatsSchemaTool() func(context.Context, *mcp.CallToolRequest, SchemaInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SchemaInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// TimeRangeInput is the input of the date range tools.
type TimeRangeInput struct {
	UserID   int    `json:"user_id" jsonschema:"User whose data to read"`
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

func (in TimeRangeInput) parse() (from, to time.Time, errText string) {
	if in.UserID <= 0 {
		return from, to, "Invalid user_id: must be positive"
	}
	f, err := pkg.ParseDate(in.FromDate)
	if err != nil {
		return from, to, "Invalid from_date: use YYYY-MM-DD"
	}
	t, err := pkg.ParseDate(in.ToDate)
	if err != nil {
		return from, to, "Invalid to_date: use YYYY-MM-DD"
	}
	if t.Before(f) {
		return from, to, "Invalid range: to_date is before from_date"
	}
	return f, t, ""
}

func (h *Handler) GetStrengthSessionsTool() func(context.Context, *mcp.CallToolRequest, TimeRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in TimeRangeInput) (*mcp.CallToolResult, any, error) {
		from, to, errText := in.parse()
		if errText != "" {
			return errorResult(errText), nil, nil
		}
		sessions, err := h.service.StrengthSessions(ctx, in.UserID, from, to)
		return jsonResult(sessions, "Error listing strength sessions: ", err)
	}
}

func (h *Handler) GetEnergySnapshotsTool() func(context.Context, *mcp.CallToolRequest, TimeRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in TimeRangeInput) (*mcp.CallToolResult, any, error) {
		from, to, errText := in.parse()
		if errText != "" {
			return errorResult(errText), nil, nil
		}
		snapshots, err := h.service.EnergySnapshots(ctx, in.UserID, from, to)
		return jsonResult(snapshots, "Error listing energy snapshots: ", err)
	}
}

// UserInput is the input of get_current_maintenance.
type UserInput struct {
	UserID int `json:"user_id" jsonschema:"User whose data to read"`
}

func (h *Handler) GetCurrentMaintenanceTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if in.UserID <= 0 {
			return errorResult("Invalid user_id: must be positive"), nil, nil
		}
		m, err := h.service.CurrentMaintenance(ctx, in.UserID)
		if errors.Is(err, energy.ErrMaintenanceNotFound) {
			return errorResult("No maintenance estimate stored yet for this user"), nil, nil
		}
		return jsonResult(m, "Error fetching current maintenance: ", err)
	}
}

// InsightsInput is the input of get_insights.
type InsightsInput struct {
	UserID int `json:"user_id" jsonschema:"User whose data to read"`
	Days   int `json:"days,omitempty" jsonschema:"Range length in days ending today (default 30, max 365)"`
}

func (h *Handler) GetInsightsTool() func(context.Context, *mcp.CallToolRequest, InsightsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in InsightsInput) (*mcp.CallToolResult, any, error) {
		if in.UserID <= 0 {
			return errorResult("Invalid user_id: must be positive"), nil, nil
		}
		view, err := h.service.Insights(ctx, in.UserID, in.Days)
		return jsonResult(view, "Error computing insights: ", err)
	}
}
