package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the fitstats read tools. It is served
// over stdio by cmd/fitstats_mcp and mounted at /mcp by the main backend.
func NewServer(service contextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitstats-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitstats_schema",
		Description: "Returns the DB schema of the fitstats tables (exercise_set, gymstats_event, profile, energy_snapshot, maintenance_estimate): columns, types, nullable, default.",
	}, h.GetFitstatsSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_strength_sessions",
		Description: "Returns the per-session strength scores (one per date and exercise) of a user in a date range. Args: user_id, from_date, to_date (YYYY-MM-DD).",
	}, h.GetStrengthSessionsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_energy_snapshots",
		Description: "Returns the daily energy snapshots (weight, calories in, active burn, maintenance, total burn, net calories, BMI) of a user in a date range. Args: user_id, from_date, to_date (YYYY-MM-DD).",
	}, h.GetEnergySnapshotsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_current_maintenance",
		Description: "Returns the stored current maintenance calorie estimate of a user and the inputs missing to compute it. Arg: user_id.",
	}, h.GetCurrentMaintenanceTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_insights",
		Description: "Returns correlations, improvements, suggestions and achievements for a user over the last N days. Args: user_id; optional: days (default 30, max 365).",
	}, h.GetInsightsTool())

	return s
}
