package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitstats/internal/gymstats/dashboard"
	"github.com/2beens/fitstats/internal/gymstats/energy"
	"github.com/2beens/fitstats/internal/gymstats/strength"
)

type dashboardReader interface {
	Sessions(ctx context.Context, userID int, from, to *time.Time) ([]strength.SessionScore, error)
	Insights(ctx context.Context, userID int, days int) (*dashboard.InsightsView, error)
}

type energyReader interface {
	List(ctx context.Context, userID int, from, to *time.Time) ([]energy.Snapshot, error)
	GetCurrentMaintenance(ctx context.Context, userID int) (*energy.CurrentMaintenance, error)
}

// contextService is what the tools read through.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	StrengthSessions(ctx context.Context, userID int, from, to time.Time) ([]strength.SessionScore, error)
	EnergySnapshots(ctx context.Context, userID int, from, to time.Time) ([]energy.Snapshot, error)
	CurrentMaintenance(ctx context.Context, userID int) (*energy.CurrentMaintenance, error)
	Insights(ctx context.Context, userID int, days int) (*dashboard.InsightsView, error)
}

type ContextService struct {
	schema    SchemaRepo
	dashboard dashboardReader
	energy    energyReader
}

func NewContextService(schemaRepo SchemaRepo, dashboard dashboardReader, energy energyReader) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		dashboard: dashboard,
		energy:    energy,
	}
}

// GetSchema renders the fitstats tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetFitstatsColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatFitstatsSchema(cols), nil
}

func formatFitstatsSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Fitstats DB Schema\n\nNo fitstats tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Fitstats DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(tableOrder, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) StrengthSessions(ctx context.Context, userID int, from, to time.Time) ([]strength.SessionScore, error) {
	return s.dashboard.Sessions(ctx, userID, &from, &to)
}

func (s *ContextService) EnergySnapshots(ctx context.Context, userID int, from, to time.Time) ([]energy.Snapshot, error) {
	return s.energy.List(ctx, userID, &from, &to)
}

func (s *ContextService) CurrentMaintenance(ctx context.Context, userID int) (*energy.CurrentMaintenance, error) {
	return s.energy.GetCurrentMaintenance(ctx, userID)
}

func (s *ContextService) Insights(ctx context.Context, userID int, days int) (*dashboard.InsightsView, error) {
	if days == 0 {
		days = dashboard.DefaultInsightDays
	}
	return s.dashboard.Insights(ctx, userID, days)
}
