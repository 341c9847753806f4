package mcp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaRepo reads the column layout of the fitstats tables.
type SchemaRepo interface {
	GetFitstatsColumns(ctx context.Context) ([]SchemaColumn, error)
}

// SchemaColumn is one information_schema.columns row. Field order matches
// the select list.
type SchemaColumn struct {
	TableSchema string
	TableName   string
	ColumnName  string
	DataType    string
	IsNullable  string
	ColumnDef   *string
}

// fitstatsTables are the tables created by internal/db/schema.sql.
var fitstatsTables = []string{
	"exercise_set",
	"gymstats_event",
	"profile",
	"energy_snapshot",
	"maintenance_estimate",
}

type PoolSchemaRepo struct {
	db *pgxpool.Pool
}

func NewPoolSchemaRepo(db *pgxpool.Pool) *PoolSchemaRepo {
	return &PoolSchemaRepo{db: db}
}

func (r *PoolSchemaRepo) GetFitstatsColumns(ctx context.Context) ([]SchemaColumn, error) {
	rows, err := r.db.Query(ctx, `
		SELECT table_schema, table_name, column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = current_schema()
		  AND table_name = ANY($1)
		ORDER BY table_name, ordinal_position
	`, fitstatsTables)
	if err != nil {
		return nil, fmt.Errorf("query table columns: %w", err)
	}

	columns, err := pgx.CollectRows(rows, pgx.RowToStructByPos[SchemaColumn])
	if err != nil {
		return nil, fmt.Errorf("collect table columns: %w", err)
	}
	return columns, nil
}
