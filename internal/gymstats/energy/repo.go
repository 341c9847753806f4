package energy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSnapshotNotFound    = errors.New("energy snapshot not found")
	ErrMaintenanceNotFound = errors.New("maintenance estimate not found")
)

// CurrentMaintenance is the "as of today" maintenance estimate, kept apart
// from the per-date snapshots.
type CurrentMaintenance struct {
	UserID      int        `json:"userId"`
	Maintenance *float64   `json:"maintenance"`
	WeightKg    *float64   `json:"weightKg"`
	WeightDate  *time.Time `json:"weightDate"`
	AsOf        time.Time  `json:"asOf"`
	Missing     []string   `json:"missing,omitempty"`
}

type SnapshotsRepo struct {
	db *pgxpool.Pool
}

func NewSnapshotsRepo(db *pgxpool.Pool) *SnapshotsRepo {
	return &SnapshotsRepo{
		db: db,
	}
}

const snapshotColumns = `user_id, date, weight_kg, calories_in, active_calories_burn,
	maintenance_for_day, total_burn, net_calories, bmi, updated_at`

// Upsert writes the snapshot of (user, date). updated_at only moves when a
// value actually changed.
func (r *SnapshotsRepo) Upsert(ctx context.Context, s Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.energy.snapshot.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", s.UserID))
	span.SetAttributes(attribute.String("date", s.Date.Format(time.DateOnly)))

	_, err = r.db.Exec(ctx, `
		INSERT INTO energy_snapshot (`+snapshotColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, date) DO UPDATE SET
			weight_kg = EXCLUDED.weight_kg,
			calories_in = EXCLUDED.calories_in,
			active_calories_burn = EXCLUDED.active_calories_burn,
			maintenance_for_day = EXCLUDED.maintenance_for_day,
			total_burn = EXCLUDED.total_burn,
			net_calories = EXCLUDED.net_calories,
			bmi = EXCLUDED.bmi,
			updated_at = EXCLUDED.updated_at
		WHERE (energy_snapshot.weight_kg, energy_snapshot.calories_in, energy_snapshot.active_calories_burn,
				energy_snapshot.maintenance_for_day, energy_snapshot.total_burn, energy_snapshot.net_calories,
				energy_snapshot.bmi)
			IS DISTINCT FROM
			(EXCLUDED.weight_kg, EXCLUDED.calories_in, EXCLUDED.active_calories_burn,
				EXCLUDED.maintenance_for_day, EXCLUDED.total_burn, EXCLUDED.net_calories,
				EXCLUDED.bmi)
	`,
		s.UserID, s.Date, s.WeightKg, s.CaloriesIn, s.ActiveCaloriesBurn,
		s.MaintenanceForDay, s.TotalBurn, s.NetCalories, s.BMI, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Delete removes the snapshot of (user, date) and reports whether one existed.
func (r *SnapshotsRepo) Delete(ctx context.Context, userID int, date time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.energy.snapshot.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	tag, err := r.db.Exec(ctx, `DELETE FROM energy_snapshot WHERE user_id = $1 AND date = $2`, userID, date)
	if err != nil {
		return false, fmt.Errorf("delete snapshot: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SnapshotsRepo) Get(ctx context.Context, userID int, date time.Time) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.energy.snapshot.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s, err := scanSnapshot(r.db.QueryRow(ctx, `
		SELECT `+snapshotColumns+`
		FROM energy_snapshot
		WHERE user_id = $1 AND date = $2
	`, userID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return s, nil
}

// List returns the snapshots of a user within the inclusive date range, oldest first.
func (r *SnapshotsRepo) List(ctx context.Context, userID int, from, to *time.Time) (_ []Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.energy.snapshot.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+snapshotColumns+`
		FROM energy_snapshot
		WHERE user_id = $1
		  AND ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
		ORDER BY date ASC
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0)
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return snapshots, nil
}

func (r *SnapshotsRepo) UpsertCurrentMaintenance(ctx context.Context, m CurrentMaintenance) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.energy.maintenance.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", m.UserID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO maintenance_estimate (user_id, maintenance, weight_kg, weight_date, missing, as_of)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			maintenance = EXCLUDED.maintenance,
			weight_kg = EXCLUDED.weight_kg,
			weight_date = EXCLUDED.weight_date,
			missing = EXCLUDED.missing,
			as_of = EXCLUDED.as_of
	`, m.UserID, m.Maintenance, m.WeightKg, m.WeightDate, m.Missing, m.AsOf)
	if err != nil {
		return fmt.Errorf("upsert current maintenance: %w", err)
	}
	return nil
}

func (r *SnapshotsRepo) GetCurrentMaintenance(ctx context.Context, userID int) (_ *CurrentMaintenance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.energy.maintenance.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	m := &CurrentMaintenance{}
	err = r.db.QueryRow(ctx, `
		SELECT user_id, maintenance, weight_kg, weight_date, missing, as_of
		FROM maintenance_estimate
		WHERE user_id = $1
	`, userID).Scan(&m.UserID, &m.Maintenance, &m.WeightKg, &m.WeightDate, &m.Missing, &m.AsOf)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMaintenanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get current maintenance: %w", err)
	}
	return m, nil
}

func scanSnapshot(row pgx.Row) (*Snapshot, error) {
	s := &Snapshot{}
	if err := row.Scan(
		&s.UserID, &s.Date, &s.WeightKg, &s.CaloriesIn, &s.ActiveCaloriesBurn,
		&s.MaintenanceForDay, &s.TotalBurn, &s.NetCalories, &s.BMI, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return s, nil
}
