package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ErrSetNotFound = errors.New("set not found")

type SetParams struct {
	UserID       int
	ExerciseName string
	MuscleGroup  string
	From         *time.Time
	To           *time.Time
}

type ListParams struct {
	SetParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const setColumns = `id, user_id, date, exercise_name, muscle_group, set_number, kilos, reps, metadata, created_at`

func (r *Repo) Add(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", set.UserID))

	metadataJson, err := json.Marshal(set.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_set
				(user_id, date, exercise_name, muscle_group, set_number, kilos, reps, metadata, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		set.UserID, set.Date, set.ExerciseName, set.MuscleGroup, set.SetNumber,
		set.Kilos, set.Reps, metadataJson, set.CreatedAt,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert set: %w", err)
	}

	span.SetAttributes(attribute.Int("set.id", id))

	set.ID = id
	return &set, nil
}

func (r *Repo) Update(ctx context.Context, set *Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", set.ID))

	metadataJson, err := json.Marshal(set.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_set
			SET date = $1, exercise_name = $2, muscle_group = $3, set_number = $4, kilos = $5, reps = $6, metadata = $7
			WHERE id = $8 AND user_id = $9;`,
		set.Date, set.ExerciseName, set.MuscleGroup, set.SetNumber, set.Kilos, set.Reps, metadataJson,
		set.ID, set.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise_set WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+setColumns+` FROM exercise_set WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets, err := rows2sets(rows)
	if err != nil {
		return nil, err
	}

	if len(sets) != 1 {
		return nil, ErrSetNotFound
	}

	return &sets[0], nil
}

// ListAll returns all sets of a user, optionally filtered by exercise, muscle group and
// an inclusive date range. Oldest first.
func (r *Repo) ListAll(ctx context.Context, params SetParams) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setParamsAttributes(span, params)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+setColumns+` FROM exercise_set
			WHERE user_id = $1
				AND ($2::text = '' OR exercise_name = $2)
				AND ($3::text = '' OR muscle_group = $3)
				AND ($4::date IS NULL OR date >= $4)
				AND ($5::date IS NULL OR date <= $5)
			ORDER BY date ASC, exercise_name ASC, set_number ASC, id ASC;`,
		params.UserID, params.ExerciseName, params.MuscleGroup,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sets, err := rows2sets(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sets: %w", err)
	}
	return sets, nil
}

// List is like ListAll, but it returns a single page, newest first.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Set, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	setParamsAttributes(span, params.SetParams)

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, params.SetParams)
	if err != nil {
		return nil, -1, err
	}

	limit, offset := pageBounds(params.Page, params.Size, countAll)
	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+setColumns+` FROM exercise_set
			WHERE user_id = $1
				AND ($2::text = '' OR exercise_name = $2)
				AND ($3::text = '' OR muscle_group = $3)
				AND ($4::date IS NULL OR date >= $4)
				AND ($5::date IS NULL OR date <= $5)
			ORDER BY date DESC, created_at DESC, id DESC
			LIMIT $6 OFFSET $7;`,
		params.UserID, params.ExerciseName, params.MuscleGroup,
		params.From, params.To,
		limit, offset,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sets, err := rows2sets(rows)
	if err != nil {
		return nil, -1, fmt.Errorf("rows2sets: %w", err)
	}

	return sets, countAll, nil
}

func (r *Repo) Count(ctx context.Context, params SetParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sets.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM exercise_set
			WHERE user_id = $1
				AND ($2::text = '' OR exercise_name = $2)
				AND ($3::text = '' OR muscle_group = $3)
				AND ($4::date IS NULL OR date >= $4)
				AND ($5::date IS NULL OR date <= $5);
	`,
		params.UserID, params.ExerciseName, params.MuscleGroup,
		params.From, params.To,
	).Scan(&count); err != nil {
		return -1, fmt.Errorf("count sets: %w", err)
	}

	return count, nil
}

// pageBounds clamps the requested page so that the last page is always full
// when there are enough rows.
func pageBounds(page, size, countAll int) (limit, offset int) {
	limit = size
	offset = (page - 1) * size

	if countAll <= limit {
		return countAll, 0
	}
	if countAll-offset < limit {
		offset = countAll - limit
	}
	return limit, offset
}

func setParamsAttributes(span trace.Span, params SetParams) {
	span.SetAttributes(attribute.Int("user.id", params.UserID))
	span.SetAttributes(attribute.String("exercise_name", params.ExerciseName))
	span.SetAttributes(attribute.String("muscle_group", params.MuscleGroup))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}
}

func rows2sets(rows pgx.Rows) ([]Set, error) {
	sets := make([]Set, 0)
	for rows.Next() {
		var s Set
		var metadataBytes []byte
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Date, &s.ExerciseName, &s.MuscleGroup,
			&s.SetNumber, &s.Kilos, &s.Reps, &metadataBytes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}

		s.Metadata = make(map[string]string)
		if len(metadataBytes) > 0 {
			var metadataMap map[string]any
			if err := json.Unmarshal(metadataBytes, &metadataMap); err != nil {
				return nil, fmt.Errorf("unmarshal metadata for set %d: %w", s.ID, err)
			}
			for k, v := range metadataMap {
				s.Metadata[k] = fmt.Sprint(v)
			}
		}

		sets = append(sets, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sets, nil
}
