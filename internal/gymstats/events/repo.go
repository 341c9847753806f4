package events

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

var ErrEventNotFound = errors.New("event not found")

type EventParams struct {
	UserID int
	Type   *EventType
	From   *time.Time
	To     *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const eventColumns = `id, user_id, type, date, timestamp, value, data`

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", event.Type.String()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO gymstats_event (user_id, type, date, timestamp, value, data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		event.UserID,
		event.Type,
		event.Date,
		event.Timestamp,
		event.Value,
		event.Data,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	event, err := scanEvent(r.db.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM gymstats_event
		WHERE id = $1 AND user_id = $2
	`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Update changes date, timestamp, value and data of an event. The type of an
// event never changes.
func (r *Repo) Update(ctx context.Context, event Event) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", event.ID))

	tag, err := r.db.Exec(ctx, `
		UPDATE gymstats_event
		SET date = $1, timestamp = $2, value = $3, data = $4
		WHERE id = $5 AND user_id = $6
	`,
		event.Date, event.Timestamp, event.Value, event.Data,
		event.ID, event.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM gymstats_event WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// ListAll returns the events of a user within the inclusive date range, ordered
// by date and timestamp.
func (r *Repo) ListAll(ctx context.Context, params EventParams) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))
	if params.Type != nil {
		span.SetAttributes(attribute.String("type", string(*params.Type)))
	}
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM gymstats_event
		WHERE user_id = $1
		  AND ($2::text IS NULL OR type = $2)
		  AND ($3::date IS NULL OR date >= $3)
		  AND ($4::date IS NULL OR date <= $4)
		ORDER BY date ASC, timestamp ASC, id ASC;
	`,
		params.UserID,
		params.Type,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return events, nil
}

// Latest returns the most recent event of the given type, ErrEventNotFound
// if the user never logged one.
func (r *Repo) Latest(ctx context.Context, userID int, eventType EventType) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", eventType.String()))

	event, err := scanEvent(r.db.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM gymstats_event
		WHERE user_id = $1 AND type = $2
		ORDER BY date DESC, timestamp DESC, id DESC
		LIMIT 1
	`, userID, eventType))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func scanEvent(row pgx.Row) (*Event, error) {
	event := &Event{}
	if err := row.Scan(
		&event.ID, &event.UserID, &event.Type, &event.Date,
		&event.Timestamp, &event.Value, &event.Data,
	); err != nil {
		return nil, err
	}
	if event.Data == nil {
		event.Data = map[string]string{}
	}
	return event, nil
}
