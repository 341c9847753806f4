package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	p := &Profile{}
	err = r.db.QueryRow(ctx, `
		SELECT user_id, sex, birth_date, height_cm, activity_level, updated_at
		FROM profile
		WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.Sex, &p.BirthDate, &p.HeightCm, &p.ActivityLevel, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// Upsert replaces the whole profile of a user.
func (r *Repo) Upsert(ctx context.Context, p Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", p.UserID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO profile (user_id, sex, birth_date, height_cm, activity_level, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			sex = EXCLUDED.sex,
			birth_date = EXCLUDED.birth_date,
			height_cm = EXCLUDED.height_cm,
			activity_level = EXCLUDED.activity_level,
			updated_at = EXCLUDED.updated_at
	`, p.UserID, p.Sex, p.BirthDate, p.HeightCm, p.ActivityLevel, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
