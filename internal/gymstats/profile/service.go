package profile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profile

var ErrInvalidProfile = errors.New("invalid profile")

type profileRepo interface {
	Get(ctx context.Context, userID int) (*Profile, error)
	Upsert(ctx context.Context, p Profile) error
}

type refresher interface {
	RefreshAfterWrite(ctx context.Context, source string, userID int, dates []time.Time, refreshCurrentMaintenance bool)
}

type viewInvalidator interface {
	Invalidate(ctx context.Context, userID int)
}

type Service struct {
	repo        profileRepo
	refresher   refresher
	invalidator viewInvalidator
	now         func() time.Time
}

func NewService(repo profileRepo, refresher refresher, invalidator viewInvalidator) *Service {
	return &Service{
		repo:        repo,
		refresher:   refresher,
		invalidator: invalidator,
		now:         time.Now,
	}
}

func (s *Service) Get(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile of user %d: %w", userID, err)
	}
	return p, nil
}

// Update stores the profile and refreshes today's snapshot and the current
// maintenance estimate. Historical snapshots keep their values until they are
// recomputed.
func (s *Service) Update(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", p.UserID))

	now := s.now()
	if err := normalize(&p, now); err != nil {
		return nil, err
	}
	p.UpdatedAt = now

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile of user %d: %w", p.UserID, err)
	}

	s.refresher.RefreshAfterWrite(ctx, "profile.update", p.UserID, []time.Time{pkg.Day(now)}, true)
	s.invalidator.Invalidate(ctx, p.UserID)
	return &p, nil
}

func normalize(p *Profile, now time.Time) error {
	if p.Sex != nil && !p.Sex.IsValid() {
		return fmt.Errorf("%w: sex must be male or female", ErrInvalidProfile)
	}
	if p.HeightCm != nil {
		h := *p.HeightCm
		if math.IsNaN(h) || h <= 0 || h > 300 {
			return fmt.Errorf("%w: height out of range", ErrInvalidProfile)
		}
	}
	if p.BirthDate != nil {
		bd := pkg.Day(*p.BirthDate)
		if bd.After(now) {
			return fmt.Errorf("%w: birth date in the future", ErrInvalidProfile)
		}
		p.BirthDate = &bd
	}
	if p.ActivityLevel != nil {
		level, ok := ParseActivityLevel(*p.ActivityLevel)
		if !ok {
			return fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, *p.ActivityLevel)
		}
		canonical := string(level)
		p.ActivityLevel = &canonical
	}
	return nil
}
