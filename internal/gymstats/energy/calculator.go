package energy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/gymstats/events"
	"github.com/2beens/fitstats/internal/gymstats/profile"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=calculator_mocks_test.go -package=energy

type eventsReader interface {
	ListAll(ctx context.Context, params events.EventParams) ([]events.Event, error)
	Latest(ctx context.Context, userID int, eventType events.EventType) (*events.Event, error)
}

type profileReader interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
}

type snapshotStore interface {
	Upsert(ctx context.Context, s Snapshot) error
	Delete(ctx context.Context, userID int, date time.Time) (bool, error)
	UpsertCurrentMaintenance(ctx context.Context, m CurrentMaintenance) error
}

const (
	outcomeUpserted = "upserted"
	outcomeDeleted  = "deleted"
	outcomeError    = "error"
)

// Calculator recomputes persisted energy snapshots from the raw inputs.
type Calculator struct {
	events   eventsReader
	profiles profileReader
	store    snapshotStore
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewCalculator(
	eventsReader eventsReader,
	profiles profileReader,
	store snapshotStore,
	metricsManager *metrics.Manager,
) *Calculator {
	return &Calculator{
		events:   eventsReader,
		profiles: profiles,
		store:    store,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

func (c *Calculator) profile(ctx context.Context, userID int) (*profile.Profile, error) {
	p, err := c.profiles.Get(ctx, userID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// RecomputeForDate rebuilds the snapshot of (user, date) from same-date inputs.
// When the date has no signal at all, any stored snapshot is deleted and the
// returned snapshot is nil.
func (c *Calculator) RecomputeForDate(ctx context.Context, userID int, date time.Time) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "energy.recompute.date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	date = pkg.Day(date)
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	dayEvents, err := c.events.ListAll(ctx, events.EventParams{
		UserID: userID,
		From:   &date,
		To:     &date,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	p, err := c.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := BuildSnapshot(userID, date, ReduceDay(dayEvents), p)
	if !snapshot.HasSignal() {
		deleted, err := c.store.Delete(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		if deleted {
			c.metrics.CounterSnapshotsDeleted.Inc()
			log.Debugf("energy snapshot [%d] [%s] deleted, no signal left", userID, date.Format(time.DateOnly))
		}
		return nil, nil
	}

	snapshot.UpdatedAt = c.now()
	if err := c.store.Upsert(ctx, snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// RefreshAfterWrite is the write hook. It recomputes every touched date and
// optionally the current maintenance estimate. Failures are logged and
// counted, never returned.
func (c *Calculator) RefreshAfterWrite(
	ctx context.Context,
	source string,
	userID int,
	dates []time.Time,
	refreshCurrentMaintenance bool,
) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "energy.refresh")
	defer span.End()
	span.SetAttributes(attribute.String("source", source))
	span.SetAttributes(attribute.Int("user.id", userID))

	start := time.Now()
	defer func() {
		c.metrics.HistEnergyRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	for _, date := range pkg.UniqueDays(dates...) {
		snapshot, err := c.RecomputeForDate(ctx, userID, date)
		if err != nil {
			c.metrics.CounterEnergyRecomputes.WithLabelValues(source, outcomeError).Inc()
			log.WithFields(log.Fields{
				"source": source,
				"user":   userID,
				"date":   date.Format(time.DateOnly),
			}).Errorf("energy recompute failed: %s", err)
			continue
		}

		outcome := outcomeUpserted
		if snapshot == nil {
			outcome = outcomeDeleted
		}
		c.metrics.CounterEnergyRecomputes.WithLabelValues(source, outcome).Inc()
	}

	if !refreshCurrentMaintenance {
		return
	}
	if _, err := c.RecomputeCurrentMaintenance(ctx, userID); err != nil {
		c.metrics.CounterEnergyRecomputes.WithLabelValues(source, outcomeError).Inc()
		log.WithFields(log.Fields{
			"source": source,
			"user":   userID,
		}).Errorf("current maintenance recompute failed: %s", err)
	}
}

// RecomputeCurrentMaintenance combines today's profile with the most recent
// weight ever logged and stores the estimate.
func (c *Calculator) RecomputeCurrentMaintenance(ctx context.Context, userID int) (_ *CurrentMaintenance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "energy.recompute.current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	now := c.now()
	p, err := c.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	m := CurrentMaintenance{
		UserID: userID,
		AsOf:   now,
	}

	latest, err := c.events.Latest(ctx, userID, events.EventTypeWeightReport)
	switch {
	case errors.Is(err, events.ErrEventNotFound):
		m.Missing = append(m.Missing, "weight")
	case err != nil:
		return nil, fmt.Errorf("latest weight: %w", err)
	default:
		weight := latest.Value
		weightDate := latest.Date
		m.WeightKg = &weight
		m.WeightDate = &weightDate
	}

	ep := ResolveProfile(p, now)
	if incomplete, ok := ep.(Incomplete); ok {
		m.Missing = append(m.Missing, incomplete.Missing...)
	}
	m.Maintenance = MaintenanceFromProfile(ep, m.WeightKg)

	if err := c.store.UpsertCurrentMaintenance(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}
