package events

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=events

type eventsRepo interface {
	Add(ctx context.Context, event Event) (*Event, error)
	Get(ctx context.Context, userID, id int) (*Event, error)
	Update(ctx context.Context, event Event) error
	Delete(ctx context.Context, userID, id int) error
	ListAll(ctx context.Context, params EventParams) ([]Event, error)
}

// refresher recomputes derived energy data for the dates a write touched.
// It never fails the write.
type refresher interface {
	RefreshAfterWrite(ctx context.Context, source string, userID int, dates []time.Time, refreshCurrentMaintenance bool)
}

type viewInvalidator interface {
	Invalidate(ctx context.Context, userID int)
}

// Service is the only mutation path for date-scoped energy inputs. Every
// successful write is followed by a refresh of the touched dates.
type Service struct {
	repo        eventsRepo
	refresher   refresher
	invalidator viewInvalidator
}

func NewService(repo eventsRepo, refresher refresher, invalidator viewInvalidator) *Service {
	return &Service{
		repo:        repo,
		refresher:   refresher,
		invalidator: invalidator,
	}
}

func (s *Service) afterWrite(ctx context.Context, source string, userID int, eventType EventType, dates ...time.Time) {
	s.refresher.RefreshAfterWrite(ctx, source, userID, dates, eventType == EventTypeWeightReport)
	s.invalidator.Invalidate(ctx, userID)
}

func (s *Service) add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.events.add."+event.Type.String())
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", event.UserID))

	if err := event.Validate(); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("add %s event: %w", event.Type, err)
	}

	s.afterWrite(ctx, "events.add."+event.Type.String(), added.UserID, added.Type, added.Date)
	return added, nil
}

func (s *Service) AddWeightReport(ctx context.Context, userID int, wr WeightReport) (*Event, error) {
	return s.add(ctx, NewWeightReportEvent(userID, wr))
}

func (s *Service) AddCalorieIntake(ctx context.Context, userID int, ci CalorieIntake) (*Event, error) {
	return s.add(ctx, NewCalorieIntakeEvent(userID, ci))
}

func (s *Service) AddCalorieBurn(ctx context.Context, userID int, cb CalorieBurn) (*Event, error) {
	return s.add(ctx, NewCalorieBurnEvent(userID, cb))
}

// Update edits an existing event. When the date changes, both the old and the
// new date are refreshed.
func (s *Service) Update(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.events.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", event.ID))

	current, err := s.repo.Get(ctx, event.UserID, event.ID)
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", event.ID, err)
	}

	event.Type = current.Type
	if event.Timestamp.IsZero() {
		event.Timestamp = current.Timestamp
	}
	if event.Date.IsZero() {
		event.Date = current.Date
	}
	event.Date = pkg.Day(event.Date)
	if event.Data == nil {
		event.Data = current.Data
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event %d: %w", event.ID, err)
	}

	s.afterWrite(ctx, "events.update", event.UserID, event.Type, current.Date, event.Date)
	return &event, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.events.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	current, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("get event %d: %w", id, err)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}

	s.afterWrite(ctx, "events.delete", userID, current.Type, current.Date)
	return nil
}

func (s *Service) ListAll(ctx context.Context, params EventParams) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.events.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.repo.ListAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
