package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitstats/internal/gymstats/series"
	"github.com/2beens/fitstats/internal/gymstats/strength"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type service interface {
	Sessions(ctx context.Context, userID int, from, to *time.Time) ([]strength.SessionScore, error)
	Progress(ctx context.Context, userID int, from, to *time.Time, mode series.Mode) (*series.ProgressDatasets, error)
	MuscleGroups(ctx context.Context, userID int, from, to *time.Time, mode series.Mode, maxExercisesPerGroup int) ([]series.MuscleGroupDataset, error)
	Insights(ctx context.Context, userID int, days int) (*InsightsView, error)
}

type viewCache interface {
	Lookup(ctx context.Context, userID int, view string) ([]byte, int64, bool)
	Store(userID int, version int64, view string, payload []byte)
}

type Handler struct {
	service service
	cache   viewCache
	now     func() time.Time
}

func NewHandler(service service, cache viewCache) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
		now:     time.Now,
	}
}

type rangeQuery struct {
	userID   int
	from, to *time.Time
}

func parseRange(r *http.Request) (rangeQuery, error) {
	userID, err := pkg.UserID(r)
	if err != nil {
		return rangeQuery{}, err
	}
	from, to, err := pkg.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		return rangeQuery{}, err
	}
	if from != nil && to != nil && from.After(*to) {
		return rangeQuery{}, ErrInvalidRange
	}
	return rangeQuery{userID: userID, from: from, to: to}, nil
}

// serveView answers from the view cache or computes, marshals and caches the view.
func (h *Handler) serveView(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	userID int,
	view string,
	compute func(ctx context.Context) (any, error),
) {
	view = view + "?" + r.URL.Query().Encode()
	// the version read before computing is the one the result belongs to
	payload, version, ok := h.cache.Lookup(ctx, userID, view)
	if ok {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payload, http.StatusOK)
		return
	}

	result, err := compute(ctx)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("dashboard view [%s] for [%d]: %s", view, userID, err)
		http.Error(w, "failed to build view", http.StatusInternalServerError)
		return
	}

	payload, err = json.Marshal(result)
	if err != nil {
		log.Errorf("marshal dashboard view [%s]: %s", view, err)
		http.Error(w, "failed to build view", http.StatusInternalServerError)
		return
	}
	h.cache.Store(userID, version, view, payload)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payload, http.StatusOK)
}

func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.sessions")
	defer span.End()

	q, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.serveView(ctx, w, r, q.userID, "sessions", func(ctx context.Context) (any, error) {
		return h.service.Sessions(ctx, q.userID, q.from, q.to)
	})
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.progress")
	defer span.End()

	q, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	mode, err := series.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.serveView(ctx, w, r, q.userID, "progress", func(ctx context.Context) (any, error) {
		return h.service.Progress(ctx, q.userID, q.from, q.to, mode)
	})
}

func (h *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.muscleGroups")
	defer span.End()

	q, err := parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	mode, err := series.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	maxExercises := series.DefaultMaxExercisesPerGroup
	if maxStr := r.URL.Query().Get("max"); maxStr != "" {
		maxExercises, err = strconv.Atoi(maxStr)
		if err != nil || maxExercises < 1 {
			http.Error(w, "max must be a positive number", http.StatusBadRequest)
			return
		}
	}

	h.serveView(ctx, w, r, q.userID, "muscle-groups", func(ctx context.Context) (any, error) {
		return h.service.MuscleGroups(ctx, q.userID, q.from, q.to, mode, maxExercises)
	})
}

func (h *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.insights")
	defer span.End()

	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return
	}
	days := DefaultInsightDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			http.Error(w, "days must be a number", http.StatusBadRequest)
			return
		}
	}

	// the insights window ends today, so a cached view must not outlive the day
	view := "insights@" + pkg.DateKey(h.now())
	h.serveView(ctx, w, r, userID, view, func(ctx context.Context) (any, error) {
		return h.service.Insights(ctx, userID, days)
	})
}
