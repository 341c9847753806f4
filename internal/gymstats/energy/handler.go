package energy

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=energy_test

type snapshotsReader interface {
	List(ctx context.Context, userID int, from, to *time.Time) ([]Snapshot, error)
	GetCurrentMaintenance(ctx context.Context, userID int) (*CurrentMaintenance, error)
}

type recomputer interface {
	RecomputeForDate(ctx context.Context, userID int, date time.Time) (*Snapshot, error)
	RecomputeCurrentMaintenance(ctx context.Context, userID int) (*CurrentMaintenance, error)
}

type viewInvalidator interface {
	Invalidate(ctx context.Context, userID int)
}

type RecomputeResponse struct {
	Date     string    `json:"date"`
	Snapshot *Snapshot `json:"snapshot"`
	Deleted  bool      `json:"deleted"`
}

type Handler struct {
	snapshots   snapshotsReader
	calculator  recomputer
	invalidator viewInvalidator
}

func NewHandler(snapshots snapshotsReader, calculator recomputer, invalidator viewInvalidator) *Handler {
	return &Handler{
		snapshots:   snapshots,
		calculator:  calculator,
		invalidator: invalidator,
	}
}

func (h *Handler) HandleListSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.energy.snapshots")
	defer span.End()

	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return
	}
	from, to, err := pkg.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshots, err := h.snapshots.List(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list energy snapshots: %s", err)
		http.Error(w, "failed to get energy snapshots", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, snapshots, http.StatusOK)
}

// HandleRecompute recomputes a single date on demand, e.g. after a manual
// data fix.
func (h *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.energy.recompute")
	defer span.End()

	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return
	}
	date, err := pkg.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshot, err := h.calculator.RecomputeForDate(ctx, userID, date)
	if err != nil {
		log.Errorf("recompute energy snapshot [%d] [%s]: %s", userID, pkg.DateKey(date), err)
		http.Error(w, "recompute failed", http.StatusInternalServerError)
		return
	}
	h.invalidator.Invalidate(ctx, userID)

	pkg.WriteJSON(w, RecomputeResponse{
		Date:     pkg.DateKey(date),
		Snapshot: snapshot,
		Deleted:  snapshot == nil,
	}, http.StatusOK)
}

func (h *Handler) HandleCurrentMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.energy.maintenance")
	defer span.End()

	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return
	}

	m, err := h.snapshots.GetCurrentMaintenance(ctx, userID)
	if errors.Is(err, ErrMaintenanceNotFound) {
		// never computed yet, e.g. for users that predate the estimate
		m, err = h.calculator.RecomputeCurrentMaintenance(ctx, userID)
	}
	if err != nil {
		log.Errorf("current maintenance [%d]: %s", userID, err)
		http.Error(w, "failed to get current maintenance", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, m, http.StatusOK)
}
