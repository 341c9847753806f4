package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type service interface {
	AddWeightReport(ctx context.Context, userID int, wr WeightReport) (*Event, error)
	AddCalorieIntake(ctx context.Context, userID int, ci CalorieIntake) (*Event, error)
	AddCalorieBurn(ctx context.Context, userID int, cb CalorieBurn) (*Event, error)
	Update(ctx context.Context, event Event) (*Event, error)
	Delete(ctx context.Context, userID, id int) error
	ListAll(ctx context.Context, params EventParams) ([]Event, error)
}

type DeleteEventResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

// decodeAdd checks the request shape shared by all add endpoints and decodes
// the body into dst.
func decodeAdd(w http.ResponseWriter, r *http.Request, dst any) (int, bool) {
	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return 0, false
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return 0, false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("new event, unmarshal json params: %s", err)
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}

func writeAddResult(w http.ResponseWriter, kind string, event *Event, err error) {
	if errors.Is(err, ErrInvalidValue) {
		http.Error(w, "invalid "+kind+" value", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("add %s: %s", kind, err)
		http.Error(w, "add "+kind+" failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, event, http.StatusCreated)
}

func (h *Handler) HandleAddWeightReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.add.weight")
	defer span.End()

	var wr WeightReport
	userID, ok := decodeAdd(w, r, &wr)
	if !ok {
		return
	}

	event, err := h.service.AddWeightReport(ctx, userID, wr)
	writeAddResult(w, "weight report", event, err)
}

func (h *Handler) HandleAddCalorieIntake(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.add.intake")
	defer span.End()

	var ci CalorieIntake
	userID, ok := decodeAdd(w, r, &ci)
	if !ok {
		return
	}

	event, err := h.service.AddCalorieIntake(ctx, userID, ci)
	writeAddResult(w, "calorie intake", event, err)
}

func (h *Handler) HandleAddCalorieBurn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.add.burn")
	defer span.End()

	var cb CalorieBurn
	userID, ok := decodeAdd(w, r, &cb)
	if !ok {
		return
	}

	event, err := h.service.AddCalorieBurn(ctx, userID, cb)
	writeAddResult(w, "calorie burn", event, err)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.update")
	defer span.End()

	var event Event
	userID, ok := decodeAdd(w, r, &event)
	if !ok {
		return
	}
	if event.ID < 1 {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return
	}
	event.UserID = userID

	updated, err := h.service.Update(ctx, event)
	switch {
	case errors.Is(err, ErrEventNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrInvalidValue):
		http.Error(w, "invalid event value", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("update event %d: %s", event.ID, err)
		http.Error(w, "update event failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.delete")
	defer span.End()

	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return
	}
	id, err := pkg.PathInt(r, "id")
	if err != nil {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, userID, id); errors.Is(err, ErrEventNotFound) {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("delete event %d: %s", id, err)
		http.Error(w, "delete event failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteEventResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.list")
	defer span.End()

	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return
	}

	params := EventParams{UserID: userID}
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		eventType := EventType(typeStr)
		if !eventType.IsValid() {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}
		params.Type = &eventType
	}
	params.From, params.To, err = pkg.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	events, err := h.service.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list events: %s", err)
		http.Error(w, "list events failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, events, http.StatusOK)
}
