package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=sets_mocks_test.go -package=exercises_test

type setsRepo interface {
	Add(ctx context.Context, set Set) (*Set, error)
	Get(ctx context.Context, userID, id int) (*Set, error)
	List(ctx context.Context, params ListParams) (_ []Set, total int, err error)
	ListAll(ctx context.Context, params SetParams) ([]Set, error)
	Update(ctx context.Context, set *Set) error
	Delete(ctx context.Context, userID, id int) error
}

// viewInvalidator drops cached dashboard views of a user after a write.
type viewInvalidator interface {
	Invalidate(ctx context.Context, userID int)
}

type DeleteSetResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateSetResponse struct {
	UpdatedID int `json:"updatedId"`
}

type AddSetResponse struct {
	Set
	CountToday int `json:"countToday"`
}

type ListResponse struct {
	Sets  []Set `json:"sets"`
	Total int   `json:"total"`
}

type Handler struct {
	repo        setsRepo
	invalidator viewInvalidator
}

func NewHandler(repo setsRepo, invalidator viewInvalidator) *Handler {
	return &Handler{
		repo:        repo,
		invalidator: invalidator,
	}
}

func validateSet(set Set) string {
	switch {
	case set.ExerciseName == "":
		return "error, exercise name empty"
	case set.Kilos < 0:
		return "error, kilos must not be negative"
	case set.Reps < 0:
		return "error, reps must not be negative"
	}
	return ""
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.add")
	defer span.End()

	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("add set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	if msg := validateSet(set); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	set.UserID = userID
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}
	if set.Date.IsZero() {
		set.Date = set.CreatedAt
	}
	set.Date = pkg.Day(set.Date)

	addedSet, err := handler.repo.Add(ctx, set)
	if err != nil {
		log.Errorf("failed to add new set [%d] [%s]: %s", userID, set.ExerciseName, err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}
	handler.invalidator.Invalidate(ctx, userID)

	setsToday, err := handler.repo.ListAll(ctx, SetParams{
		UserID:       userID,
		ExerciseName: addedSet.ExerciseName,
		From:         &addedSet.Date,
		To:           &addedSet.Date,
	})
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to get sets of the day [%d] [%s]: %s", userID, addedSet.ExerciseName, err)
	}

	addedSetJson, err := json.Marshal(AddSetResponse{
		Set:        *addedSet,
		CountToday: len(setsToday),
	})
	if err != nil {
		log.Errorf("failed to marshal new set: %s", err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}

	log.Debugf("new set added: %s", addedSetJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSetJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.get")
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

	set, err := handler.repo.Get(ctx, userID, id)
	if errors.Is(err, ErrSetNotFound) {
		http.Error(w, "set not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get set %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, set, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.delete")
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

	if err := handler.repo.Delete(ctx, userID, id); errors.Is(err, ErrSetNotFound) {
		log.Debugf("set %d of user %d not found", id, userID)
		http.Error(w, "set not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to delete set %d: %s", id, err)
		http.Error(w, "set not deleted", http.StatusInternalServerError)
		return
	}
	handler.invalidator.Invalidate(ctx, userID)

	deleteRespJson, err := json.Marshal(DeleteSetResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.list")
	defer span.End()

	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return
	}
	page, err := pkg.PathInt(r, "page")
	if err != nil {
		log.Tracef("handle list sets, <page> param: %s", err)
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	size, err := pkg.PathInt(r, "size")
	if err != nil {
		log.Tracef("handle list sets, <size> param: %s", err)
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	from, to, err := pkg.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sets, total, err := handler.repo.List(ctx, ListParams{
		SetParams: SetParams{
			UserID:       userID,
			ExerciseName: r.URL.Query().Get("exercise"),
			MuscleGroup:  r.URL.Query().Get("group"),
			From:         from,
			To:           to,
		},
		Page: page,
		Size: size,
	})
	if err != nil {
		log.Errorf("list sets error: %s", err)
		http.Error(w, "failed to get sets", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Sets:  sets,
		Total: total,
	}, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.update")
	defer span.End()

	userID, err := pkg.UserID(r)
	if err != nil {
		http.Error(w, "invalid user", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	if msg := validateSet(set); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	currentSet, err := handler.repo.Get(ctx, userID, set.ID)
	if errors.Is(err, ErrSetNotFound) {
		log.Debugf("set %d not found", set.ID)
		http.Error(w, "set not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get set %d: %s", set.ID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	set.UserID = userID
	if set.Date.IsZero() {
		set.Date = currentSet.Date
	}
	set.Date = pkg.Day(set.Date)
	log.Debugf("update set %+v -> %+v", currentSet, set)

	if err := handler.repo.Update(ctx, &set); err != nil {
		log.Errorf("failed to update set [%d] [%s]: %s", set.ID, set.ExerciseName, err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}
	handler.invalidator.Invalidate(ctx, userID)

	updateRespJson, err := json.Marshal(UpdateSetResponse{
		UpdatedID: set.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("set updated: [%s] [%s]: %d", set.MuscleGroup, set.ExerciseName, set.ID)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}
