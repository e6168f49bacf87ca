package activities

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activities_test

type activitiesService interface {
	Add(ctx context.Context, a Activity) (*AddResult, error)
	Get(ctx context.Context, userID, id int) (*Activity, error)
	Update(ctx context.Context, a *Activity) error
	Delete(ctx context.Context, userID, id int) error
	List(ctx context.Context, params ListParams) ([]Activity, int, error)
}

type DeleteActivityResponse struct {
	DeletedID int `json:"deleted_id"`
}

type UpdateActivityResponse struct {
	UpdatedID int `json:"updated_id"`
}

type ListResponse struct {
	Activities []Activity `json:"activities"`
	Total      int        `json:"total"`
}

type Handler struct {
	service activitiesService
}

func NewHandler(service activitiesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/activities", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-activity")
	router.HandleFunc("/activities", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-activity")
	router.HandleFunc("/activities/{id:[0-9]+}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-activity")
	router.HandleFunc("/activities/{id:[0-9]+}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-activity")
	router.HandleFunc("/activities/page/{page}/size/{size}", h.HandleList).Methods("GET", "OPTIONS").Name("list-activities")
}

func idFromVars(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var activity Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Tracef("new activity, unmarshal json params: %s", err)
		http.Error(w, "add activity failed", http.StatusBadRequest)
		return
	}
	activity.ID = 0
	activity.UserID = userID

	added, err := h.service.Add(ctx, activity)
	if errors.Is(err, ErrInvalidActivity) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to add new activity [%s] for user %d: %s", activity.ActivityType, userID, err)
		http.Error(w, "error, failed to add new activity", http.StatusInternalServerError)
		return
	}

	log.Debugf("new activity added: %d [%s], %d kcal", added.ID, added.ActivityType, added.CaloriesBurned)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := idFromVars(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	activity, err := h.service.Get(ctx, userID, id)
	if errors.Is(err, ErrActivityNotFound) {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get activity %d: %s", id, err)
		http.Error(w, "failed to get activity", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, activity, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var activity Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Tracef("update activity, unmarshal json params: %s", err)
		http.Error(w, "update activity failed", http.StatusBadRequest)
		return
	}
	if activity.ID <= 0 {
		http.Error(w, "error, id missing", http.StatusBadRequest)
		return
	}
	activity.UserID = userID

	err := h.service.Update(ctx, &activity)
	switch {
	case errors.Is(err, ErrInvalidActivity):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrActivityNotFound):
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to update activity %d: %s", activity.ID, err)
		http.Error(w, "failed to update activity", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, UpdateActivityResponse{UpdatedID: activity.ID}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := idFromVars(r)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	err = h.service.Delete(ctx, userID, id)
	if errors.Is(err, ErrActivityNotFound) {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete activity %d: %s", id, err)
		http.Error(w, "failed to delete activity", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteActivityResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	page, size, err := pkg.PagingFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	activities, total, err := h.service.List(ctx, ListParams{
		UserID: userID,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		log.Errorf("failed to list activities for user %d: %s", userID, err)
		http.Error(w, "failed to list activities", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Activities: activities,
		Total:      total,
	}, http.StatusOK)
}
