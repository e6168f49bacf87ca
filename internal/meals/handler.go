package meals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=meals_test

type mealsService interface {
	Add(ctx context.Context, m Meal, now time.Time) (*AddResult, error)
	Today(ctx context.Context, userID int, now time.Time) (*Day, error)
	Delete(ctx context.Context, userID, id int) error
}

type userLocator interface {
	UserLocation(ctx context.Context, req *http.Request, userID int) *time.Location
}

type DeleteMealResponse struct {
	DeletedID int `json:"deleted_id"`
}

type Handler struct {
	service mealsService
	locator userLocator
	Now     func() time.Time
}

func NewHandler(service mealsService, locator userLocator) *Handler {
	return &Handler{
		service: service,
		locator: locator,
		Now:     time.Now,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/meals", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-meal")
	router.HandleFunc("/meals/today", h.HandleToday).Methods("GET", "OPTIONS").Name("meals-today")
	router.HandleFunc("/meals/{id:[0-9]+}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-meal")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.add")
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

	var m Meal
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		log.Tracef("log meal, unmarshal json params: %s", err)
		http.Error(w, "log meal failed", http.StatusBadRequest)
		return
	}
	m.ID = 0
	m.UserID = userID

	now := h.Now().In(h.locator.UserLocation(ctx, r, userID))
	res, err := h.service.Add(ctx, m, now)
	if errors.Is(err, ErrInvalidMeal) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to log meal for user %d: %s", userID, err)
		http.Error(w, "error, failed to log meal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.today")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	now := h.Now().In(h.locator.UserLocation(ctx, r, userID))
	day, err := h.service.Today(ctx, userID, now)
	if err != nil {
		log.Errorf("failed to get today's meals for user %d: %s", userID, err)
		http.Error(w, "failed to get meals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid meal id", http.StatusBadRequest)
		return
	}

	err = h.service.Delete(ctx, userID, id)
	if errors.Is(err, ErrMealNotFound) {
		http.Error(w, "meal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete meal %d: %s", id, err)
		http.Error(w, "failed to delete meal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteMealResponse{DeletedID: id}, http.StatusOK)
}
