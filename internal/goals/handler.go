package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsService interface {
	Create(ctx context.Context, g Goal, today time.Time) (*View, error)
	Get(ctx context.Context, userID, id int) (*View, error)
	Update(ctx context.Context, g *Goal, today time.Time) (*View, error)
	Delete(ctx context.Context, userID, id int) error
	List(ctx context.Context, params ListParams) ([]View, int, error)
	Active(ctx context.Context, userID, limit int) ([]View, error)
}

type userLocator interface {
	UserLocation(ctx context.Context, req *http.Request, userID int) *time.Location
}

type DeleteGoalResponse struct {
	DeletedID int `json:"deleted_id"`
}

type ListResponse struct {
	Goals []View `json:"goals"`
	Total int    `json:"total"`
}

type Handler struct {
	service goalsService
	locator userLocator
	Now     func() time.Time
}

func NewHandler(service goalsService, locator userLocator) *Handler {
	return &Handler{
		service: service,
		locator: locator,
		Now:     time.Now,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/goals", h.HandleCreate).Methods("POST", "OPTIONS").Name("create-goal")
	router.HandleFunc("/goals", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-goal")
	router.HandleFunc("/goals/active", h.HandleActive).Methods("GET", "OPTIONS").Name("active-goals")
	router.HandleFunc("/goals/{id:[0-9]+}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-goal")
	router.HandleFunc("/goals/{id:[0-9]+}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")
	router.HandleFunc("/goals/page/{page}/size/{size}", h.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
}

func (h *Handler) decodeGoal(w http.ResponseWriter, r *http.Request) (*Goal, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return nil, false
	}

	var g Goal
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		log.Tracef("goal, unmarshal json params: %s", err)
		http.Error(w, "invalid goal", http.StatusBadRequest)
		return nil, false
	}
	return &g, true
}

func (h *Handler) today(ctx context.Context, r *http.Request, userID int) time.Time {
	return h.Now().In(h.locator.UserLocation(ctx, r, userID))
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	g, ok := h.decodeGoal(w, r)
	if !ok {
		return
	}
	g.ID = 0
	g.UserID = userID

	view, err := h.service.Create(ctx, *g, h.today(ctx, r, userID))
	if errors.Is(err, ErrInvalidGoal) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to create goal for user %d: %s", userID, err)
		http.Error(w, "error, failed to create goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	g, ok := h.decodeGoal(w, r)
	if !ok {
		return
	}
	if g.ID <= 0 {
		http.Error(w, "missing goal id", http.StatusBadRequest)
		return
	}
	g.UserID = userID

	view, err := h.service.Update(ctx, g, h.today(ctx, r, userID))
	switch {
	case errors.Is(err, ErrInvalidGoal):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrGoalNotFound):
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to update goal %d: %s", g.ID, err)
		http.Error(w, "error, failed to update goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid goal id", http.StatusBadRequest)
		return
	}

	view, err := h.service.Get(ctx, userID, id)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get goal %d: %s", id, err)
		http.Error(w, "failed to get goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid goal id", http.StatusBadRequest)
		return
	}

	err = h.service.Delete(ctx, userID, id)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete goal %d: %s", id, err)
		http.Error(w, "failed to delete goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteGoalResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
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

	params := ListParams{
		UserID: userID,
		Page:   page,
		Size:   size,
	}
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := Status(strings.ToUpper(statusParam))
		if !status.IsValid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		params.Status = &status
	}

	goals, total, err := h.service.List(ctx, params)
	if err != nil {
		log.Errorf("failed to list goals for user %d: %s", userID, err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Goals: goals,
		Total: total,
	}, http.StatusOK)
}

func (h *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.active")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goals, err := h.service.Active(ctx, userID, 0)
	if err != nil {
		log.Errorf("failed to get active goals for user %d: %s", userID, err)
		http.Error(w, "failed to get active goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, goals, http.StatusOK)
}
