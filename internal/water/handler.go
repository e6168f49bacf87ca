package water

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=water_test

type waterService interface {
	Add(ctx context.Context, in Intake, now time.Time) (*AddResult, error)
	Today(ctx context.Context, userID int, now time.Time) (Summary, error)
}

type userLocator interface {
	UserLocation(ctx context.Context, req *http.Request, userID int) *time.Location
}

type Handler struct {
	service waterService
	locator userLocator
	Now     func() time.Time
}

func NewHandler(service waterService, locator userLocator) *Handler {
	return &Handler{
		service: service,
		locator: locator,
		Now:     time.Now,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/water", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-water")
	router.HandleFunc("/water/today", h.HandleToday).Methods("GET", "OPTIONS").Name("water-today")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.add")
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

	var in Intake
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("log water, unmarshal json params: %s", err)
		http.Error(w, "log water failed", http.StatusBadRequest)
		return
	}
	in.ID = 0
	in.UserID = userID

	now := h.Now().In(h.locator.UserLocation(ctx, r, userID))
	res, err := h.service.Add(ctx, in, now)
	if errors.Is(err, ErrInvalidIntake) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to log water for user %d: %s", userID, err)
		http.Error(w, "error, failed to log water", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.water.today")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	now := h.Now().In(h.locator.UserLocation(ctx, r, userID))
	summary, err := h.service.Today(ctx, userID, now)
	if err != nil {
		log.Errorf("failed to get water summary for user %d: %s", userID, err)
		http.Error(w, "failed to get water summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}
