package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Dashboard(ctx context.Context, userID int, now time.Time, goal fitness.NutritionGoal) (*Dashboard, error)
	Progress(ctx context.Context, userID int, now time.Time) (*Progress, error)
}

type userLocator interface {
	UserLocation(ctx context.Context, req *http.Request, userID int) *time.Location
}

type Handler struct {
	service dashboardService
	locator userLocator
	Now     func() time.Time
}

func NewHandler(service dashboardService, locator userLocator) *Handler {
	return &Handler{
		service: service,
		locator: locator,
		Now:     time.Now,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard", h.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	router.HandleFunc("/progress", h.HandleProgress).Methods("GET", "OPTIONS").Name("progress")
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goal := fitness.ParseNutritionGoal(r.URL.Query().Get("goal"))
	now := h.Now().In(h.locator.UserLocation(ctx, r, userID))
	d, err := h.service.Dashboard(ctx, userID, now, goal)
	if err != nil {
		log.Errorf("failed to build dashboard for user %d: %s", userID, err)
		http.Error(w, "unable to load dashboard data", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, d, http.StatusOK)
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	now := h.Now().In(h.locator.UserLocation(ctx, r, userID))
	p, err := h.service.Progress(ctx, userID, now)
	if err != nil {
		log.Errorf("failed to build progress for user %d: %s", userID, err)
		http.Error(w, "unable to load progress data", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}
