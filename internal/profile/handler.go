package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, userID int) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
}

type locationResolver interface {
	Location(ctx context.Context, req *http.Request, profileTimezone *string) *time.Location
}

type MetricsResponse struct {
	fitness.Metrics
	Goal fitness.NutritionGoal `json:"goal"`
}

type Handler struct {
	repo      profileRepo
	locations locationResolver
	Now       func() time.Time
}

func NewHandler(repo profileRepo, locations locationResolver) *Handler {
	return &Handler{
		repo:      repo,
		locations: locations,
		Now:       time.Now,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/profile", h.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	router.HandleFunc("/profile", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
	router.HandleFunc("/profile/metrics", h.HandleMetrics).Methods("GET", "OPTIONS").Name("profile-metrics")
}

func (h *Handler) loadProfile(ctx context.Context, w http.ResponseWriter) (*Profile, bool) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	p, err := h.repo.Get(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Errorf("get profile for user %d: %s", userID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return nil, false
	}
	return p, true
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	p, ok := h.loadProfile(ctx, w)
	if !ok {
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	p, ok := h.loadProfile(ctx, w)
	if !ok {
		return
	}

	if err := req.Apply(p, h.Now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Update(ctx, p); err != nil {
		log.Errorf("update profile for user %d: %s", p.UserID, err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.metrics")
	defer span.End()

	p, ok := h.loadProfile(ctx, w)
	if !ok {
		return
	}

	goal := fitness.ParseNutritionGoal(r.URL.Query().Get("goal"))
	today := h.Now().In(h.locations.Location(ctx, r, p.Timezone))

	pkg.WriteJSON(w, MetricsResponse{
		Metrics: fitness.Compute(p.Snapshot(), goal, today),
		Goal:    goal,
	}, http.StatusOK)
}
