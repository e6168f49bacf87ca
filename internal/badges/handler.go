package badges

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=badges_test

type badgesService interface {
	Check(ctx context.Context, userID int, now time.Time) (*CheckResult, error)
	Status(ctx context.Context, userID int, now time.Time) (*Status, error)
}

type userLocator interface {
	UserLocation(ctx context.Context, req *http.Request, userID int) *time.Location
}

type Handler struct {
	service badgesService
	locator userLocator
	Now     func() time.Time
}

func NewHandler(service badgesService, locator userLocator) *Handler {
	return &Handler{
		service: service,
		locator: locator,
		Now:     time.Now,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/badges", h.HandleStatus).Methods("GET", "OPTIONS").Name("badges")
	router.HandleFunc("/badges/check", h.HandleCheck).Methods("POST", "OPTIONS").Name("check-badges")
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.badges.status")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	now := h.Now().In(h.locator.UserLocation(ctx, r, userID))
	status, err := h.service.Status(ctx, userID, now)
	if err != nil {
		log.Errorf("failed to get badges for user %d: %s", userID, err)
		http.Error(w, "failed to get badges", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.badges.check")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	now := h.Now().In(h.locator.UserLocation(ctx, r, userID))
	res, err := h.service.Check(ctx, userID, now)
	if err != nil {
		log.Errorf("failed to check badges for user %d: %s", userID, err)
		http.Error(w, "failed to check badges", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}
