package events

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type eventsLister interface {
	List(ctx context.Context, params ListParams) ([]Event, int, error)
}

type ListResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

type Handler struct {
	service eventsLister
}

func NewHandler(service eventsLister) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/events/page/{page}/size/{size}", h.HandleList).Methods("GET", "OPTIONS").Name("list-events")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.list")
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
	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		eventType := EventType(typeParam)
		if !eventType.IsValid() {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}
		params.Type = &eventType
	}

	events, total, err := h.service.List(ctx, params)
	if err != nil {
		log.Errorf("list events for user %d: %s", userID, err)
		http.Error(w, "failed to list events", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Events: events,
		Total:  total,
	}, http.StatusOK)
}
