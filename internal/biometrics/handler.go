package biometrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=biometrics_test

type biometricsService interface {
	Add(ctx context.Context, l Log) (*LogWithBMI, error)
	List(ctx context.Context, params ListParams) ([]LogWithBMI, int, error)
}

type ListResponse struct {
	Logs  []LogWithBMI `json:"logs"`
	Total int          `json:"total"`
}

type Handler struct {
	service biometricsService
}

func NewHandler(service biometricsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/biometrics", h.HandleAdd).Methods("POST", "OPTIONS").Name("add-biometrics")
	router.HandleFunc("/biometrics/page/{page}/size/{size}", h.HandleList).Methods("GET", "OPTIONS").Name("list-biometrics")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.biometrics.add")
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

	var l Log
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		log.Tracef("new biometrics, unmarshal json params: %s", err)
		http.Error(w, "add biometrics failed", http.StatusBadRequest)
		return
	}
	l.ID = 0
	l.UserID = userID

	added, err := h.service.Add(ctx, l)
	if errors.Is(err, ErrInvalidLog) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to add biometrics for user %d: %s", userID, err)
		http.Error(w, "error, failed to add biometrics", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.biometrics.list")
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

	logs, total, err := h.service.List(ctx, ListParams{
		UserID: userID,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		log.Errorf("failed to list biometrics for user %d: %s", userID, err)
		http.Error(w, "failed to list biometrics", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Logs:  logs,
		Total: total,
	}, http.StatusOK)
}
