package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

// TokenHeader carries the session token on every authenticated request.
const TokenHeader = "X-FITTRACK-TOKEN"

type authService interface {
	Register(ctx context.Context, creds Credentials) (*User, error)
	Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginResponse struct {
	UserID   int    `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Token    string `json:"token"`
}

type Handler struct {
	service authService
}

func NewHandler(service authService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers /a/register, /a/login and /a/logout with the given
// middlewares (rate limiting) applied only to them.
func (h *Handler) SetupRoutes(router *mux.Router, middlewares ...mux.MiddlewareFunc) {
	authRouter := router.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/register", h.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", h.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", h.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	authRouter.Use(middlewares...)
}

func decodeCredentials(r *http.Request) (Credentials, error) {
	var creds Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		err := json.NewDecoder(r.Body).Decode(&creds)
		return creds, err
	}
	if err := r.ParseForm(); err != nil {
		return creds, err
	}
	return Credentials{
		Username: r.Form.Get("username"),
		Password: r.Form.Get("password"),
	}, nil
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	creds, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("register, decode params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(ctx, creds)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrUserExists):
		http.Error(w, "error, username taken", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("register user [%s]: %s", creds.Username, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	// the new user is logged in right away
	token, err := h.service.Login(ctx, creds, time.Now())
	if err != nil {
		log.Errorf("login after register [%s]: %s", creds.Username, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %d", user.ID)
	pkg.WriteJSON(w, LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("login, decode params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if creds.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(ctx, creds, time.Now())
	if errors.Is(err, ErrWrongCredentials) {
		log.Tracef("failed login attempt for user: %s", creds.Username)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSON(w, LoginResponse{Token: token}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
