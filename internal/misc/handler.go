package misc

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

const calculatorRequestsPerMin = 60

type timezoneResolver interface {
	Timezone(ctx context.Context, userIP string) (string, error)
}

type Handler struct {
	timezones   timezoneResolver
	versionInfo string
	Now         func() time.Time
}

func NewHandler(timezones timezoneResolver, versionInfo string) *Handler {
	return &Handler{
		timezones:   timezones,
		versionInfo: versionInfo,
		Now:         time.Now,
	}
}

type WhereAmIResponse struct {
	IP       string `json:"ip"`
	Timezone string `json:"timezone"`
}

type CalculatorResponse struct {
	Goal           fitness.NutritionGoal `json:"goal"`
	Metrics        fitness.Metrics       `json:"metrics"`
	CaloriesBurned *int                  `json:"calories_burned"`
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/whereami", handler.handleWhereAmI).Methods("GET").Name("whereami")

	// the calculator is public, keep it from being hammered
	calculatorRouter := mainRouter.PathPrefix("/calculator").Subrouter()
	calculatorRouter.HandleFunc("", handler.handleCalculator).Methods("GET", "OPTIONS").Name("calculator")
	calculatorRouter.Use(middleware.RateLimit(rateLimiter, "calculator", calculatorRequestsPerMin, metricsManager))
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleWhereAmI(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.whereAmI")
	defer span.End()

	userIP, err := pkg.ReadUserIP(r)
	if err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("get user ip: %s", err))
		http.Error(w, "geo ip info error", http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.String("user.ip", userIP))

	tz, err := handler.timezones.Timezone(ctx, userIP)
	if err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("get request timezone: %s", err))
		log.Errorf("error getting timezone for [%s]: %s", userIP, err)
		http.Error(w, "geo ip info error", http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.String("user.timezone", tz))

	pkg.WriteJSON(w, WhereAmIResponse{IP: userIP, Timezone: tz}, http.StatusOK)
}

func parseOptionalFloat(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}

func parseOptionalInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}

// calculatorSnapshot turns the query into the same snapshot a stored profile
// would give. Age is converted to a birth date relative to today.
func calculatorSnapshot(r *http.Request, today time.Time) (fitness.Snapshot, error) {
	s := fitness.Snapshot{ActivityLevel: fitness.ActivityLevelSedentary}

	var err error
	if s.WeightKg, err = parseOptionalFloat(r, "weight"); err != nil {
		return s, err
	}
	if s.HeightCm, err = parseOptionalFloat(r, "height"); err != nil {
		return s, err
	}

	age, err := parseOptionalInt(r, "age")
	if err != nil {
		return s, err
	}
	if age != nil {
		dob := today.AddDate(-*age, 0, 0)
		s.DateOfBirth = &dob
	}

	if raw := r.URL.Query().Get("gender"); raw != "" {
		gender, ok := fitness.ParseGender(raw)
		if !ok {
			return s, fmt.Errorf("invalid gender")
		}
		s.Gender = &gender
	}

	if raw := r.URL.Query().Get("activity_level"); raw != "" {
		level, ok := fitness.ParseActivityLevel(raw)
		if !ok {
			return s, fmt.Errorf("invalid activity_level")
		}
		s.ActivityLevel = level
	}

	return s, nil
}

func (handler *Handler) handleCalculator(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.calculator")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	today := handler.Now()
	snapshot, err := calculatorSnapshot(r, today)
	if err != nil {
		log.Tracef("calculator, bad query [%s]: %s", r.URL.RawQuery, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal := fitness.ParseNutritionGoal(r.URL.Query().Get("goal"))
	resp := CalculatorResponse{
		Goal:    goal,
		Metrics: fitness.Compute(snapshot, goal, today),
	}

	// optional burn estimate for a single activity
	if raw := r.URL.Query().Get("activity_type"); raw != "" {
		activityType, ok := fitness.ParseActivityType(raw)
		if !ok {
			http.Error(w, "invalid activity_type", http.StatusBadRequest)
			return
		}
		duration, err := parseOptionalInt(r, "duration")
		if err != nil || duration == nil {
			http.Error(w, "invalid duration", http.StatusBadRequest)
			return
		}
		weight := 0.0
		if snapshot.WeightKg != nil {
			weight = *snapshot.WeightKg
		}
		if calories, ok := fitness.CaloriesBurned(activityType, *duration, weight); ok {
			resp.CaloriesBurned = &calories
		}
	}

	span.SetAttributes(attribute.String("goal", string(goal)))
	pkg.WriteJSON(w, resp, http.StatusOK)
}
