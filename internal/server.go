package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fittrack/internal/activities"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/backup"
	"github.com/2beens/fittrack/internal/badges"
	"github.com/2beens/fittrack/internal/biometrics"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/dashboard"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/events"
	"github.com/2beens/fittrack/internal/geoip"
	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/misc"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/water"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	redisClient   *redis.Client
	loginChecker  *auth.LoginChecker
	authService   *auth.Service
	geoIP         *geoip.Resolver
	eventsService *events.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	IpInfoAPIKey            string
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if _, err := dbPool.Exec(ctx, db.Schema); err != nil {
		return nil, fmt.Errorf("apply db schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	sessionTTL := time.Duration(params.Config.SessionTTLHours) * time.Hour
	authService := auth.NewService(
		auth.NewRepo(dbPool),
		profile.NewRepo(dbPool),
		sessionTTL,
		rdb,
	)
	go authService.RunCleanup(ctx, time.Duration(params.Config.SessionsCleanupHours)*time.Hour)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	geoIP, err := geoip.NewResolver(
		geoip.NewIPInfoClient(params.IpInfoAPIKey, tracedHttpClient),
		rdb,
		params.Config.GeoIPCacheSizeMB,
		params.Config.DefaultTimezone,
		metricsManager,
	)
	if err != nil {
		return nil, fmt.Errorf("new geo ip resolver: %w", err)
	}

	eventsRepo := events.NewRepo(dbPool)
	eventsService := events.NewService(eventsRepo, nil, metricsManager)
	if len(params.Config.KafkaBrokers) > 0 {
		log.Infof("publishing events to kafka topic [%s]", params.Config.KafkaEventsTopic)
		eventsService = events.NewService(
			eventsRepo,
			events.NewKafkaWriter(params.Config.KafkaBrokers, params.Config.KafkaEventsTopic),
			metricsManager,
		)
	} else {
		log.Warnln("no kafka brokers set, events are only stored in the db")
	}

	return &Server{
		config:        params.Config,
		dbPool:        dbPool,
		versionInfo:   params.VersionInfo,
		redisClient:   rdb,
		authService:   authService,
		loginChecker:  auth.NewLoginChecker(sessionTTL, rdb),
		geoIP:         geoIP,
		eventsService: eventsService,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	profileRepo := profile.NewRepo(s.dbPool)
	activitiesRepo := activities.NewRepo(s.dbPool)
	biometricsRepo := biometrics.NewRepo(s.dbPool)
	waterRepo := water.NewRepo(s.dbPool)
	goalsRepo := goals.NewRepo(s.dbPool)
	locator := profile.NewLocator(profileRepo, s.geoIP)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.geoIP, s.versionInfo)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager)

	authHandler := auth.NewHandler(s.authService)
	authHandler.SetupRoutes(r, middleware.RateLimit(
		reqRateLimiter,
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	))

	profileHandler := profile.NewHandler(profileRepo, s.geoIP)
	profileHandler.SetupRoutes(r)

	activitiesService := activities.NewService(activitiesRepo, profileRepo, s.eventsService, s.metricsManager)
	activitiesHandler := activities.NewHandler(activitiesService)
	activitiesHandler.SetupRoutes(r)

	biometricsService := biometrics.NewService(biometricsRepo, profileRepo, s.eventsService)
	biometrics.NewHandler(biometricsService).SetupRoutes(r)

	water.NewHandler(water.NewService(waterRepo, s.eventsService), locator).SetupRoutes(r)
	mealsService := meals.NewService(meals.NewRepo(s.dbPool), s.eventsService)
	meals.NewHandler(mealsService, locator).SetupRoutes(r)

	goalsService := goals.NewService(goalsRepo, s.eventsService)
	goals.NewHandler(goalsService, locator).SetupRoutes(r)

	badgesService := badges.NewService(
		badges.NewRepo(s.dbPool),
		activitiesRepo,
		waterRepo,
		goalsRepo,
		profileRepo,
		s.eventsService,
		s.metricsManager,
	)
	badges.NewHandler(badgesService, locator).SetupRoutes(r)

	dashboardService := dashboard.NewService(dashboard.Deps{
		Profiles:   profileRepo,
		Weights:    biometricsRepo,
		WeightLog:  biometricsService,
		Activities: activitiesRepo,
		Analyzer:   activities.NewAnalyzer(activitiesRepo),
		Water:      waterRepo,
		Goals:      goalsService,
		Meals:      mealsService,
	})
	dashboard.NewHandler(dashboardService, locator).SetupRoutes(r)

	events.NewHandler(s.eventsService).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)

	s.setBackupReportUnixSocket(ctx)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, the rest is still used by the ones in flight
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if err := s.eventsService.Close(); err != nil {
		log.Errorf("failed to close events kafka writer: %s", err)
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	log.Debugln("removing backup report unix socket ...")
	if err := os.RemoveAll(s.config.BackupUnixSocketDir); err != nil {
		log.Errorf("failed to cleanup backup report unix socket dir: %s", err)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

func (s *Server) setBackupReportUnixSocket(ctx context.Context) {
	if err := os.MkdirAll(s.config.BackupUnixSocketDir, os.ModePerm); err != nil {
		log.Errorf("failed to create backup report unix socket dir: %s", err)
		return
	}

	if addr, err := backup.ReportListenerSetup(
		ctx,
		s.config.BackupUnixSocketDir,
		s.config.BackupUnixSocketFileName,
		s.metricsManager,
	); err != nil {
		log.Errorf("failed to create backup report unix socket: %s", err)
	} else {
		log.Debugf("backup report unix socket: %s", addr)
	}
}
