package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitstats/internal/config"
	"github.com/2beens/fitstats/internal/db"
	"github.com/2beens/fitstats/internal/gymstats/dashboard"
	"github.com/2beens/fitstats/internal/gymstats/energy"
	"github.com/2beens/fitstats/internal/gymstats/events"
	"github.com/2beens/fitstats/internal/gymstats/exercises"
	gymstatsmcp "github.com/2beens/fitstats/internal/gymstats/mcp"
	"github.com/2beens/fitstats/internal/gymstats/profile"
	"github.com/2beens/fitstats/internal/middleware"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	HoneycombTracingEnabled bool
	OtelServiceName         string
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
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Config.ApplySchema {
		if err := db.ApplySchema(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
		log.Debugln("db schema applied")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		// the dashboard cache degrades to uncached reads without redis
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	serviceName := params.OtelServiceName
	if serviceName == "" {
		serviceName = "fitstats-backend"
	}
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName, rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	viewCache := dashboard.NewCache(
		s.redisClient,
		s.config.DashboardCacheSizeMB*1024*1024,
		s.config.DashboardCacheTTL.Duration,
		s.metricsManager,
	)

	setsRepo := exercises.NewRepo(s.dbPool)
	eventsRepo := events.NewRepo(s.dbPool)
	profileRepo := profile.NewRepo(s.dbPool)
	snapshotsRepo := energy.NewSnapshotsRepo(s.dbPool)

	calculator := energy.NewCalculator(eventsRepo, profileRepo, snapshotsRepo, s.metricsManager)

	u := r.PathPrefix("/users/{user:[0-9]+}").Subrouter()

	setsHandler := exercises.NewHandler(setsRepo, viewCache)
	u.HandleFunc("/sets", setsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-set")
	u.HandleFunc("/sets", setsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-set")
	u.HandleFunc("/sets/{id:[0-9]+}", setsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-set")
	u.HandleFunc("/sets/{id:[0-9]+}", setsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-set")
	u.HandleFunc("/sets/page/{page}/size/{size}", setsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-sets")

	eventsHandler := events.NewHandler(
		events.NewService(eventsRepo, calculator, viewCache),
	)
	u.HandleFunc("/events/weight", eventsHandler.HandleAddWeightReport).Methods("POST", "OPTIONS").Name("new-weight-report")
	u.HandleFunc("/events/intake", eventsHandler.HandleAddCalorieIntake).Methods("POST", "OPTIONS").Name("new-calorie-intake")
	u.HandleFunc("/events/burn", eventsHandler.HandleAddCalorieBurn).Methods("POST", "OPTIONS").Name("new-calorie-burn")
	u.HandleFunc("/events", eventsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-event")
	u.HandleFunc("/events/{id:[0-9]+}", eventsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-event")
	u.HandleFunc("/events", eventsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-events")

	profileHandler := profile.NewHandler(
		profile.NewService(profileRepo, calculator, viewCache),
	)
	u.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	u.HandleFunc("/profile", profileHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")

	dashboardService := dashboard.NewService(setsRepo, snapshotsRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService, viewCache)
	u.HandleFunc("/strength/sessions", dashboardHandler.HandleSessions).Methods("GET", "OPTIONS").Name("strength-sessions")
	u.HandleFunc("/strength/progress", dashboardHandler.HandleProgress).Methods("GET", "OPTIONS").Name("strength-progress")
	u.HandleFunc("/strength/muscle-groups", dashboardHandler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("strength-muscle-groups")
	u.HandleFunc("/insights", dashboardHandler.HandleInsights).Methods("GET", "OPTIONS").Name("insights")

	energyHandler := energy.NewHandler(snapshotsRepo, calculator, viewCache)
	u.HandleFunc("/energy/snapshots", energyHandler.HandleListSnapshots).Methods("GET", "OPTIONS").Name("energy-snapshots")
	u.HandleFunc("/energy/recompute", energyHandler.HandleRecompute).Methods("POST", "OPTIONS").Name("energy-recompute")
	u.HandleFunc("/energy/maintenance", energyHandler.HandleCurrentMaintenance).Methods("GET", "OPTIONS").Name("energy-maintenance")

	if s.config.McpEnabled {
		mcpServer := gymstatsmcp.NewServer(gymstatsmcp.NewContextService(
			gymstatsmcp.NewPoolSchemaRepo(s.dbPool),
			dashboardService,
			snapshotsRepo,
		))
		r.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil)).Name("mcp")
	}

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.LimitAndDrainRequest(middleware.DefaultMaxBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
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
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
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
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores they depend on go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
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

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
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
