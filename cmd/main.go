package main

import (
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/adamanr/leave_service/internal/api"
	"github.com/adamanr/leave_service/internal/config"
	"github.com/adamanr/leave_service/internal/controllers"
	"github.com/adamanr/leave_service/internal/database"
	"github.com/adamanr/leave_service/internal/session"
	"github.com/adamanr/leave_service/internal/store"
	logging "github.com/adamanr/leave_service/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger, err := logging.SetupLogger("server.log", slog.LevelInfo)
	if err != nil {
		log.Fatal("Failed to setup logger:", err)
		return
	}
	slog.SetDefault(logger)

	cfg, err := config.GetConfig(logger)
	if err != nil {
		log.Fatal("Failed to load config:", err)
		return
	}

	sessions, err := newSessions(cfg, logger)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
		return
	}

	st, err := newStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to setup storage", slog.Any("error", err))
		return
	}

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	prometheus.MustRegister(httpRequestsTotal)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)

	r.Use(logging.Middleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			httpRequestsTotal.WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(ww.Status())).Inc()
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	server := api.NewServer(&controllers.Dependens{
		Store:    st,
		Sessions: sessions,
		Logger:   logger,
		Config:   cfg,
	})
	server.Routes(r)

	s := &http.Server{
		Handler:           r,
		Addr:              cfg.Server.Host,
		WriteTimeout:      30 * time.Second,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server is starting", slog.String("address", cfg.Server.Host))
	log.Fatal(s.ListenAndServe())
}

func newSessions(cfg *config.Config, logger *slog.Logger) (session.Sessions, error) {
	if cfg.Redis.RedisAddr == "" {
		logger.Info("No redis address configured, using in-process sessions")
		return session.NewMemory(), nil
	}

	rdb, err := database.NewRedisConn(cfg, logger)
	if err != nil {
		return nil, err
	}

	return session.NewRedis(rdb), nil
}

func newStore(cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	if cfg.Storage.Driver == "postgres" {
		db, err := database.NewConnect(cfg, logger)
		if err != nil {
			return nil, err
		}

		return store.NewPostgres(db, logger), nil
	}

	users, requests, balances, err := store.DemoSeed()
	if err != nil {
		return nil, err
	}

	logger.Info("Using seeded in-memory storage")
	return store.NewMemory(users, requests, balances), nil
}
