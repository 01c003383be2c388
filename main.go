package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"betterBiteAPI/handlers"
	"betterBiteAPI/internal/config"
	"betterBiteAPI/internal/kvstore"
	"betterBiteAPI/internal/seed"
	"betterBiteAPI/internal/store"
	"betterBiteAPI/middleware"
	"betterBiteAPI/services"
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	kv, err := kvstore.New(kvstore.Config{
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to open key-value store", zap.Error(err))
	}

	data := &seed.Data{}
	if cfg.SeedData {
		data = seed.Load(time.Now().UTC())
		logger.Info("Seed data loaded",
			zap.Int("challenges", len(data.Challenges)),
			zap.Int("records", len(data.Records)),
			zap.Int("users", len(data.Users)),
		)
	}

	challengeService := services.NewChallengeService(
		store.NewChallengeStore(data.Challenges...),
		store.NewRecordStore(data.Records...),
		store.NewEnrollmentStore(data.Enrollments...),
		logger,
	)
	userService, err := services.NewUserService(kv, data.Users, bcrypt.DefaultCost, logger)
	if err != nil {
		logger.Fatal("Failed to initialize user service", zap.Error(err))
	}
	recipeService := services.NewRecipeService(data.Recipes, data.Tags)
	notificationService := services.NewNotificationService(data.Notifications, logger)

	middleware.InitPrometheus()
	services.InitMetrics()

	// Initialize handlers
	apiHandlers := &handlers.Handlers{
		Challenges:    handlers.NewChallengeHandler(challengeService),
		Users:         handlers.NewUserHandler(userService),
		Recipes:       handlers.NewRecipeHandler(recipeService),
		Notifications: handlers.NewNotificationHandler(notificationService),
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.CleanupVisitors(rootCtx)

	r := mux.NewRouter()
	r.Use(middleware.TraceID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(limiter.Middleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(cfg.MetricsUser, cfg.MetricsPass)(promhttp.Handler()))
	if cfg.PprofSecret != "" {
		r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecurityMiddleware(cfg.PprofSecret)(http.DefaultServeMux))
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := kv.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "key-value store unavailable"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "betterBite-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// API V1 SUBROUTER
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api/v1").Subrouter()
	apiHandlers.Register(api,
		middleware.SessionMiddleware(userService, logger),
		middleware.OptionalSessionMiddleware(userService),
	)

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Trace-ID", "X-Pprof-Secret"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length", "X-Trace-ID"}),
	)

	port := ":" + cfg.Port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("Got signal", zap.String("signal", sig.String()))
	stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := kv.Close(); err != nil {
		logger.Warn("Failed to close key-value store", zap.Error(err))
	}

	logger.Info("Server shutdown complete")
}
