package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vblajic/chirper/internal/config"
	"github.com/vblajic/chirper/internal/database"
	postgresrepo "github.com/vblajic/chirper/internal/repository/postgres"
	"github.com/vblajic/chirper/internal/service"
	"github.com/vblajic/chirper/internal/transport/http/handlers"
	"github.com/vblajic/chirper/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	if err := database.Migrate(cfg); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()
	log.Info("connected to database")

	db := database.NewPool(pool)

	// Repositories
	profileRepo := postgresrepo.NewProfileRepo(db)
	messageRepo := postgresrepo.NewMessageRepo(db, log)
	circleRepo := postgresrepo.NewCircleRepo(db)

	// Services
	profileService := service.NewProfileService(profileRepo, log)
	messageService := service.NewMessageService(messageRepo, log)
	circleService := service.NewCircleService(circleRepo, log)

	// Handlers
	profileHandler := handlers.NewProfileHandler(profileService)
	messageHandler := handlers.NewMessageHandler(messageService)
	circleHandler := handlers.NewCircleHandler(circleService)

	// Routes
	mux := handlers.NewRouter(profileHandler, messageHandler, circleHandler)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	handler := middleware.CORS(middleware.Logging(log)(mux))

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("error during server shutdown", zap.Error(err))
	} else {
		log.Info("server stopped gracefully")
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
