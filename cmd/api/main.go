package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/solid-logic-studios/bucketwise-planner/internal/config"
	"github.com/solid-logic-studios/bucketwise-planner/internal/handler"
	"github.com/solid-logic-studios/bucketwise-planner/internal/logging"
	"github.com/solid-logic-studios/bucketwise-planner/internal/middleware"
	"github.com/solid-logic-studios/bucketwise-planner/internal/repository"
	"github.com/solid-logic-studios/bucketwise-planner/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("bucketwise-api", cfg.LogLevel, cfg.AppEnv)

	db, err := connectDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	users := repository.NewUserRepository(db)
	debts := repository.NewDebtRepository(db)
	profiles := repository.NewProfileRepository(db)

	debtSvc := service.NewDebtService(debts)
	profileSvc := service.NewProfileService(profiles)
	planSvc := service.NewPlanService(debts, profiles)

	authHandler := handler.NewAuthHandler(users, cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	userHandler := handler.NewUserHandler(users)
	debtHandler := handler.NewDebtHandler(debtSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	planHandler := handler.NewPlanHandler(planSvc)

	authed := middleware.Auth(cfg.JWTSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	mux.Handle("GET /api/v1/users/{id}", authed(http.HandlerFunc(userHandler.GetByID)))

	mux.Handle("POST /api/v1/users/{id}/debts", authed(http.HandlerFunc(debtHandler.Create)))
	mux.Handle("GET /api/v1/users/{id}/debts", authed(http.HandlerFunc(debtHandler.List)))
	mux.Handle("PUT /api/v1/users/{id}/debts/{debtID}", authed(http.HandlerFunc(debtHandler.Update)))
	mux.Handle("DELETE /api/v1/users/{id}/debts/{debtID}", authed(http.HandlerFunc(debtHandler.Delete)))

	mux.Handle("GET /api/v1/users/{id}/profile", authed(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PUT /api/v1/users/{id}/profile", authed(http.HandlerFunc(profileHandler.Put)))

	mux.Handle("GET /api/v1/users/{id}/plans/snowball", authed(http.HandlerFunc(planHandler.Snowball)))
	mux.Handle("GET /api/v1/users/{id}/plans/mortgage", authed(http.HandlerFunc(planHandler.Mortgage)))

	root := middleware.RequestID(middleware.Logging(middleware.Recovery(mux)))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func connectDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connectDB: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeS) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeS) * time.Second)

	for i := range 30 {
		if err = db.Ping(); err == nil {
			return db, nil
		}
		slog.Info("waiting for database", "attempt", i+1)
		time.Sleep(time.Second)
	}

	db.Close()
	return nil, fmt.Errorf("connectDB: gave up after 30 attempts: %w", err)
}
