package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillbridge-backend/config"
	v1 "skillbridge-backend/internal/delivery/http/v1"
	"skillbridge-backend/internal/fixture"
	"skillbridge-backend/internal/repository/localstore"
	"skillbridge-backend/internal/session"
	"skillbridge-backend/internal/usecase"
	"skillbridge-backend/pkg/logger"
	"skillbridge-backend/pkg/store"
	"skillbridge-backend/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting skillbridge backend", "port", cfg.Port, "dataDir", cfg.DataDir)

	// 3. Setup Store
	st, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Log.Error("Failed to open data directory", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	userRepo := localstore.NewUserRepository(st)
	jobRepo := localstore.NewJobRepository(st)
	seekerRepo := localstore.NewSeekerRepository(st, fixture.JobSeekers())

	// 5. Setup UseCases
	engine := validation.NewEngine()
	sess := session.New()
	authUC := usecase.NewAuthUsecase(userRepo, engine, sess)
	jobUC := usecase.NewJobUsecase(jobRepo, engine, fixture.JobListings(), fixture.SampleJobs())
	candidateUC := usecase.NewCandidateUsecase(seekerRepo, engine)
	healthUC := usecase.NewHealthUsecase(userRepo)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		JobUC:       jobUC,
		CandidateUC: candidateUC,
		HealthUC:    healthUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
