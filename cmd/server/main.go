package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"liftlog/workout-app/internal/api"
	"liftlog/workout-app/internal/config"
	"liftlog/workout-app/internal/repository"
	"liftlog/workout-app/internal/repository/memory"
	mongorepo "liftlog/workout-app/internal/repository/mongo"
	"liftlog/workout-app/internal/service"
	"liftlog/workout-app/internal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.Info("starting workout app server")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}

	// --- Initialize Repositories ---
	var (
		userRepo     repository.UserRepository
		exerciseRepo repository.ExerciseRepository
		templateRepo repository.TemplateRepository
		planRepo     repository.PlanRepository
		sessionRepo  repository.SessionRepository
		photoRepo    repository.PhotoRepository
	)

	if cfg.Database.Driver == "memory" {
		log.Warn("using in-memory storage; data will not survive a restart")
		userRepo = memory.NewUserRepository()
		exerciseRepo = memory.NewExerciseRepository()
		templateRepo = memory.NewTemplateRepository()
		planRepo = memory.NewPlanRepository()
		sessionRepo = memory.NewSessionRepository()
		photoRepo = memory.NewPhotoRepository()
	} else {
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.WithError(err).Fatal("could not connect to MongoDB")
		}
		defer func() {
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.WithError(err).Error("failed to disconnect MongoDB")
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.WithField("database", cfg.Database.Name).Info("database connection established")

		// --- Ensure Indexes ---
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			for name, fn := range map[string]func() error{
				"users":             func() error { return mongorepo.EnsureUserIndexes(ctx, appDB.Collection("users")) },
				"exercises":         func() error { return mongorepo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises")) },
				"workout_templates": func() error { return mongorepo.EnsureTemplateIndexes(ctx, appDB.Collection("workout_templates")) },
				"workout_plans":     func() error { return mongorepo.EnsurePlanIndexes(ctx, appDB.Collection("workout_plans")) },
				"workout_sessions":  func() error { return mongorepo.EnsureSessionIndexes(ctx, appDB.Collection("workout_sessions")) },
				"progress_photos":   func() error { return mongorepo.EnsurePhotoIndexes(ctx, appDB.Collection("progress_photos")) },
			} {
				if err := fn(); err != nil {
					log.WithError(err).WithField("collection", name).Warn("index creation failed")
				}
			}
			log.Info("index creation process completed")
		}()

		userRepo = mongorepo.NewUserRepository(appDB)
		exerciseRepo = mongorepo.NewExerciseRepository(appDB)
		templateRepo = mongorepo.NewTemplateRepository(appDB)
		planRepo = mongorepo.NewPlanRepository(appDB)
		sessionRepo = mongorepo.NewSessionRepository(appDB)
		photoRepo = mongorepo.NewPhotoRepository(appDB)
	}

	// --- Initialize Storage ---
	assetStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize S3 storage")
	}

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	exerciseService := service.NewExerciseService(exerciseRepo)
	cacheService := service.NewCacheService(exerciseRepo)
	templateService := service.NewTemplateService(templateRepo, exerciseRepo)
	importService := service.NewImportService(templateRepo, exerciseRepo, templateService)
	planService := service.NewPlanService(planRepo, templateRepo)
	sessionService := service.NewSessionService(sessionRepo, planRepo, templateRepo, cacheService)
	photoService := service.NewPhotoService(photoRepo, assetStorage)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		api.NewAuthHandler(authService),
		api.NewExerciseHandler(exerciseService),
		api.NewTemplateHandler(templateService, importService),
		api.NewPlanHandler(planService),
		api.NewSessionHandler(sessionService),
		api.NewPhotoHandler(photoService),
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen and serve error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}
	log.Info("server exiting")
}
