package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"courtside/coaching-app/internal/api"
	"courtside/coaching-app/internal/config"
	"courtside/coaching-app/internal/repository/mongo"
	"courtside/coaching-app/internal/service"
)

func main() {
	log.Println("Starting Coaching App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("FATAL: jwt.secret is not configured")
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureAcademyIndexes(ctx, appDB.Collection("academies"))
		mongo.EnsurePlayerIndexes(ctx, appDB.Collection("players"))
		mongo.EnsureObjectiveIndexes(ctx, appDB.Collection("objectives"))
		mongo.EnsureTournamentIndexes(ctx, appDB.Collection("tournaments"))
		mongo.EnsureSessionIndexes(ctx, appDB.Collection("sessions"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	academyRepo := mongo.NewMongoAcademyRepository(appDB)
	playerRepo := mongo.NewMongoPlayerRepository(appDB)
	objectiveRepo := mongo.NewMongoObjectiveRepository(appDB)
	tournamentRepo := mongo.NewMongoTournamentRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	academyService := service.NewAcademyService(academyRepo)
	playerService := service.NewPlayerService(playerRepo, academyRepo)
	objectiveService := service.NewObjectiveService(objectiveRepo, playerRepo, academyRepo)
	tournamentService := service.NewTournamentService(tournamentRepo, playerRepo, academyRepo)
	sessionService := service.NewSessionService(sessionRepo, playerRepo, academyRepo)
	statsService := service.NewStatsService(sessionRepo, playerRepo, academyRepo)
	liveService := service.NewLiveService(playerRepo, academyRepo, sessionRepo, cfg.Live.SnapshotDir)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		academyService,
		playerService,
		objectiveService,
		tournamentService,
		sessionService,
		statsService,
		liveService,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
