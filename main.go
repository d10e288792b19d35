package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/LovationAdmin/travel-api/config"
	"github.com/LovationAdmin/travel-api/handlers"
	"github.com/LovationAdmin/travel-api/middleware"
	"github.com/LovationAdmin/travel-api/migration"
	"github.com/LovationAdmin/travel-api/repository"
	"github.com/LovationAdmin/travel-api/routes"
	"github.com/LovationAdmin/travel-api/services"
	"github.com/LovationAdmin/travel-api/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	utils.ConfigureLogging(cfg.IsProduction(), cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	log.Println("✅ Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	gdb, err := config.OpenGorm(db, cfg.IsProduction())
	if err != nil {
		log.Fatal("Failed to initialise gorm: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repositories -> services -> handlers
	travelRepo := repository.NewTravelRepo(gdb)
	participantRepo := repository.NewParticipantRepo(gdb)
	financeRepo := repository.NewFinanceRepo(gdb)
	contactRepo := repository.NewContactRepo(gdb)
	userRepo := repository.NewUserRepo(gdb)

	wsHandler := handlers.NewWSHandler()
	defer wsHandler.Close()

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)

	travelService := services.NewTravelService(travelRepo, participantRepo, financeRepo, wsHandler)
	participantService := services.NewParticipantService(participantRepo, travelRepo, wsHandler)
	financeService := services.NewFinanceService(financeRepo, travelRepo, wsHandler)
	contactService := services.NewContactService(contactRepo, wsHandler)
	authService := services.NewAuthService(userRepo, tokens, cfg.DataEncryptionKey)
	adminService := services.NewAdminService(
		travelRepo, participantRepo, financeRepo, contactRepo, userRepo,
		migration.NewSeeder(gdb), wsHandler,
		services.AdminConfig{ExportDir: cfg.ExportDir, SeedSecret: cfg.SeedSecret},
	)

	router := gin.New()
	router.Use(gin.Recovery())

	allowedOrigins := []string{cfg.FrontendURL}
	log.Printf("🌍 CORS: Allowing origins:")
	for _, origin := range allowedOrigins {
		log.Printf("   - %s", origin)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-auth-token"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	router.Use(middleware.RequestLogger())

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	go limiter.RunCleanup(ctx)
	router.Use(limiter.Middleware())

	routes.Mount(router, routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Travel:      handlers.NewTravelHandler(travelService),
		Participant: handlers.NewParticipantHandler(participantService),
		Finance:     handlers.NewFinanceHandler(financeService),
		Contact:     handlers.NewContactHandler(contactService),
		Admin:       handlers.NewAdminHandler(adminService),
		WS:          wsHandler,
	}, middleware.AuthMiddleware(tokens))

	router.GET("/health", func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := db.PingContext(c.Request.Context()); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": version,
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("❌ Shutdown failed: %v", err)
		}
	}()

	utils.LogStartup("Travel Management API", version, cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Failed to start server: ", err)
	}
	log.Println("👋 Server stopped")
}
