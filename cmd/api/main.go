// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/projectmentor/projectmentor-backend/internal/api/handlers"
	"github.com/projectmentor/projectmentor-backend/internal/config"
	"github.com/projectmentor/projectmentor-backend/internal/cron"
	"github.com/projectmentor/projectmentor-backend/internal/db"
	"github.com/projectmentor/projectmentor-backend/internal/email"
	"github.com/projectmentor/projectmentor-backend/internal/repository"
	"github.com/projectmentor/projectmentor-backend/internal/seed"
	"github.com/projectmentor/projectmentor-backend/internal/service"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations FIRST
	// ============================================
	log.Println("[DB] Running database migrations...")
	migrationsPath := "./internal/db/migrations"
	if err := db.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatalf("[DB] Migration failed: %v", err)
	}
	log.Println("[DB] Database migrations completed")

	// ============================================
	// Initialize PostgreSQL
	// ============================================
	postgres, err := db.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[DB] Failed to connect to PostgreSQL: %v", err)
	}
	defer postgres.Close()

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(postgres.Pool)
	log.Println("[Init] Repositories initialized")

	// ============================================
	// Initialize Redis (optional)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.Printf("[Redis] Failed to connect: %v (continuing without cache)", err)
			redisDB = nil
		} else {
			defer redisDB.Close()
			log.Println("[Redis] Cache enabled")
		}
	}

	// ============================================
	// Initialize Email Service (optional)
	// ============================================
	var emailSvc *email.Service
	if cfg.SMTPHost != "" {
		emailSvc = email.NewService(&email.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			FromName: cfg.SMTPFromName,
			UseTLS:   cfg.SMTPUseTLS,
		})
		log.Println("[Email] Email service initialized")
	} else {
		log.Println("[Email] Not configured (SMTP_HOST not set)")
	}

	// ============================================
	// Seed Data (for development)
	// ============================================
	if cfg.Environment != "production" {
		seed.SeedData(repos)
	}

	// ============================================
	// Initialize All Services
	// ============================================
	var cache service.Cache
	if redisDB != nil {
		cache = redisDB
	}
	services := service.NewServices(&service.ServiceDeps{
		Config:   cfg,
		Repos:    repos,
		EmailSvc: emailSvc,
		Cache:    cache,
	})
	log.Println("[Init] All services initialized")

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services)

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	cronScheduler := cron.NewScheduler(repos.MemberRequestRepo)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness probes
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Project Mentor API is live!")
	})
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Server is working!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"database":  "connected",
			"cache":     getCacheStatus(redisDB),
			"email":     getEmailStatus(emailSvc),
		})
	})

	// ============================================
	// API Routes (mounted at root, no /api prefix)
	// ============================================

	// Teams & membership
	r.POST("/teams", h.Team.Create)
	r.GET("/teams/:teamCode", h.Team.Get)
	r.POST("/send-team-code", h.Team.SendTeamCode)
	r.POST("/leader-login", h.Team.LeaderLogin)
	r.POST("/member-login", h.Team.MemberLogin)
	r.POST("/member-requests", h.Team.CreateRequest)
	r.GET("/member-requests/:teamCode", h.Team.ListRequests)
	r.POST("/teams/:teamCode/accept-member", h.Team.AcceptMember)
	r.PUT("/member-requests/:requestId/reject", h.Team.RejectMember)
	r.PUT("/teams/:teamCode/members/:email/mute", h.Team.ToggleMute)
	r.DELETE("/teams/:teamCode/members/:email", h.Team.RemoveMember)

	// Projects
	r.POST("/generate-project", h.Project.Generate)
	r.POST("/lock-project", h.Project.Lock)
	r.GET("/projects/team/:teamCode", h.Project.GetByTeam)
	r.POST("/projects/:id/roadmap", h.Project.GetRoadmap)
	r.POST("/projects/:id/tasks", h.Project.GetTasks)
	r.POST("/projects/:id/summary", h.Project.GetSummary)
	r.POST("/projects/:id/viva-qa", h.Project.GetVivaQA)

	// Tasks & submissions
	r.POST("/tasks", h.Task.CreateTask)
	r.GET("/tasks/team/:teamCode", h.Task.ListTasks)
	r.PUT("/tasks/:id", h.Task.UpdateTask)
	r.POST("/submissions", h.Task.CreateSubmission)
	r.GET("/submissions/:teamCode", h.Task.ListSubmissions)
	r.PUT("/submissions/:id", h.Task.UpdateSubmission)

	// Chat
	r.POST("/messages", h.Chat.Send)
	r.GET("/messages/:teamCode", h.Chat.List)
	r.PUT("/messages/:id/pin", h.Chat.TogglePin)
	r.DELETE("/messages/:id", h.Chat.Delete)

	r.NoRoute(func(c *gin.Context) {
		log.Printf("[404] Route not found: %s %s", c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
	})

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("[Server] Starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] Failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[Server] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Server] Forced to shutdown: %v", err)
	}

	log.Println("[Server] Exited")
}

func getCacheStatus(redisDB *db.RedisDB) string {
	if redisDB != nil {
		return "connected"
	}
	return "disabled"
}

func getEmailStatus(emailSvc *email.Service) string {
	if emailSvc != nil {
		return "configured"
	}
	return "disabled"
}
