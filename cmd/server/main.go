package main

import (
	stdlog "log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/smart-workspace/internal/config"
	"github.com/yukikurage/smart-workspace/internal/constants"
	"github.com/yukikurage/smart-workspace/internal/handlers"
	"github.com/yukikurage/smart-workspace/internal/logger"
	"github.com/yukikurage/smart-workspace/internal/middleware"
	"github.com/yukikurage/smart-workspace/internal/services"
	"github.com/yukikurage/smart-workspace/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize structured logging
	log, err := logger.New(cfg.GinMode)
	if err != nil {
		stdlog.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	// Initialize the flat-file store
	store := storage.NewFileStore(cfg.DataFilePath, log)
	if err := store.EnsureExists(); err != nil {
		log.Fatal("failed to initialize data file", zap.Error(err))
	}

	// Initialize services and handlers
	authService := services.NewAuthService(store)
	noteService := services.NewNoteService(store)
	authHandler := handlers.NewAuthHandler(authService)
	noteHandler := handlers.NewNoteHandler(noteService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.WithRequestLogging(log))

	// Setup cookie-backed session middleware
	isProduction := cfg.GinMode == "release"
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 24 hours
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Board frontend
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.IndexFile)
	})
	r.Static("/static", cfg.StaticDir)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.GET("/me", authHandler.Me)
		api.POST("/check-username", authHandler.CheckUsername)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		// Note routes (protected)
		notes := api.Group("")
		notes.Use(middleware.RequireAuth())
		{
			notes.GET("/notes", noteHandler.ListNotes)
			notes.POST("/notes", noteHandler.CreateNote)
			notes.POST("/move", noteHandler.MoveNote)
			notes.DELETE("/notes/:id", noteHandler.DeleteNote)
		}
	}

	// Start server
	addr := ":" + cfg.Port
	log.Info("server starting", zap.String("addr", addr), zap.String("dataFile", cfg.DataFilePath))
	if err := r.Run(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
