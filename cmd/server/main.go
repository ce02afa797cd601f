package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/bookshelf/backend/internal/application/identity"
	libraryapp "github.com/bookshelf/backend/internal/application/library"
	socialapp "github.com/bookshelf/backend/internal/application/social"
	"github.com/bookshelf/backend/internal/infrastructure/config"
	"github.com/bookshelf/backend/internal/infrastructure/logger"
	"github.com/bookshelf/backend/internal/infrastructure/persistence"
	"github.com/bookshelf/backend/internal/infrastructure/storage"
	"github.com/bookshelf/backend/internal/interfaces/http/handler"
	"github.com/bookshelf/backend/internal/interfaces/http/middleware"
	"github.com/bookshelf/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting bookshelf backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Connect to the document store
	ctx := context.Background()
	db, err := persistence.NewDatabase(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	bookRepo := persistence.NewMongoBookRepository(db)
	authorRepo := persistence.NewMongoAuthorRepository(db)
	categoryRepo := persistence.NewMongoCategoryRepository(db)
	userRepo := persistence.NewMongoUserRepository(db)
	friendRequestRepo := persistence.NewMongoFriendRequestRepository(db)
	notificationRepo := persistence.NewMongoNotificationRepository(db)
	tokenRepo := persistence.NewMongoTokenRepository(db, "drive")

	// Build the OAuth credentials when the drive provider is configured; the
	// consent routes are only mounted in that case.
	var driveCreds *storage.OAuthCredentials
	if cfg.Drive.ClientID != "" {
		driveCreds, err = storage.NewOAuthCredentials(&cfg.Drive, tokenRepo)
		if err != nil {
			log.Fatal("Failed to configure drive credentials", zap.Error(err))
		}
	}

	// Select the blob storage backend
	var blobStorage libraryapp.ObjectStorage
	switch cfg.Storage.Backend {
	case "s3":
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithS3Logger(log))
		if err != nil {
			log.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		blobStorage = s3Storage
	case "drive":
		if driveCreds == nil {
			log.Fatal("Storage backend is drive but drive credentials are not configured")
		}
		blobStorage = storage.NewDriveStorage(&cfg.Drive, driveCreds, storage.WithDriveLogger(log))
	case "stub":
		blobStorage = storage.NewMemoryStorage()
		log.Warn("Using in-memory blob storage, uploads will not survive restarts")
	}
	log.Info("Blob storage ready", zap.String("backend", cfg.Storage.Backend))

	// Initialize application services
	bookService := libraryapp.NewBookService(bookRepo, authorRepo, userRepo, notificationRepo, blobStorage, log)
	authorService := libraryapp.NewAuthorService(authorRepo, bookRepo, log)
	categoryService := libraryapp.NewCategoryService(categoryRepo)
	importService := libraryapp.NewImportService(bookRepo, blobStorage, log)
	userService := identityapp.NewUserService(userRepo)
	friendService := socialapp.NewFriendService(friendRequestRepo, notificationRepo, userRepo, log)
	notificationService := socialapp.NewNotificationService(notificationRepo, friendRequestRepo, userRepo, log)

	// Initialize HTTP handlers
	bookHandler := handler.NewBookHandler(bookService, log)
	userHandler := handler.NewUserHandler(userService)
	friendHandler := handler.NewFriendHandler(friendService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	maintenanceHandler := handler.NewMaintenanceHandler(bookService, authorService, importService, cfg.Import.Dir, log)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Legacy API paths under /api
	api := router.NewRouter(engine)
	api.Register(bookHandler).
		Register(userHandler).
		Register(friendHandler).
		Register(notificationHandler).
		Register(categoryHandler).
		Register(maintenanceHandler)
	api.Setup()

	// Health probe and the provider consent flow live at the root
	root := router.NewRouter(engine, router.WithPrefix(""))
	root.Register(systemHandler)
	if driveCreds != nil {
		root.Register(handler.NewAuthHandler(driveCreds, log))
	}
	root.Setup()

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
