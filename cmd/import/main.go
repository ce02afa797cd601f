// Command import runs the bulk book import against a directory tree laid out
// as <root>/<author name>/<title>.pdf, without going through the HTTP server.
// It shares the dedupe check with the /api/upload-books sweep, so re-running
// it after a partial import only picks up what is missing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	libraryapp "github.com/bookshelf/backend/internal/application/library"
	"github.com/bookshelf/backend/internal/infrastructure/config"
	"github.com/bookshelf/backend/internal/infrastructure/logger"
	"github.com/bookshelf/backend/internal/infrastructure/persistence"
	"github.com/bookshelf/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

func main() {
	var (
		dir      string
		logLevel string
	)

	flag.StringVar(&dir, "dir", "", "Directory tree to import (default: import.dir from config)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if dir == "" {
		dir = cfg.Import.Dir
	}

	// Ctrl-C cancels between items; a later run resumes via the dedupe check.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := persistence.NewDatabase(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	bookRepo := persistence.NewMongoBookRepository(db)

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
		tokenRepo := persistence.NewMongoTokenRepository(db, "drive")
		driveCreds, err := storage.NewOAuthCredentials(&cfg.Drive, tokenRepo)
		if err != nil {
			log.Fatal("Failed to configure drive credentials", zap.Error(err))
		}
		blobStorage = storage.NewDriveStorage(&cfg.Drive, driveCreds, storage.WithDriveLogger(log))
	case "stub":
		log.Fatal("Storage backend stub cannot be used for imports, uploads would be discarded")
	}

	importer := libraryapp.NewImportService(bookRepo, blobStorage, log)

	log.Info("Starting import", zap.String("dir", dir))
	report, err := importer.Run(ctx, dir)
	if err != nil {
		if report != nil {
			log.Warn("Import interrupted",
				zap.Int("filesSeen", report.FilesSeen),
				zap.Int("uploaded", report.Uploaded),
				zap.Int("skipped", report.Skipped),
				zap.Int("failures", report.Failures))
		}
		log.Fatal("Import failed", zap.Error(err))
	}

	log.Info("Import complete",
		zap.Int("filesSeen", report.FilesSeen),
		zap.Int("uploaded", report.Uploaded),
		zap.Int("skipped", report.Skipped),
		zap.Int("failures", report.Failures))
	if report.Failures > 0 {
		os.Exit(1)
	}
}
