package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/task-tracker/internal/auth"
	"github.com/yukikurage/task-tracker/internal/blobstore"
	"github.com/yukikurage/task-tracker/internal/config"
	"github.com/yukikurage/task-tracker/internal/database"
	"github.com/yukikurage/task-tracker/internal/handlers"
	"github.com/yukikurage/task-tracker/internal/logging"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// run starts the server and blocks until it fails or a shutdown signal
// arrives. Deferred cleanup always runs before it returns.
func run(cfg *config.Config, log *logrus.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.Connect(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("Failed to close database")
		}
	}()

	// Run migrations
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize blob store: %w", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	router := handlers.NewRouter(handlers.Services{
		Auth:        services.NewAuthService(userRepo),
		Tasks:       services.NewTaskService(taskRepo, blobs, log),
		Attachments: services.NewAttachmentService(taskRepo, attachmentRepo, blobs, log),
	}, handlers.RouterConfig{
		Codec:         auth.NewTokenCodec([]byte(cfg.JWTSecret), cfg.TokenTTL),
		SecureCookies: cfg.IsProduction(),
		Log:           log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
	switch cfg.BlobBackend {
	case "disk":
		return blobstore.NewDiskStore(cfg.UploadDir)
	case "s3":
		return blobstore.NewS3Store(ctx, blobstore.S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			Endpoint:     cfg.S3Endpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			UsePathStyle: cfg.S3UsePathStyle,
		})
	default:
		return nil, fmt.Errorf("unsupported BLOB_BACKEND %q", cfg.BlobBackend)
	}
}
