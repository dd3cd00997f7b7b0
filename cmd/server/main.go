package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rohandas-dev/cabinet/internal/api"
	"github.com/rohandas-dev/cabinet/internal/api/handlers"
	"github.com/rohandas-dev/cabinet/internal/blobstore"
	"github.com/rohandas-dev/cabinet/internal/config"
	"github.com/rohandas-dev/cabinet/internal/repositories"
	"github.com/rohandas-dev/cabinet/internal/worker"
)

// @title Cabinet API
// @version 1.0
// @description File storage backend with token auth, folders, publishing and image thumbnails.
// @BasePath /
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repositories.ConnectMongo(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	redisClient, err := repositories.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	blobs, err := buildBlobStore(cfg)
	if err != nil {
		log.Fatal("Failed to set up blob storage:", err)
	}

	users := repositories.NewUserRepository(db)
	files := repositories.NewFileRepository(db)
	sessions := repositories.NewSessionStore(redisClient)
	queue := repositories.NewJobQueue(redisClient)

	h := &handlers.Handler{
		Users:      users,
		Files:      files,
		Sessions:   sessions,
		Queue:      queue,
		Blobs:      blobs,
		DBAlive:    pinger(func(ctx context.Context) bool { return repositories.PingMongo(ctx, db) }),
		CacheAlive: pinger(func(ctx context.Context) bool { return repositories.PingRedis(ctx, redisClient) }),
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(h, sessions, cfg.CorsConfig),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting Cabinet server on port: %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// The thumbnail worker runs in-process; cmd/worker runs the same loop
	// standalone.
	g.Go(func() error {
		return worker.New(files, queue, blobs).Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Server exited with error:", err)
	}
	log.Println("Server stopped")
}

func buildBlobStore(cfg config.Config) (blobstore.Store, error) {
	if cfg.Storage == "s3" {
		return blobstore.NewS3(cfg.S3), nil
	}
	return blobstore.NewLocal(cfg.FolderPath)
}

// pinger bounds each health probe so /status cannot hang on a dead store.
func pinger(probe func(context.Context) bool) handlers.Pinger {
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return probe(ctx)
	}
}
