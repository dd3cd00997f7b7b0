package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/rohandas-dev/cabinet/internal/blobstore"
	"github.com/rohandas-dev/cabinet/internal/config"
	"github.com/rohandas-dev/cabinet/internal/repositories"
	"github.com/rohandas-dev/cabinet/internal/worker"
)

// Standalone thumbnail worker, for running the queue consumer separately
// from the API server.
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

	var blobs blobstore.Store
	if cfg.Storage == "s3" {
		blobs = blobstore.NewS3(cfg.S3)
	} else {
		blobs, err = blobstore.NewLocal(cfg.FolderPath)
		if err != nil {
			log.Fatal("Failed to set up blob storage:", err)
		}
	}

	files := repositories.NewFileRepository(db)
	queue := repositories.NewJobQueue(redisClient)

	if err := worker.New(files, queue, blobs).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Worker exited with error:", err)
	}
	log.Println("Worker stopped")
}
