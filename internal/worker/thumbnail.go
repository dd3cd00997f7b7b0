// Package worker consumes thumbnail jobs and writes resized derivatives
// next to the original blob.
package worker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/disintegration/imaging"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rohandas-dev/cabinet/internal/blobstore"
	"github.com/rohandas-dev/cabinet/internal/models"
	"github.com/rohandas-dev/cabinet/internal/repositories"
)

// Widths of the generated derivatives, stored at <key>_<width>.
var Widths = []int{100, 250, 500}

type Worker struct {
	files repositories.FileRepository
	queue repositories.JobQueue
	blobs blobstore.Store
}

func New(files repositories.FileRepository, queue repositories.JobQueue, blobs blobstore.Store) *Worker {
	return &Worker{files: files, queue: queue, blobs: blobs}
}

// Run consumes jobs until ctx is cancelled. Failed jobs are logged and
// dropped; there is no retry.
func (w *Worker) Run(ctx context.Context) error {
	log.Println("Thumbnail worker is running")
	for {
		job, err := w.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Println("Error reading job queue:", err)
			time.Sleep(time.Second)
			continue
		}

		if err := w.Process(ctx, *job); err != nil {
			log.Printf("Thumbnail job {userId:%s fileId:%s} failed: %v", job.UserID, job.FileID, err)
		}
	}
}

// Process generates every derivative for one job. A failure on a single
// width is logged and does not abort the remaining widths.
func (w *Worker) Process(ctx context.Context, job models.ThumbnailJob) error {
	if job.FileID == "" {
		return errors.New("missing fileId")
	}
	if job.UserID == "" {
		return errors.New("missing userId")
	}

	fileID, err := primitive.ObjectIDFromHex(job.FileID)
	if err != nil {
		return fmt.Errorf("invalid fileId: %w", err)
	}
	userID, err := primitive.ObjectIDFromHex(job.UserID)
	if err != nil {
		return fmt.Errorf("invalid userId: %w", err)
	}

	file, err := w.files.FindByIDAndUser(ctx, fileID, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return errors.New("file not found")
	}
	if err != nil {
		return err
	}

	if file.Type != models.TypeImage {
		return errors.New("file is not an image")
	}

	exists, err := w.blobs.Exists(ctx, file.LocalPath)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("blob not found")
	}

	data, err := w.blobs.Get(ctx, file.LocalPath)
	if err != nil {
		return err
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	format, err := imaging.FormatFromFilename(file.Name)
	if err != nil {
		format = imaging.PNG
	}

	for _, width := range Widths {
		thumb := imaging.Resize(src, width, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, thumb, format); err != nil {
			log.Printf("Error encoding %dpx thumbnail for %s: %v", width, job.FileID, err)
			continue
		}

		key := fmt.Sprintf("%s_%d", file.LocalPath, width)
		if err := w.blobs.Save(ctx, key, buf.Bytes()); err != nil {
			log.Printf("Error writing %dpx thumbnail for %s: %v", width, job.FileID, err)
		}
	}

	return nil
}
