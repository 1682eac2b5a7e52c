// Package storage stores uploaded documents in a blob bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"canopy/config"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/lifecycle"
	"canopy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultMaxUploadBytes = 20 << 20 // 20 MiB

// blobStorage implements service.AttachmentStorage on a gocloud.dev bucket.
type blobStorage struct {
	bucket         *blob.Bucket
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewBlobStorage opens the configured bucket and registers its shutdown.
func NewBlobStorage(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.AttachmentStorage, error) {
	if cfg.Attachments == nil || cfg.Attachments.BucketURL == "" {
		return nil, errors.New("attachments bucket URL is not configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.Attachments.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachments bucket")
	}

	maxUploadBytes := cfg.Attachments.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:         bucket,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}, nil
}

// Save writes the document under a generated key and returns its metadata.
func (s *blobStorage) Save(ctx context.Context, filename, contentType string, content io.Reader) (*service.Attachment, error) {
	key := buildKey(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachment writer")
	}

	// One extra byte so an exactly-at-limit upload is distinguishable from
	// an oversized one.
	written, err := io.Copy(writer, io.LimitReader(content, s.maxUploadBytes+1))
	if err != nil {
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write attachment")
	}
	if written > s.maxUploadBytes {
		_ = writer.Close()
		if deleteErr := s.bucket.Delete(ctx, key); deleteErr != nil {
			s.logger.Warn("failed to remove oversized attachment", slog.String("key", key), slog.Any("error", deleteErr))
		}

		return nil, domainerrors.ErrAttachmentTooLarge
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finish attachment write")
	}

	return &service.Attachment{
		Key:         key,
		ContentType: contentType,
		Size:        written,
	}, nil
}

// Open returns a reader for a stored document.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrAttachmentNotFound
		}

		return nil, errors.Wrap(err, "failed to open attachment")
	}

	return reader, nil
}

// Delete removes a stored document. Deleting a missing key is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete attachment")
	}

	return nil
}

// buildKey derives a collision-proof storage key that keeps the original
// file extension for content sniffing on download.
func buildKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > 10 {
		ext = ""
	}

	return fmt.Sprintf("attachments/%s/%s%s",
		time.Now().UTC().Format("2006/01"),
		uuid.NewString(),
		ext,
	)
}
