// Package blob stages uploaded attachment bytes until the draft is
// submitted, backed by a Go CDK bucket.
package blob

import (
	"context"
	"io"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

// attachmentStore implements service.AttachmentStore on top of a blob bucket.
type attachmentStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// StoreParams holds dependencies for the attachment store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAttachmentStore opens the configured bucket. The memory driver is the
// default and suits single-process deployments; the file driver keeps staged
// bytes across restarts.
func NewAttachmentStore(params StoreParams) (service.AttachmentStore, error) {
	cfg := params.Config.Uploads
	logger := params.Logger

	driver := constants.UploadDriverMemory
	if cfg != nil && cfg.Driver != "" {
		driver = cfg.Driver
	}

	var bucket *blob.Bucket
	switch driver {
	case constants.UploadDriverMemory:
		bucket = memblob.OpenBucket(nil)
		logger.Info("Using in-memory attachment store")

	case constants.UploadDriverFile:
		if cfg == nil || cfg.Dir == "" {
			return nil, errors.New("uploads dir is required for file driver")
		}
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create uploads dir")
		}
		var err error
		bucket, err = fileblob.OpenBucket(cfg.Dir, nil)
		if err != nil {
			return nil, errors.Wrap(err, "open file bucket")
		}
		logger.Info("Using file attachment store", slog.String("dir", cfg.Dir))

	default:
		return nil, errors.Errorf("unknown uploads driver: %s", driver)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &attachmentStore{bucket: bucket, logger: logger}, nil
}

// Put streams the attachment bytes into the bucket under key.
func (s *attachmentStore) Put(ctx context.Context, key string, r io.Reader, contentType string) (int64, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return 0, errors.Wrap(err, "open blob writer")
	}

	n, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()

		return 0, errors.Wrap(err, "write blob")
	}
	if err := w.Close(); err != nil {
		return 0, errors.Wrap(err, "close blob writer")
	}

	return n, nil
}

// Open returns a reader over the staged bytes.
func (s *attachmentStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open blob %s", key)
	}

	return r, nil
}

// Delete removes the staged bytes.
func (s *attachmentStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "delete blob %s", key)
	}

	return nil
}
