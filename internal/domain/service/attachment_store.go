package service

import (
	"context"
	"io"
)

// AttachmentStore stages uploaded attachment bytes between upload and
// submission. Drafts carry only blob keys; the submitter streams content
// back out of the store when assembling the multipart request.
type AttachmentStore interface {
	// Put stores the reader's content under key and returns the byte count.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (int64, error)

	// Open returns a reader over the stored content.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the stored content. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
