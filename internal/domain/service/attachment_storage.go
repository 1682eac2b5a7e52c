package service

import (
	"context"
	"io"
)

// Attachment describes a stored document.
type Attachment struct {
	Key         string // Storage key the document can be fetched by.
	ContentType string // MIME type recorded at upload time.
	Size        int64  // Size in bytes.
}

// AttachmentStorage defines the interface for storing uploaded documents
// such as questionnaire files and compliance certificates.
type AttachmentStorage interface {
	// Save writes the document under a generated key and returns its metadata.
	Save(ctx context.Context, filename, contentType string, content io.Reader) (*Attachment, error)

	// Open returns a reader for a stored document.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored document. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
