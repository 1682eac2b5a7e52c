package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "canopy/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func testStorage(t *testing.T, maxUploadBytes int64) *blobStorage {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, bucket.Close())
	})

	return &blobStorage{
		bucket:         bucket,
		maxUploadBytes: maxUploadBytes,
		logger:         slog.Default(),
	}
}

func TestSaveAndOpen(t *testing.T) {
	storage := testStorage(t, 1024)
	ctx := context.Background()

	attachment, err := storage.Save(ctx, "certificate.pdf", "application/pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(attachment.Key, "attachments/"))
	assert.True(t, strings.HasSuffix(attachment.Key, ".pdf"))
	assert.Equal(t, "application/pdf", attachment.ContentType)
	assert.Equal(t, int64(len("pdf bytes")), attachment.Size)

	reader, err := storage.Open(ctx, attachment.Key)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reader.Close())
	}()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))
}

func TestSaveRejectsOversizedUpload(t *testing.T) {
	storage := testStorage(t, 8)

	_, err := storage.Save(context.Background(), "big.bin", "application/octet-stream", strings.NewReader("123456789"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAttachmentTooLarge)
}

func TestSaveAcceptsUploadAtLimit(t *testing.T) {
	storage := testStorage(t, 9)

	attachment, err := storage.Save(context.Background(), "fits.bin", "application/octet-stream", strings.NewReader("123456789"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), attachment.Size)
}

func TestOpenMissingKey(t *testing.T) {
	storage := testStorage(t, 1024)

	_, err := storage.Open(context.Background(), "attachments/none")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAttachmentNotFound)
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	storage := testStorage(t, 1024)

	require.NoError(t, storage.Delete(context.Background(), "attachments/none"))
}
