package elimu

import (
	"context"
	"io"

	"github.com/elimuhub/elimu-go/internal/upload"
	"github.com/pkg/errors"
)

// uploadService implements the UploadService interface
type uploadService struct {
	client   *Client
	uploader *upload.Uploader
}

// Upload sends the file through the chunked uploader and returns the
// assembled-file descriptor from the final chunk's response.
func (s *uploadService) Upload(ctx context.Context, r io.Reader, size int64, name string, progress func(float64)) (*FileDescriptor, error) {
	desc, err := s.uploader.Upload(ctx, r, size, name, &upload.Params{
		Progress: progress,
	})
	if err != nil {
		s.client.notifyError(err, "Upload failed")
		return nil, errors.Wrap(err, "failed to upload file")
	}

	return &FileDescriptor{
		ID:       desc.ID,
		URL:      desc.URL,
		Name:     desc.Name,
		Size:     desc.Size,
		MimeType: desc.MimeType,
	}, nil
}

// ShouldChunk reports whether a file of this size must be chunked
func (s *uploadService) ShouldChunk(size int64) bool {
	return upload.ShouldChunk(size)
}
