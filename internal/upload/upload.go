// Package upload splits large files into fixed-size byte ranges and sends
// them sequentially to the upload endpoint. Small files skip this entirely
// and ride along in the surrounding multipart request.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/elimuhub/elimu-go/internal/transport"
	"github.com/elimuhub/elimu-go/internal/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// DefaultChunkSize is the byte range uploaded per request
	DefaultChunkSize = 1 << 20 // 1 MiB

	// DirectLimit is the size above which callers must use chunked upload
	// instead of attaching the file to a single multipart request.
	DirectLimit = 5 << 20 // 5 MiB

	// DefaultPath is the chunk upload endpoint
	DefaultPath = "/uploads/chunk"
)

// FileDescriptor is the assembled-file record returned by the server on
// completion of the final chunk.
type FileDescriptor struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

// Progress is invoked after each uploaded chunk with the fraction completed,
// in [0, 1]. It reaches 1 only once the final chunk has succeeded.
type Progress func(fraction float64)

// Params configures a single upload
type Params struct {
	// Path overrides the upload endpoint
	Path string

	// Progress receives completion fractions
	Progress Progress
}

// Uploader performs chunked uploads over the shared transport
type Uploader struct {
	transport *transport.RESTTransport
	chunkSize int64
	logger    types.Logger
}

// New creates an uploader. A non-positive chunkSize selects the default.
func New(t *transport.RESTTransport, chunkSize int64, logger types.Logger) *Uploader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Uploader{
		transport: t,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

// ChunkSize returns the configured chunk size
func (u *Uploader) ChunkSize() int64 {
	return u.chunkSize
}

// ShouldChunk reports whether a file of the given size must go through the
// chunked uploader.
func ShouldChunk(size int64) bool {
	return size > DirectLimit
}

// Upload sends the file in ceil(size/chunkSize) sequential chunks, indices
// 0..n-1, and returns the descriptor from the final chunk's response. Any
// chunk failure aborts the sequence; there is no resume, a retry starts over
// from chunk 0.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, size int64, name string, params *Params) (*FileDescriptor, error) {
	if size <= 0 {
		return nil, errors.New("upload size must be positive")
	}
	if params == nil {
		params = &Params{}
	}

	path := params.Path
	if path == "" {
		path = DefaultPath
	}

	totalChunks := int((size + u.chunkSize - 1) / u.chunkSize)
	uploadID := uuid.New().String()

	if u.logger != nil {
		u.logger.Info("Starting chunked upload", "name", name, "size", size, "chunks", totalChunks)
	}

	buf := make([]byte, u.chunkSize)
	var desc fileDescriptorEnvelope

	for index := 0; index < totalChunks; index++ {
		remaining := size - int64(index)*u.chunkSize
		chunkLen := u.chunkSize
		if remaining < chunkLen {
			chunkLen = remaining
		}

		if _, err := io.ReadFull(r, buf[:chunkLen]); err != nil {
			return nil, errors.Wrapf(err, "failed to read chunk %d", index)
		}

		form := &transport.Form{
			Fields: map[string]string{
				"uploadId":    uploadID,
				"fileName":    name,
				"chunkIndex":  fmt.Sprintf("%d", index),
				"totalChunks": fmt.Sprintf("%d", totalChunks),
			},
			Files: []transport.FormFile{
				{Field: "chunk", FileName: name, Content: bytes.NewReader(buf[:chunkLen])},
			},
		}

		// Only the final chunk's response carries the descriptor
		var result interface{}
		if index == totalChunks-1 {
			result = &desc
		}

		if err := u.transport.DoForm(ctx, "POST", path, form, result); err != nil {
			return nil, errors.Wrapf(err, "chunk %d/%d failed", index, totalChunks)
		}

		if params.Progress != nil {
			params.Progress(float64(index+1) / float64(totalChunks))
		}

		if u.logger != nil {
			u.logger.Debug("Chunk uploaded", "index", index, "of", totalChunks)
		}
	}

	return desc.unpack(), nil
}

// fileDescriptorEnvelope tolerates the wrapper variants the backend emits
type fileDescriptorEnvelope struct {
	FileDescriptor
	File *FileDescriptor `json:"file"`
	Data *struct {
		File *FileDescriptor `json:"file"`
	} `json:"data"`
}

func (e *fileDescriptorEnvelope) unpack() *FileDescriptor {
	if e.File != nil {
		return e.File
	}
	if e.Data != nil && e.Data.File != nil {
		return e.Data.File
	}
	d := e.FileDescriptor
	return &d
}
