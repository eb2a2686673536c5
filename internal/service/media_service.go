package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/khdiyz/common/logger"
	"github.com/khdiyz/media-service/internal/storage"
)

// sniffLen is how much of a stream is buffered for content type detection
const sniffLen = 3072

// ErrInvalidInput is returned for requests that cannot be sent to storage
var ErrInvalidInput = errors.New("invalid input")

// UploadedFile is the storage result plus the content type sniffed from the payload
type UploadedFile struct {
	*storage.UploadResult
	ContentType string
}

// MediaService handles business logic for media operations
type MediaService struct {
	storage storage.Storage
	log     *logger.Logger
}

// NewMediaService creates a new MediaService
func NewMediaService(storage storage.Storage, log *logger.Logger) *MediaService {
	return &MediaService{
		storage: storage,
		log:     log,
	}
}

// UploadFile uploads a file to storage
func (s *MediaService) UploadFile(ctx context.Context, fileName string, content []byte) (*UploadedFile, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: content is empty", ErrInvalidInput)
	}
	return s.UploadStream(ctx, fileName, bytes.NewReader(content))
}

// UploadStream uploads a file from a reader (for streaming)
func (s *MediaService) UploadStream(ctx context.Context, fileName string, reader io.Reader) (*UploadedFile, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(reader, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: content is empty", ErrInvalidInput)
	}
	head = head[:n]
	contentType := mimetype.Detect(head).String()

	result, err := s.storage.Upload(ctx, io.MultiReader(bytes.NewReader(head), reader), fileName)
	if err != nil {
		s.log.Errorw("Failed to upload file",
			"file_name", fileName,
			"content_type", contentType,
			"error", err,
		)
		return nil, err
	}

	s.log.Infow("File uploaded successfully",
		"public_id", result.PublicID,
		"original_name", fileName,
		"content_type", contentType,
	)
	return &UploadedFile{UploadResult: result, ContentType: contentType}, nil
}

// DeleteFile removes the asset behind assetURL. Only transport and remote errors are returned as errors.
func (s *MediaService) DeleteFile(ctx context.Context, assetURL string, opts storage.DeleteOptions) (storage.DeleteResult, error) {
	result, err := s.storage.Delete(ctx, assetURL, opts)
	if err != nil {
		s.log.Errorw("Error deleting file", "url", assetURL, "error", err)
		return storage.DeleteResult{}, err
	}

	switch result.Outcome {
	case storage.OutcomeDeleted:
		s.log.Infow("File deleted successfully", "public_id", result.PublicID)
	case storage.OutcomeNotFound:
		s.log.Warnw("File not found in storage, treating as deleted", "public_id", result.PublicID)
	case storage.OutcomeInvalidURL:
		s.log.Errorw("Invalid asset URL", "url", assetURL, "reason", result.Reason)
	default:
		s.log.Errorw("Failed to delete file",
			"public_id", result.PublicID,
			"outcome", result.Outcome,
			"remote", result.Remote,
			"reason", result.Reason,
		)
	}
	return result, nil
}

// ResolvePublicID returns the storage identifier encoded in assetURL
func (s *MediaService) ResolvePublicID(assetURL string) (string, bool) {
	return storage.ExtractPublicID(assetURL)
}
