package handler

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/khdiyz/common/logger"
	"github.com/khdiyz/media-service/internal/service"
	"github.com/khdiyz/media-service/internal/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MediaHandler implements MediaServiceServer
type MediaHandler struct {
	UnimplementedMediaServiceServer
	service *service.MediaService
	log     *logger.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(service *service.MediaService, log *logger.Logger) *MediaHandler {
	return &MediaHandler{
		service: service,
		log:     log,
	}
}

// Upload uploads a file to the media service
func (h *MediaHandler) Upload(ctx context.Context, req *UploadRequest) (*UploadResponse, error) {
	h.log.Infow("Upload request received", "file_name", req.FileName, "size", len(req.Content))

	result, err := h.service.UploadFile(ctx, req.FileName, req.Content)
	if err != nil {
		return nil, uploadError(err)
	}

	return uploadResponse(result, int64(len(req.Content))), nil
}

// UploadStream uploads a file using client streaming: metadata first, then chunks
func (h *MediaHandler) UploadStream(stream MediaService_UploadStreamServer) error {
	h.log.Info("UploadStream request received")

	// Read first message to get metadata
	req, err := stream.Recv()
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "failed to receive metadata: %v", err)
	}

	metadata := req.Metadata
	if metadata == nil {
		return status.Error(codes.InvalidArgument, "first message must be metadata")
	}

	// Create a pipe to stream data from gRPC to storage
	reader, writer := io.Pipe()

	type uploadResult struct {
		file *service.UploadedFile
		err  error
	}
	resultChan := make(chan uploadResult, 1)

	go func() {
		file, err := h.service.UploadStream(stream.Context(), metadata.FileName, reader)
		// Fails pending writes if storage returned before draining the pipe.
		reader.CloseWithError(err)
		resultChan <- uploadResult{file: file, err: err}
	}()

	var (
		totalBytes int64
		writeErr   error
	)
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			writer.CloseWithError(err)
			<-resultChan
			return status.Errorf(codes.Internal, "failed to receive chunk: %v", err)
		}

		if len(req.Chunk) == 0 {
			continue
		}

		n, err := writer.Write(req.Chunk)
		totalBytes += int64(n)
		if err != nil {
			writeErr = err
			break
		}
	}
	writer.Close()

	// Wait for upload to complete
	result := <-resultChan
	if result.err != nil {
		return uploadError(result.err)
	}
	if writeErr != nil {
		return status.Errorf(codes.Internal, "upload finished before the stream was consumed: %v", writeErr)
	}

	h.log.Infow("UploadStream completed", "public_id", result.file.PublicID, "size", totalBytes)
	return stream.SendAndClose(uploadResponse(result.file, totalBytes))
}

// Delete removes the asset behind req.URL.
// A malformed URL or rejected delete is reported with Success=false, not as an RPC error.
func (h *MediaHandler) Delete(ctx context.Context, req *DeleteRequest) (*DeleteResponse, error) {
	h.log.Infow("Delete request received", "url", req.URL)

	result, err := h.service.DeleteFile(ctx, req.URL, storage.DeleteOptions{
		ResourceType: req.ResourceType,
		Type:         req.Type,
		Invalidate:   req.Invalidate,
		Overrides:    req.Overrides,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to delete file: %v", err)
	}

	return &DeleteResponse{
		Success:  result.OK(),
		Outcome:  string(result.Outcome),
		PublicID: result.PublicID,
		Message:  deleteMessage(result),
	}, nil
}

// ResolvePublicID returns the public id encoded in an asset URL
func (h *MediaHandler) ResolvePublicID(ctx context.Context, req *ResolvePublicIDRequest) (*ResolvePublicIDResponse, error) {
	publicID, found := h.service.ResolvePublicID(req.URL)
	return &ResolvePublicIDResponse{
		PublicID: publicID,
		Found:    found,
	}, nil
}

func uploadError(err error) error {
	if errors.Is(err, service.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Errorf(codes.Internal, "failed to upload file: %v", err)
}

func uploadResponse(result *service.UploadedFile, size int64) *UploadResponse {
	uploadedAt := result.CreatedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now()
	}

	return &UploadResponse{
		PublicID:     result.PublicID,
		AssetID:      result.AssetID,
		URL:          result.URL,
		SecureURL:    result.SecureURL,
		Format:       result.Format,
		ResourceType: result.ResourceType,
		ContentType:  result.ContentType,
		Version:      result.Version,
		Width:        result.Width,
		Height:       result.Height,
		FileSize:     size,
		UploadedAt:   uploadedAt.Format(time.RFC3339),
	}
}

func deleteMessage(result storage.DeleteResult) string {
	switch result.Outcome {
	case storage.OutcomeDeleted:
		return "File deleted successfully"
	case storage.OutcomeNotFound:
		return "File not found, nothing to delete"
	default:
		return result.Reason
	}
}
