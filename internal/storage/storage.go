package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Storage defines the interface for hosted media operations
type Storage interface {
	// Upload streams body under a key derived from fileName and returns the remote metadata
	Upload(ctx context.Context, body io.Reader, fileName string) (*UploadResult, error)

	// Delete removes the asset addressed by assetURL.
	// Local failures (unparsable URL, bad options) are reported in the result, not as errors.
	Delete(ctx context.Context, assetURL string, opts DeleteOptions) (DeleteResult, error)
}

// UploadResult is the metadata the remote service returns for a stored asset.
type UploadResult struct {
	AssetID          string
	PublicID         string
	Version          int
	Format           string
	ResourceType     string
	Type             string
	Width            int
	Height           int
	Bytes            int
	URL              string
	SecureURL        string
	OriginalFilename string
	CreatedAt        time.Time
}

// Option keys accepted in DeleteOptions.Overrides.
const (
	OptionResourceType = "resource_type"
	OptionType         = "type"
	OptionInvalidate   = "invalidate"
)

const (
	DefaultResourceType = "image"
	DefaultDeliveryType = "upload"
)

// DeleteOptions tunes a delete call. Zero values fall back to the defaults
// (image, upload, invalidate=true). Overrides are applied last and win over
// both the defaults and the named fields.
type DeleteOptions struct {
	ResourceType string
	Type         string
	Invalidate   *bool
	Overrides    map[string]string
}

// DeleteOutcome classifies how a delete finished.
type DeleteOutcome string

const (
	OutcomeDeleted        DeleteOutcome = "deleted"
	OutcomeNotFound       DeleteOutcome = "not_found"
	OutcomeInvalidURL     DeleteOutcome = "invalid_url"
	OutcomeInvalidOptions DeleteOutcome = "invalid_options"
	OutcomeRejected       DeleteOutcome = "rejected"
)

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	PublicID string
	Outcome  DeleteOutcome
	// Remote is the raw result string returned by the service, if it was called.
	Remote string
	// Reason explains local failures.
	Reason string
}

// OK reports whether the asset is gone. An asset that was already absent counts as deleted.
func (r DeleteResult) OK() bool {
	return r.Outcome == OutcomeDeleted || r.Outcome == OutcomeNotFound
}

// ErrUnsupportedOption is reported for override keys the remote delete call does not accept.
var ErrUnsupportedOption = errors.New("unsupported delete option")

// RemoteError is an error payload returned by the media service itself.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("cloudinary %s: %s", e.Op, e.Message)
}
