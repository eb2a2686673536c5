package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/khdiyz/media-service/internal/config"
	"github.com/khdiyz/common/logger"
	"github.com/spf13/cast"
)

const (
	resourceTypeAuto = "auto"

	remoteResultOK       = "ok"
	remoteResultNotFound = "not found"
)

// assetAPI is the subset of the Cloudinary upload API used here.
type assetAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

var _ assetAPI = (*uploader.API)(nil)

// CloudinaryStorage implements the Storage interface on top of Cloudinary
type CloudinaryStorage struct {
	api    assetAPI
	folder string
	log    *logger.Logger
}

// NewCloudinaryStorage creates a Cloudinary client from explicit credentials
func NewCloudinaryStorage(cfg *config.Config, log *logger.Logger) (Storage, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	// The client copies its configuration into each API at construction,
	// so overrides go on the upload API itself.
	cld.Upload.Config.URL.Secure = cfg.CloudinarySecure
	if cfg.CloudinaryUploadPrefix != "" {
		cld.Upload.Config.API.UploadPrefix = cfg.CloudinaryUploadPrefix
	}

	log.Infow("Cloudinary storage initialized successfully",
		"cloud_name", cfg.CloudinaryCloudName,
		"folder", cfg.CloudinaryUploadFolder,
	)
	return newCloudinaryStorage(&cld.Upload, cfg.CloudinaryUploadFolder, log), nil
}

func newCloudinaryStorage(client assetAPI, folder string, log *logger.Logger) *CloudinaryStorage {
	return &CloudinaryStorage{
		api:    client,
		folder: folder,
		log:    log,
	}
}

// Upload streams body into the configured folder with automatic resource type detection
func (c *CloudinaryStorage) Upload(ctx context.Context, body io.Reader, fileName string) (*UploadResult, error) {
	params := uploader.UploadParams{
		Folder:       c.folder,
		PublicID:     DerivePublicID(fileName),
		ResourceType: resourceTypeAuto,
	}
	c.log.Debugw("Uploading asset", "public_id", params.PublicID, "folder", params.Folder)

	resp, err := c.api.Upload(ctx, body, params)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, &RemoteError{Op: "upload", Message: resp.Error.Message}
	}

	return &UploadResult{
		AssetID:          resp.AssetID,
		PublicID:         resp.PublicID,
		Version:          resp.Version,
		Format:           resp.Format,
		ResourceType:     resp.ResourceType,
		Type:             resp.Type,
		Width:            resp.Width,
		Height:           resp.Height,
		Bytes:            resp.Bytes,
		URL:              resp.URL,
		SecureURL:        resp.SecureURL,
		OriginalFilename: resp.OriginalFilename,
		CreatedAt:        resp.CreatedAt,
	}, nil
}

// Delete destroys the asset behind assetURL
func (c *CloudinaryStorage) Delete(ctx context.Context, assetURL string, opts DeleteOptions) (DeleteResult, error) {
	publicID, ok := ExtractPublicID(assetURL)
	if !ok {
		return DeleteResult{
			Outcome: OutcomeInvalidURL,
			Reason:  "no upload segment or empty public id in " + assetURL,
		}, nil
	}

	params, err := destroyParams(publicID, opts)
	if err != nil {
		return DeleteResult{
			PublicID: publicID,
			Outcome:  OutcomeInvalidOptions,
			Reason:   err.Error(),
		}, nil
	}
	c.log.Debugw("Destroying asset",
		"public_id", publicID,
		"resource_type", params.ResourceType,
		"type", params.Type,
		"invalidate", *params.Invalidate,
	)

	resp, err := c.api.Destroy(ctx, params)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to delete file: %w", err)
	}
	if resp.Error.Message != "" {
		return DeleteResult{}, &RemoteError{Op: "destroy", Message: resp.Error.Message}
	}

	result := DeleteResult{PublicID: publicID, Remote: resp.Result}
	switch resp.Result {
	case remoteResultOK:
		result.Outcome = OutcomeDeleted
	case remoteResultNotFound:
		result.Outcome = OutcomeNotFound
	default:
		result.Outcome = OutcomeRejected
		result.Reason = "unexpected destroy result: " + resp.Result
	}
	return result, nil
}

// destroyParams merges opts over the defaults. Overrides are applied last.
func destroyParams(publicID string, opts DeleteOptions) (uploader.DestroyParams, error) {
	params := uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: DefaultResourceType,
		Type:         DefaultDeliveryType,
		Invalidate:   api.Bool(true),
	}
	if opts.ResourceType != "" {
		params.ResourceType = opts.ResourceType
	}
	if opts.Type != "" {
		params.Type = opts.Type
	}
	if opts.Invalidate != nil {
		params.Invalidate = api.Bool(*opts.Invalidate)
	}

	for key, value := range opts.Overrides {
		switch key {
		case OptionResourceType:
			params.ResourceType = value
		case OptionType:
			params.Type = value
		case OptionInvalidate:
			invalidate, err := cast.ToBoolE(value)
			if err != nil {
				return uploader.DestroyParams{}, fmt.Errorf("invalid %s value %q: %w", OptionInvalidate, value, err)
			}
			params.Invalidate = api.Bool(invalidate)
		default:
			return uploader.DestroyParams{}, fmt.Errorf("%w: %s", ErrUnsupportedOption, key)
		}
	}
	return params, nil
}
