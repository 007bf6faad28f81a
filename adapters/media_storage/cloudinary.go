package media_storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

// cloudinaryStorage maps a bucket onto a Cloudinary folder. The public id is
// the object name without its extension.
type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cfg config.Config, log logger.Logger) (service.ObjectStorage, error) {
	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	log.Info("Connect Cloudinary successfully.")
	return &cloudinaryStorage{cld: cld}, nil
}

func publicID(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

func (s *cloudinaryStorage) Upload(ctx context.Context, bucket, name string, r io.Reader, contentType string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:  publicID(name),
		Folder:    bucket,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload cloudinary: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload succeeded but secure URL is empty")
	}
	return result.SecureURL, nil
}

func (s *cloudinaryStorage) Delete(ctx context.Context, bucket, name string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:   bucket + "/" + publicID(name),
		Invalidate: api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary: %w", err)
	}

	switch resp.Result {
	case "ok":
		return nil
	case "not found":
		return asset.ErrObjectNotFound
	default:
		return fmt.Errorf("cloudinary destroy returned result: %s", resp.Result)
	}
}
