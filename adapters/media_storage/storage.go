package media_storage

import (
	"context"
	"fmt"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const (
	DriverSupabase   = "supabase"
	DriverS3         = "s3"
	DriverCloudinary = "cloudinary"
)

// NewObjectStorage picks the backend named by storage.driver.
func NewObjectStorage(ctx context.Context, cfg config.Config, log logger.Logger) (service.ObjectStorage, error) {
	switch cfg.Storage.Driver {
	case DriverSupabase, "":
		return NewSupabaseStorage(cfg, log)
	case DriverS3:
		return NewS3Storage(ctx, cfg, log)
	case DriverCloudinary:
		return NewCloudinaryStorage(cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
