package backup

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

const dumpContentType = "application/octet-stream"

// Dumper writes a database dump for dsn into out.
type Dumper func(ctx context.Context, dsn string, out, stderr *bytes.Buffer) error

// PgDump runs pg_dump in custom format.
func PgDump(ctx context.Context, dsn string, out, stderr *bytes.Buffer) error {
	cmd := exec.CommandContext(ctx, "pg_dump", "--dbname="+dsn, "--format=c")
	cmd.Stdout = out
	cmd.Stderr = stderr
	return cmd.Run()
}

type BackupUseCase struct {
	dsn     string
	dump    Dumper
	storage service.ObjectStorage
	logger  logger.Logger
	now     func() time.Time
}

func NewBackupUseCase(dsn string, dump Dumper, storage service.ObjectStorage, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		dsn:     dsn,
		dump:    dump,
		storage: storage,
		logger:  log,
		now:     time.Now,
	}
}

// Execute dumps the database and stores it in the backups bucket.
// It returns the public URL of the stored dump.
func (uc *BackupUseCase) Execute(ctx context.Context) (string, error) {
	uc.logger.Info("Starting database backup...")

	var out, stderr bytes.Buffer
	if err := uc.dump(ctx, uc.dsn, &out, &stderr); err != nil {
		uc.logger.Error("pg_dump failed", err, zap.String("stderr", stderr.String()))
		return "", fmt.Errorf("dump database failed: %w", err)
	}

	name := fmt.Sprintf("backup-%s.dump", uc.now().UTC().Format("2006-01-02_15-04-05"))
	url, err := uc.storage.Upload(ctx, string(asset.BucketBackups), name, bytes.NewReader(out.Bytes()), dumpContentType)
	if err != nil {
		uc.logger.Error("Failed to upload backup", err, zap.String("name", name))
		return "", fmt.Errorf("upload backup failed: %w", err)
	}

	uc.logger.Info("Database backup completed and uploaded successfully",
		zap.String("url", url),
		zap.Int("size_bytes", out.Len()),
	)
	return url, nil
}
