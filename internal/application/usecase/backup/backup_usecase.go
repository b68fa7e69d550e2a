package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/application/session"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

var tracer = otel.Tracer("backup_usecase")

const timestampLayout = "2006-01-02_15-04-05"

// BackupUseCase uploads a JSON snapshot of a session's profile to object
// storage under <root>/backups/<email>/.
type BackupUseCase struct {
	uploader service.Uploader
	root     string
	now      func() time.Time
	logger   logger.Logger
}

func NewBackupUseCase(uploader service.Uploader, root string, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		uploader: uploader,
		root:     root,
		now:      time.Now,
		logger:   log,
	}
}

type BackupInput struct {
	Session *session.Session
}

type BackupOutput struct {
	URL      string
	PublicID string
}

func (uc *BackupUseCase) Execute(ctx context.Context, input BackupInput) (*BackupOutput, error) {
	ctx, span := tracer.Start(ctx, "BackupProfile")
	defer span.End()

	uc.logger.Info("Starting profile backup...", zap.String("email", input.Session.Email))

	data, err := json.MarshalIndent(input.Session.Snapshot(), "", "  ")
	if err != nil {
		return nil, apperror.NewInternal("failed to encode profile", err)
	}

	folder := path.Join(uc.root, "backups", input.Session.Email)
	publicID := fmt.Sprintf("profile-%s.json", uc.now().UTC().Format(timestampLayout))

	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(data), folder, publicID)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to upload backup", err, zap.String("folder", folder))
		return nil, apperror.NewInternal("failed to upload backup", err)
	}

	uc.logger.Info("Profile backup uploaded",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
	)
	return &BackupOutput{URL: uploadURL, PublicID: publicID}, nil
}
