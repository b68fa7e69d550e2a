package archive

import (
	"context"
	"path"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

var tracer = otel.Tracer("archive_usecase")

// ArchiveDocumentUseCase copies generated documents to object storage under
// <root>/<email>/<filename>.
type ArchiveDocumentUseCase struct {
	uploader service.Uploader
	root     string
	logger   logger.Logger
}

func NewArchiveDocumentUseCase(uploader service.Uploader, root string, log logger.Logger) *ArchiveDocumentUseCase {
	return &ArchiveDocumentUseCase{uploader: uploader, root: root, logger: log}
}

type ArchiveOutput struct {
	URL string
}

func (uc *ArchiveDocumentUseCase) Execute(ctx context.Context, payload service.DocumentGeneratedPayload) (*ArchiveOutput, error) {
	ctx, span := tracer.Start(ctx, "ArchiveDocument")
	defer span.End()

	if payload.Email == "" || payload.Filename == "" {
		return nil, apperror.NewInvalidInput("document event without email or filename", nil)
	}

	folder := path.Join(uc.root, payload.Email)
	span.SetAttributes(attribute.String("folder", folder), attribute.String("filename", payload.Filename))

	url, err := uc.uploader.Upload(ctx, strings.NewReader(payload.Content), folder, payload.Filename)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to archive document", err)
	}

	uc.logger.Info("Document archived", zap.String("email", payload.Email), zap.String("filename", payload.Filename), zap.String("url", url))
	return &ArchiveOutput{URL: url}, nil
}

// Handle adapts Execute to the consumer callback signature.
func (uc *ArchiveDocumentUseCase) Handle(ctx context.Context, payload service.DocumentGeneratedPayload) error {
	_, err := uc.Execute(ctx, payload)
	return err
}
