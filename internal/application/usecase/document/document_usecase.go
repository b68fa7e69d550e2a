package document

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/application/session"
	"github.com/khoahotran/professional-ladder/internal/domain/document"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

var tracer = otel.Tracer("document_usecase")

type DocumentUseCase struct {
	events service.EventPublisher
	now    func() time.Time
	logger logger.Logger
}

func NewDocumentUseCase(events service.EventPublisher, log logger.Logger) *DocumentUseCase {
	if events == nil {
		events = service.NopPublisher()
	}
	return &DocumentUseCase{events: events, now: time.Now, logger: log}
}

type Output struct {
	Filename    string
	ContentType string
	Content     string
}

type ResumeInput struct {
	Session *session.Session
}

func (uc *DocumentUseCase) ExecuteResume(ctx context.Context, input ResumeInput) (*Output, error) {
	_, span := tracer.Start(ctx, "GenerateResume")
	defer span.End()

	p := input.Session.Snapshot()
	out := &Output{
		Filename:    document.ResumeFilename(p.PersonalInfo.Name),
		ContentType: document.ContentType,
		Content:     document.Resume(p),
	}
	span.SetAttributes(attribute.String("filename", out.Filename))

	uc.publish(input.Session.Email, service.DocumentResume, out)
	return out, nil
}

type CoverLetterInput struct {
	Session     *session.Session
	JobTitle    string
	CompanyName string
}

// ExecuteCoverLetter requires both the job title and the company; the
// renderer is not invoked otherwise.
func (uc *DocumentUseCase) ExecuteCoverLetter(ctx context.Context, input CoverLetterInput) (*Output, error) {
	_, span := tracer.Start(ctx, "GenerateCoverLetter")
	defer span.End()

	var missing []string
	if strings.TrimSpace(input.JobTitle) == "" {
		missing = append(missing, "jobTitle")
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		missing = append(missing, "companyName")
	}
	if len(missing) > 0 {
		err := apperror.NewInvalidInput(strings.Join(missing, " and ")+" required to generate a cover letter", nil)
		span.RecordError(err)
		return nil, err
	}

	req := document.CoverLetterRequest{JobTitle: input.JobTitle, CompanyName: input.CompanyName}
	p := input.Session.Snapshot()
	out := &Output{
		Filename:    document.CoverLetterFilename(req),
		ContentType: document.ContentType,
		Content:     document.CoverLetter(p, req, uc.now()),
	}
	span.SetAttributes(attribute.String("filename", out.Filename))

	uc.publish(input.Session.Email, service.DocumentCoverLetter, out)
	return out, nil
}

func (uc *DocumentUseCase) publish(email string, kind service.DocumentKind, out *Output) {
	payload := service.DocumentGeneratedPayload{
		EventType:   service.EventDocumentGenerated,
		Email:       email,
		Kind:        kind,
		Filename:    out.Filename,
		Content:     out.Content,
		GeneratedAt: uc.now().UTC(),
	}
	go func() {
		if err := uc.events.PublishDocumentGenerated(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish 'document.generated' event", err, zap.String("email", email), zap.String("filename", payload.Filename))
		}
	}()
}
