package profile

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/application/session"
	"github.com/khoahotran/professional-ladder/internal/domain/document"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	profileRepo profile.Repository
	events      service.EventPublisher
	ids         profile.IDGenerator
	publicHost  string
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, events service.EventPublisher, ids profile.IDGenerator, publicHost string, log logger.Logger) *ProfileUseCase {
	if events == nil {
		events = service.NopPublisher()
	}
	if ids == nil {
		ids = profile.NewClockIDs()
	}
	return &ProfileUseCase{
		profileRepo: repo,
		events:      events,
		ids:         ids,
		publicHost:  publicHost,
		logger:      log,
	}
}

type SessionInput struct {
	Session *session.Session
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input SessionInput) (*GetProfileOutput, error) {
	return &GetProfileOutput{Profile: input.Session.Snapshot()}, nil
}

type UpdatePersonalInfoInput struct {
	Session *session.Session
	Patch   profile.PersonalInfoPatch
}

type UpdatePersonalInfoOutput struct {
	PersonalInfo profile.PersonalInfo
}

func (uc *ProfileUseCase) ExecuteUpdatePersonalInfo(ctx context.Context, input UpdatePersonalInfoInput) (*UpdatePersonalInfoOutput, error) {
	if input.Patch.IsEmpty() {
		return nil, apperror.NewInvalidInput("no personal info fields given", nil)
	}

	var out UpdatePersonalInfoOutput
	err := input.Session.Do(func(p *profile.Profile) error {
		p.UpdatePersonalInfo(input.Patch)
		out.PersonalInfo = p.PersonalInfo
		return nil
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to update personal info", err)
	}
	return &out, nil
}

type StatsOutput struct {
	Stats []profile.CategoryStats
}

func (uc *ProfileUseCase) ExecuteStats(ctx context.Context, input SessionInput) (*StatsOutput, error) {
	var out StatsOutput
	err := input.Session.Do(func(p *profile.Profile) error {
		out.Stats = p.Stats()
		return nil
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to compute stats", err)
	}
	return &out, nil
}

type PreviewOutput struct {
	View profile.PublicView
	Text string
}

func (uc *ProfileUseCase) ExecutePreview(ctx context.Context, input SessionInput) (*PreviewOutput, error) {
	view := profile.Project(input.Session.Snapshot())
	return &PreviewOutput{View: view, Text: document.PublicText(view)}, nil
}

type ShareLinkOutput struct {
	URL string
}

func (uc *ProfileUseCase) ExecuteShareLink(ctx context.Context, input SessionInput) (*ShareLinkOutput, error) {
	return &ShareLinkOutput{URL: document.PublicProfileURL(uc.publicHost, input.Session.Email)}, nil
}

func parseCategory(raw string) (profile.Category, error) {
	c, err := profile.ParseCategory(raw)
	if err != nil {
		return "", apperror.NewInvalidInput(fmt.Sprintf("unknown category %q", raw), err)
	}
	return c, nil
}
