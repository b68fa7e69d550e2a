package profile

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

// LoadOrEmpty reads the stored profile for email. The returned profile is
// never nil: a missing key yields an empty profile and a nil error, while a
// read or decode failure yields an empty profile together with the failure.
// Loading never fails a session, but callers must not save over stored data
// they could not read without the user asking for it.
func LoadOrEmpty(ctx context.Context, repo profile.Repository, email string, log logger.Logger) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "LoadProfile")
	defer span.End()
	span.SetAttributes(attribute.String("email", email))

	p, err := repo.Load(ctx, email)
	if err != nil {
		span.RecordError(err)
		log.Warn("Failed to load profile, starting fresh", zap.String("email", email), zap.Error(err))
		return profile.New(), err
	}
	if p == nil {
		return profile.New(), nil
	}
	return p, nil
}

type LoadOutput struct {
	Profile *profile.Profile
	// LoadFailure is set when the stored profile could not be read and the
	// session was reset to an empty one instead.
	LoadFailure error
}

// ExecuteLoad replaces the session's profile with the stored one.
func (uc *ProfileUseCase) ExecuteLoad(ctx context.Context, input SessionInput) (*LoadOutput, error) {
	var out LoadOutput
	err := input.Session.Do(func(p *profile.Profile) error {
		loaded, loadErr := LoadOrEmpty(ctx, uc.profileRepo, input.Session.Email, uc.logger)
		p.Replace(loaded)
		out.Profile = p.Clone()
		out.LoadFailure = loadErr
		return nil
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to load profile", err)
	}
	return &out, nil
}

type SaveOutput struct {
	SavedAt time.Time
}

// ExecuteSave writes the whole profile under the session lock. A failed write
// is returned as is and never retried; the in-memory profile is untouched.
func (uc *ProfileUseCase) ExecuteSave(ctx context.Context, input SessionInput) (*SaveOutput, error) {
	ctx, span := tracer.Start(ctx, "SaveProfile")
	defer span.End()

	email := input.Session.Email
	span.SetAttributes(attribute.String("email", email))

	var itemCount int
	err := input.Session.Do(func(p *profile.Profile) error {
		for _, st := range p.Stats() {
			itemCount += st.Total
		}
		return uc.profileRepo.Save(ctx, email, p)
	})
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to save profile", err, zap.String("email", email))
		return nil, apperror.NewInternal("failed to save profile", err)
	}

	savedAt := time.Now().UTC()
	go func() {
		err := uc.events.PublishProfileSaved(context.Background(), service.ProfileSavedPayload{
			EventType: service.EventProfileSaved,
			Email:     email,
			ItemCount: itemCount,
			SavedAt:   savedAt,
		})
		if err != nil {
			uc.logger.Error("Failed to publish 'profile.saved' event", err, zap.String("email", email))
		}
	}()

	return &SaveOutput{SavedAt: savedAt}, nil
}
