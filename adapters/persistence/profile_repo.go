package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

const profileKeyPrefix = "user_"

// ProfileKey is the store key holding the profile of email.
func ProfileKey(email string) string {
	return profileKeyPrefix + email
}

type kvProfileRepo struct {
	store  service.KeyValueStore
	logger logger.Logger
}

// NewProfileRepo stores each profile as one JSON document under ProfileKey.
func NewProfileRepo(store service.KeyValueStore, logger logger.Logger) profile.Repository {
	return &kvProfileRepo{store: store, logger: logger}
}

// Load returns an empty profile for an absent key. A document that does not
// parse is reported with an error wrapping profile.ErrMalformed so callers
// never mistake it for a missing one.
func (r *kvProfileRepo) Load(ctx context.Context, email string) (*profile.Profile, error) {
	key := ProfileKey(email)
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, apperror.NewInternal("failed to read profile", err)
	}
	if !found {
		r.logger.Debug("No stored profile, starting fresh", zap.String("key", key))
		return profile.New(), nil
	}

	p := profile.New()
	if err := json.Unmarshal([]byte(raw), p); err != nil {
		r.logger.Warn("Failed to unmarshal stored profile", zap.String("key", key), zap.Error(err))
		if !errors.Is(err, profile.ErrMalformed) {
			err = errors.Join(profile.ErrMalformed, err)
		}
		return nil, apperror.NewInternal("stored profile is malformed", err)
	}
	return p, nil
}

func (r *kvProfileRepo) Save(ctx context.Context, email string, p *profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile", err)
	}
	if err := r.store.Set(ctx, ProfileKey(email), string(data)); err != nil {
		return apperror.NewInternal("failed to write profile", err)
	}
	return nil
}
