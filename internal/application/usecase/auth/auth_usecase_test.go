package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/professional-ladder/internal/application/session"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/auth"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

type stubRepo struct {
	stored  map[string]*profile.Profile
	loadErr error
}

func (r stubRepo) Load(_ context.Context, email string) (*profile.Profile, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if p, ok := r.stored[email]; ok {
		return p.Clone(), nil
	}
	return profile.New(), nil
}

func (r stubRepo) Save(context.Context, string, *profile.Profile) error { return nil }

func newUseCase(repo profile.Repository) (*AuthUseCase, *session.Registry) {
	reg := session.NewRegistry(time.Hour)
	return NewAuthUseCase(repo, reg, auth.NewJWTService("secret", time.Hour), logger.NewNopLogger()), reg
}

func TestLogin_AcceptsAnyPasswordAndLoadsProfile(t *testing.T) {
	stored := profile.New()
	stored.PersonalInfo.Title = "Engineer"
	uc, reg := newUseCase(stubRepo{stored: map[string]*profile.Profile{"ada@example.com": stored}})

	out, err := uc.ExecuteLogin(context.Background(), LoginInput{Email: "ada@example.com", Password: "anything"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "Engineer", out.Profile.PersonalInfo.Title)
	assert.Equal(t, 1, reg.Len())

	s, err := uc.Resolve(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.SessionID, s.ID)
	assert.Equal(t, "ada@example.com", s.Email)
}

func TestLogin_LoadFailureStartsFresh(t *testing.T) {
	uc, _ := newUseCase(stubRepo{loadErr: errors.New("down")})

	out, err := uc.ExecuteLogin(context.Background(), LoginInput{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, profile.New(), out.Profile)
	assert.Error(t, out.LoadFailure)
}

func TestLogin_MalformedProfileIsReported(t *testing.T) {
	malformed := apperror.NewInternal("stored profile is malformed", profile.ErrMalformed)
	uc, _ := newUseCase(stubRepo{loadErr: malformed})

	out, err := uc.ExecuteSignup(context.Background(), SignupInput{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)
	assert.ErrorIs(t, out.LoadFailure, profile.ErrMalformed)
	assert.Equal(t, "Ada", out.Profile.PersonalInfo.Name)

	out, err = uc.ExecuteLogin(context.Background(), LoginInput{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.ErrorIs(t, out.LoadFailure, profile.ErrMalformed)
}

func TestLogin_AbsentProfileIsNotAFailure(t *testing.T) {
	uc, _ := newUseCase(stubRepo{})
	out, err := uc.ExecuteLogin(context.Background(), LoginInput{Email: "new@example.com"})
	require.NoError(t, err)
	assert.NoError(t, out.LoadFailure)
}

func TestResolve_ExpiredTokenDropsSession(t *testing.T) {
	reg := session.NewRegistry(time.Millisecond)
	uc := NewAuthUseCase(stubRepo{}, reg, auth.NewJWTService("secret", time.Millisecond), logger.NewNopLogger())

	for i := 0; i < 10; i++ {
		_, err := uc.ExecuteLogin(context.Background(), LoginInput{Email: "ada@example.com"})
		require.NoError(t, err)
	}
	assert.Eventually(t, func() bool { return reg.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestLogin_RequiresEmail(t *testing.T) {
	uc, _ := newUseCase(stubRepo{})
	_, err := uc.ExecuteLogin(context.Background(), LoginInput{Email: "  "})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSignup_SeedsNameAndEmail(t *testing.T) {
	uc, _ := newUseCase(stubRepo{})

	out, err := uc.ExecuteSignup(context.Background(), SignupInput{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", out.Profile.PersonalInfo.Name)
	assert.Equal(t, "ada@example.com", out.Profile.PersonalInfo.Email)
}

func TestLogout_ClosesSession(t *testing.T) {
	uc, reg := newUseCase(stubRepo{})
	out, err := uc.ExecuteLogin(context.Background(), LoginInput{Email: "ada@example.com"})
	require.NoError(t, err)

	require.NoError(t, uc.ExecuteLogout(context.Background(), LogoutInput{SessionID: out.SessionID}))
	assert.Equal(t, 0, reg.Len())

	_, err = uc.Resolve(out.AccessToken)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	err = uc.ExecuteLogout(context.Background(), LogoutInput{SessionID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestResolve_BadToken(t *testing.T) {
	uc, _ := newUseCase(stubRepo{})
	_, err := uc.Resolve("garbage")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
