package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/internal/application/session"
	profileUC "github.com/khoahotran/professional-ladder/internal/application/usecase/profile"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/auth"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

// AuthUseCase opens and closes sessions. Credentials are never verified: any
// email/password pair is accepted.
type AuthUseCase struct {
	profileRepo profile.Repository
	sessions    *session.Registry
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewAuthUseCase(repo profile.Repository, sessions *session.Registry, jwtSvc *auth.JWTService, log logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: repo,
		sessions:    sessions,
		jwtSvc:      jwtSvc,
		logger:      log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
}

type LoginOutput struct {
	AccessToken string
	SessionID   uuid.UUID
	Profile     *profile.Profile
	// LoadFailure is set when a stored profile exists but could not be read.
	// The session then starts empty, and saving it would replace the stored
	// document.
	LoadFailure error
}

func (uc *AuthUseCase) ExecuteLogin(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, apperror.NewInvalidInput("email is required", nil)
	}

	p, loadErr := profileUC.LoadOrEmpty(ctx, uc.profileRepo, email, uc.logger)
	out, err := uc.open(email, p)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out.LoadFailure = loadErr
	span.SetAttributes(attribute.String("session_id", out.SessionID.String()))
	return out, nil
}

// ExecuteSignup behaves like login and then seeds the name and email of the
// personal info.
func (uc *AuthUseCase) ExecuteSignup(ctx context.Context, input SignupInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Signup")
	defer span.End()

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, apperror.NewInvalidInput("email is required", nil)
	}

	p, loadErr := profileUC.LoadOrEmpty(ctx, uc.profileRepo, email, uc.logger)
	name := input.Name
	p.UpdatePersonalInfo(profile.PersonalInfoPatch{Name: &name, Email: &email})

	out, err := uc.open(email, p)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out.LoadFailure = loadErr
	return out, nil
}

func (uc *AuthUseCase) open(email string, p *profile.Profile) (*LoginOutput, error) {
	s := uc.sessions.Open(email, p)

	token, err := uc.jwtSvc.GenerateToken(s.ID, email)
	if err != nil {
		uc.sessions.Close(s.ID)
		uc.logger.Error("Failed to generate token", err, zap.String("email", email))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	uc.logger.Info("Session opened", zap.String("email", email), zap.String("session_id", s.ID.String()))
	return &LoginOutput{AccessToken: token, SessionID: s.ID, Profile: s.Snapshot()}, nil
}

type LogoutInput struct {
	SessionID uuid.UUID
}

// ExecuteLogout destroys the session and resets its profile. Unsaved changes
// are discarded.
func (uc *AuthUseCase) ExecuteLogout(ctx context.Context, input LogoutInput) error {
	if !uc.sessions.Close(input.SessionID) {
		return apperror.NewUnauthorized("session already closed", nil)
	}
	uc.logger.Info("Session closed", zap.String("session_id", input.SessionID.String()))
	return nil
}

// Resolve maps a bearer token to its open session.
func (uc *AuthUseCase) Resolve(token string) (*session.Session, error) {
	claims, err := uc.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired token", err)
	}
	s, ok := uc.sessions.Get(claims.SessionID)
	if !ok {
		return nil, apperror.NewUnauthorized("session not found", nil)
	}
	return s, nil
}
