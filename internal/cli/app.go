package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/professional-ladder/adapters/persistence"
	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/application/session"
	authUC "github.com/khoahotran/professional-ladder/internal/application/usecase/auth"
	documentUC "github.com/khoahotran/professional-ladder/internal/application/usecase/document"
	profileUC "github.com/khoahotran/professional-ladder/internal/application/usecase/profile"
	"github.com/khoahotran/professional-ladder/internal/config"
	"github.com/khoahotran/professional-ladder/internal/domain/profile"
	"github.com/khoahotran/professional-ladder/pkg/auth"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

// Options are the root flags shared by every command.
type Options struct {
	Email      string
	ConfigPath string
	Store      string
	DBPath     string
	DryRun     bool
	Force      bool
	Verbose    bool
}

// App is the dependency container for one CLI invocation.
type App struct {
	Config    config.Config
	Logger    logger.Logger
	Auth      *authUC.AuthUseCase
	Profile   *profileUC.ProfileUseCase
	Documents *documentUC.DocumentUseCase

	closeStore func()
}

func NewApp(opts Options) (*App, error) {
	var paths []string
	if opts.ConfigPath != "" {
		paths = append(paths, opts.ConfigPath)
	}
	cfg, err := config.LoadConfig(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Store != "" {
		cfg.Store.Driver = opts.Store
	}
	if opts.DBPath != "" {
		cfg.Store.SQLitePath = opts.DBPath
	}

	appLogger := logger.NewNopLogger()
	if opts.Verbose {
		appLogger = logger.NewZapLogger(cfg.App.Env)
	}

	store, closeStore, err := persistence.NewStore(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	profileRepo := persistence.NewProfileRepo(store, appLogger)

	// Tokens never leave the process, so an unset secret only needs to be unguessable.
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
	}
	jwtSvc := auth.NewJWTService(secret, cfg.Auth.TokenLifespan)

	return &App{
		Config:     cfg,
		Logger:     appLogger,
		Auth:       authUC.NewAuthUseCase(profileRepo, session.NewRegistry(cfg.Auth.TokenLifespan), jwtSvc, appLogger),
		Profile:    profileUC.NewProfileUseCase(profileRepo, service.NopPublisher(), profile.NewClockIDs(), cfg.App.PublicHost, appLogger),
		Documents:  documentUC.NewDocumentUseCase(service.NopPublisher(), appLogger),
		closeStore: closeStore,
	}, nil
}

func (a *App) Close() {
	if a.closeStore != nil {
		a.closeStore()
	}
	_ = a.Logger.Sync()
}
