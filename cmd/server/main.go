package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/adapters/event"
	httpAdapter "github.com/khoahotran/professional-ladder/adapters/http"
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
	"github.com/khoahotran/professional-ladder/pkg/tracing"
)

func main() {
	fmt.Println("Start Professional Ladder API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := tracing.Setup(cfg, appLogger, "professional-ladder-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracing", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			appLogger.Error("Failed to shut down tracer provider", err)
		}
	}()

	// Storage
	if cfg.Store.Driver == persistence.DriverPostgres {
		if err := persistence.MigratePostgres(cfg.DB.DSN, "migrations", appLogger); err != nil {
			appLogger.Fatal("Cannot migrate Postgres", err)
		}
	}
	store, closeStore, err := persistence.NewStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open store", err, zap.String("driver", cfg.Store.Driver))
	}
	defer closeStore()

	// Events
	var publisher service.EventPublisher = service.NopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Warn("No Kafka brokers configured, events are dropped")
	}

	// Repositories and services
	profileRepo := persistence.NewProfileRepo(store, appLogger)
	sessions := session.NewRegistry(cfg.Auth.TokenLifespan)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	authUseCase := authUC.NewAuthUseCase(profileRepo, sessions, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, publisher, profile.NewClockIDs(), cfg.App.PublicHost, appLogger)
	documentUseCase := documentUC.NewDocumentUseCase(publisher, appLogger)

	// HTTP
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Auth:     httpAdapter.NewAuthHandler(authUseCase, appLogger),
		Profile:  httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Document: httpAdapter.NewDocumentHandler(documentUseCase, appLogger),
	}, httpAdapter.AuthMiddleware(authUseCase, appLogger), appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, sessions, time.Minute, appLogger)

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shut down", err)
	}
}

// sweepSessions frees the profiles of sessions whose token has expired and
// were never logged out.
func sweepSessions(ctx context.Context, sessions *session.Registry, every time.Duration, appLogger logger.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				appLogger.Debug("Expired sessions swept", zap.Int("count", n))
			}
		}
	}
}
