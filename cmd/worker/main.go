package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/khoahotran/professional-ladder/adapters/event"
	"github.com/khoahotran/professional-ladder/adapters/media_storage"
	archiveUC "github.com/khoahotran/professional-ladder/internal/application/usecase/archive"
	"github.com/khoahotran/professional-ladder/internal/config"
	"github.com/khoahotran/professional-ladder/pkg/logger"
	"github.com/khoahotran/professional-ladder/pkg/tracing"
)

func main() {
	fmt.Println("Starting Professional Ladder Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Worker needs KAFKA_BROKERS", nil)
	}

	shutdownTracing, err := tracing.Setup(cfg, appLogger, "professional-ladder-worker")
	if err != nil {
		appLogger.Fatal("Cannot init tracing", err)
	}
	defer shutdownTracing(context.Background())

	// Cloudinary Uploader
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Worker Use Case
	archiveUseCase := archiveUC.NewArchiveDocumentUseCase(uploader, cfg.Cloudinary.Folder, appLogger)

	// Kafka Consumer
	consumer := event.NewDocumentConsumer(cfg, archiveUseCase.Handle, appLogger)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil {
		appLogger.Error("Worker stopped", err)
	}
}
