package event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/config"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

const maxHandlerRetries = 4

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DocumentHandler processes one document.generated event.
type DocumentHandler func(ctx context.Context, payload service.DocumentGeneratedPayload) error

type DocumentConsumer struct {
	reader     messageReader
	handler    DocumentHandler
	newBackOff func() backoff.BackOff
	logger     logger.Logger
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = time.Minute
	return backoff.WithMaxRetries(b, maxHandlerRetries)
}

func NewDocumentConsumer(cfg config.Config, handler DocumentHandler, log logger.Logger) *DocumentConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicDocumentEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return &DocumentConsumer{reader: reader, handler: handler, newBackOff: defaultBackOff, logger: log}
}

// Run consumes until ctx is cancelled. Undecodable and foreign messages are
// committed and skipped. A failing handler is retried with exponential
// backoff; once the retries are spent the message is committed and dropped,
// since a group reader never redelivers a message it has moved past.
func (c *DocumentConsumer) Run(ctx context.Context) error {
	c.logger.Info("Worker listening", zap.String("topic", TopicDocumentEvents))
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		log := c.logger.With(zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)), zap.Int64("offset", msg.Offset))

		var payload service.DocumentGeneratedPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Warn("Failed to unmarshal event, skipping", zap.Error(err))
			c.commit(ctx, msg)
			continue
		}
		if payload.EventType != service.EventDocumentGenerated {
			log.Debug("Ignoring event", zap.String("event_type", string(payload.EventType)))
			c.commit(ctx, msg)
			continue
		}

		if err := c.handle(ctx, payload, log); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error("Failed to process event, dropping it", err, zap.String("filename", payload.Filename))
		}
		c.commit(ctx, msg)
	}
}

// handle runs the handler until it succeeds, the backoff gives up or ctx is
// done. Invalid input is not retried.
func (c *DocumentConsumer) handle(ctx context.Context, payload service.DocumentGeneratedPayload, log logger.Logger) error {
	attempt := 0
	op := func() error {
		attempt++
		err := c.handler(ctx, payload)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperror.ErrInvalidInput) {
			return backoff.Permanent(err)
		}
		log.Warn("Failed to process event, retrying", zap.Int("attempt", attempt), zap.String("filename", payload.Filename), zap.Error(err))
		return err
	}

	newBackOff := c.newBackOff
	if newBackOff == nil {
		newBackOff = defaultBackOff
	}
	return backoff.Retry(op, backoff.WithContext(newBackOff(), ctx))
}

func (c *DocumentConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err)
	}
}

func (c *DocumentConsumer) Close() error {
	return c.reader.Close()
}
