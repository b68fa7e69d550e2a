package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/professional-ladder/internal/application/service"
	"github.com/khoahotran/professional-ladder/internal/config"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

const (
	TopicProfileEvents  = "profile.events"
	TopicDocumentEvents = "document.events"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ProfileEventsWriter  messageWriter
	DocumentEventsWriter messageWriter
	logger               logger.Logger
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.Hash{},
	}

	documentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicDocumentEvents,
		Balancer: &kafka.Hash{},
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ProfileEventsWriter:  profileWriter,
		DocumentEventsWriter: documentWriter,
		logger:               log,
	}, nil
}

func (c *KafkaProducerClient) PublishProfileSaved(ctx context.Context, payload service.ProfileSavedPayload) error {
	return publish(ctx, c.ProfileEventsWriter, payload.Email, payload)
}

func (c *KafkaProducerClient) PublishDocumentGenerated(ctx context.Context, payload service.DocumentGeneratedPayload) error {
	return publish(ctx, c.DocumentEventsWriter, payload.Email, payload)
}

// publish keys every message by email so one user's events stay ordered.
func publish(ctx context.Context, w messageWriter, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
	if c.DocumentEventsWriter != nil {
		c.DocumentEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}
