// Package messaging streams relayed outbox events to Kafka.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/orris-inc/complaintdesk/internal/shared/config"
)

const headerSource = "cd-source"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisherConfig struct {
	Brokers    []string
	ClientID   string
	EventTopic string
	DLQTopic   string
}

func KafkaPublisherConfigFrom(cfg *config.KafkaConfig) KafkaPublisherConfig {
	return KafkaPublisherConfig{
		Brokers:    cfg.Brokers,
		ClientID:   "complaintdesk-relay",
		EventTopic: cfg.Topic,
		DLQTopic:   cfg.DLQTopic,
	}
}

// KafkaPublisher writes synchronously with acks from all replicas, so a nil
// error means the event is durable on the broker.
type KafkaPublisher struct {
	writer     messageWriter
	eventTopic string
	dlqTopic   string
}

func NewKafkaPublisher(cfg KafkaPublisherConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are not configured")
	}
	if cfg.EventTopic == "" {
		return nil, errors.New("kafka event topic is not configured")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		Transport: &kafka.Transport{
			ClientID: cfg.ClientID,
		},
	}

	return &KafkaPublisher{
		writer:     writer,
		eventTopic: cfg.EventTopic,
		dlqTopic:   cfg.DLQTopic,
	}, nil
}

// Publish keys messages by aggregate so one complaint's events stay ordered
// within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, key, value []byte) error {
	return p.publish(ctx, p.eventTopic, key, value)
}

func (p *KafkaPublisher) PublishDLQ(ctx context.Context, key, value []byte) error {
	if p.dlqTopic == "" {
		return errors.New("dlq topic is not configured")
	}
	return p.publish(ctx, p.dlqTopic, key, value)
}

func (p *KafkaPublisher) publish(ctx context.Context, topic string, key, value []byte) error {
	message := kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Headers: []kafka.Header{
			{Key: headerSource, Value: []byte("complaintdesk")},
		},
		Time: time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write to %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
