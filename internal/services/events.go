package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-accounts/internal/logger"
	"github.com/sbilibin2017/gw-social-accounts/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock_test.go -package=services

// KafkaWriter defines the subset of *kafka.Writer used to publish events.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// eventPublisher publishes account events. Publishing is best effort:
// failures are logged and never returned to the caller.
type eventPublisher struct {
	writer KafkaWriter
}

func (p eventPublisher) publish(ctx context.Context, eventType string, actorID, targetID uuid.UUID) {
	if p.writer == nil {
		logger.Log.Warnw("kafka writer is nil, skipping event", "type", eventType, "actor_id", actorID)
		return
	}

	event := models.AccountEvent{
		EventID:   uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		ActorID:   actorID.String(),
	}
	if targetID != uuid.Nil {
		event.TargetID = targetID.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "type", eventType, "event_id", event.EventID, "error", err)
		return
	}

	logger.Log.Infow("event published", "type", eventType, "event_id", event.EventID)
}
