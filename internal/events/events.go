// Package events publishes domain events for downstream consumers such as
// analytics. Publishing is best effort: callers log failures and move on.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/segmentio/kafka-go"
)

const TypeWorkoutLogged = "workout.logged"

// WorkoutLogged is the payload of a workout.logged event.
type WorkoutLogged struct {
	EventType       string    `json:"event_type"`
	SessionID       string    `json:"session_id"`
	UserID          string    `json:"user_id"`
	WorkoutID       string    `json:"workout_id"`
	WorkoutName     string    `json:"workout_name"`
	DurationMin     int       `json:"duration"`
	HeartRate       int       `json:"heart_rate"`
	BodyTemperature float64   `json:"body_temperature"`
	PerformedAt     time.Time `json:"performed_at"`
}

type Publisher interface {
	WorkoutLogged(ctx context.Context, s *domain.WorkoutSession) error
	Close() error
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}}
}

// WorkoutLogged keys the message by user ID so one user's sessions stay
// ordered within a partition.
func (p *KafkaPublisher) WorkoutLogged(ctx context.Context, s *domain.WorkoutSession) error {
	payload, err := json.Marshal(WorkoutLogged{
		EventType:       TypeWorkoutLogged,
		SessionID:       s.ID,
		UserID:          s.UserID,
		WorkoutID:       s.WorkoutID,
		WorkoutName:     s.WorkoutName,
		DurationMin:     s.DurationMin,
		HeartRate:       s.HeartRate,
		BodyTemperature: s.BodyTemperature,
		PerformedAt:     s.PerformedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := kafka.Message{
		Key:     []byte(s.UserID),
		Value:   payload,
		Time:    time.Now().UTC(),
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(TypeWorkoutLogged)}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", TypeWorkoutLogged, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) WorkoutLogged(context.Context, *domain.WorkoutSession) error { return nil }
func (NoopPublisher) Close() error                                               { return nil }

// NewPublisher returns a KafkaPublisher, or NoopPublisher when brokers is empty.
func NewPublisher(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic)
}
