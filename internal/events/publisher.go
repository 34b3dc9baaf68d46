// Package events emits workout events to the platform message bus.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/domain"
)

// Topic carrying workout lifecycle events.
const workoutEventsTopic = "workout_events"

// WorkoutLogged is the message emitted when a workout record is accepted.
type WorkoutLogged struct {
	WorkoutID     string    `json:"workout_id"`
	UID           string    `json:"uid"`
	WorkoutName   string    `json:"workout_name"`
	WorkoutDate   time.Time `json:"workout_date"`
	ExerciseCount int       `json:"exercise_count"`
	LoggedAt      time.Time `json:"logged_at"`
}

// KafkaPublisher lazily manages a writer for the workout events topic.
// Publishing is best-effort: callers log failures and move on.
type KafkaPublisher struct {
	brokers []string
	mu      sync.Mutex
	writer  *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{brokers: brokers}
}

// WorkoutLogged publishes a workout.logged event partition-keyed by owner uid.
func (p *KafkaPublisher) WorkoutLogged(ctx context.Context, workout domain.Workout) error {
	payload, err := json.Marshal(NewWorkoutLogged(workout))
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(workout.UID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("workout.logged")},
		},
	}
	return p.kafkaWriter().WriteMessages(ctx, msg)
}

// NewWorkoutLogged builds the event payload for a stored workout.
func NewWorkoutLogged(workout domain.Workout) WorkoutLogged {
	return WorkoutLogged{
		WorkoutID:     workout.ID,
		UID:           workout.UID,
		WorkoutName:   workout.WorkoutName,
		WorkoutDate:   workout.Date,
		ExerciseCount: len(workout.Exercises),
		LoggedAt:      workout.CreatedAt,
	}
}

func (p *KafkaPublisher) kafkaWriter() *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        workoutEventsTopic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return p.writer
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}
