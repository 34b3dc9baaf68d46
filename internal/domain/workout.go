// Package domain defines the business logic for the StrongSight backend.
package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingWorkoutFields is returned when a workout lacks a required field.
	ErrMissingWorkoutFields = errors.New("workoutName, date and exercises are required")
	// ErrInvalidDate is returned when a supplied date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

// Workout is a persisted log entry of one training session owned by a user.
// Records are append-only: no exposed operation mutates or removes one.
type Workout struct {
	ID          string
	UID         string
	WorkoutName string
	Date        time.Time
	Exercises   []Exercise
	CreatedAt   time.Time
}

// Exercise is one exercise entry within a workout.
type Exercise struct {
	Name      string    `json:"name"`
	Equipment Equipment `json:"equipment"`
	Sets      []SetLog  `json:"sets"`
}

// Equipment identifies the gear used for an exercise.
type Equipment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SetLog is a single set of reps at a given weight.
type SetLog struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// WorkoutRepository captures persistence operations for workouts. Every query
// filters by uid server-side so cross-user access is impossible regardless of
// how a record is addressed.
type WorkoutRepository interface {
	Add(ctx context.Context, workout Workout) error
	ListByUser(ctx context.Context, uid string) ([]Workout, error)
	ListByDateRange(ctx context.Context, uid string, start, end time.Time) ([]Workout, error)
}

// ParseWorkoutDate coerces a textual date into a timestamp. Both RFC 3339
// timestamps and bare YYYY-MM-DD dates are accepted.
func ParseWorkoutDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts.UTC(), nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return ts.UTC(), nil
}

// unknownEquipment is the sentinel applied when a stored exercise has no equipment.
var unknownEquipment = Equipment{ID: "unknown", Name: "Unknown"}

// NormalizeExercises applies read-side defaults to exercises decoded from the
// store: absent equipment becomes the unknown sentinel and absent reps/weight
// on a set become zero.
func NormalizeExercises(exercises []Exercise) []Exercise {
	out := make([]Exercise, len(exercises))
	for i, ex := range exercises {
		if ex.Equipment.ID == "" && ex.Equipment.Name == "" {
			ex.Equipment = unknownEquipment
		}
		if ex.Sets == nil {
			ex.Sets = []SetLog{}
		}
		out[i] = ex
	}
	return out
}

// NormalizeWorkoutName resolves the display name of a stored workout. Records
// imported from the legacy dataset carry the name under a "title" key.
func NormalizeWorkoutName(name, legacyTitle string) string {
	if name != "" {
		return name
	}
	if legacyTitle != "" {
		return legacyTitle
	}
	return "Untitled"
}

// DecodeExercises unmarshals the stored exercise document and normalizes it.
func DecodeExercises(doc []byte) ([]Exercise, error) {
	if len(doc) == 0 {
		return []Exercise{}, nil
	}
	var exercises []Exercise
	if err := json.Unmarshal(doc, &exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return NormalizeExercises(exercises), nil
}
