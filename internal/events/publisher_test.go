package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/domain"
)

func TestNewWorkoutLoggedCarriesRecordIdentity(t *testing.T) {
	logged := time.Date(2024, time.January, 5, 19, 0, 0, 0, time.UTC)
	workout := domain.Workout{
		ID:          "w-1",
		UID:         "user-1",
		WorkoutName: "Leg Day",
		Date:        time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Exercises: []domain.Exercise{
			{Name: "Squat"},
			{Name: "Lunge"},
		},
		CreatedAt: logged,
	}

	event := NewWorkoutLogged(workout)
	require.Equal(t, "w-1", event.WorkoutID)
	require.Equal(t, "user-1", event.UID)
	require.Equal(t, "Leg Day", event.WorkoutName)
	require.Equal(t, 2, event.ExerciseCount)
	require.Equal(t, logged, event.LoggedAt)
}

func TestCloseWithoutPublishIsNoop(t *testing.T) {
	publisher := NewKafkaPublisher([]string{"localhost:9092"})
	require.NoError(t, publisher.Close())
}
