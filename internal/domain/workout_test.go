package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseWorkoutDate(t *testing.T) {
	ts, err := ParseWorkoutDate("2024-01-05")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), ts)

	ts, err = ParseWorkoutDate("2024-01-05T18:30:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.January, 5, 18, 30, 0, 0, time.UTC), ts)

	_, err = ParseWorkoutDate("05/01/2024")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestNormalizeExercisesDefaultsEquipment(t *testing.T) {
	normalized := NormalizeExercises([]Exercise{
		{Name: "Squat"},
		{Name: "Bench", Equipment: Equipment{ID: "barbell", Name: "Barbell"}},
	})

	require.Equal(t, Equipment{ID: "unknown", Name: "Unknown"}, normalized[0].Equipment)
	require.Equal(t, Equipment{ID: "barbell", Name: "Barbell"}, normalized[1].Equipment)
}

func TestNormalizeExercisesDefaultsSets(t *testing.T) {
	normalized := NormalizeExercises([]Exercise{{Name: "Plank"}})
	require.NotNil(t, normalized[0].Sets)
	require.Empty(t, normalized[0].Sets)
}

func TestDecodeExercisesDefaultsMissingSetFields(t *testing.T) {
	doc := []byte(`[{"name":"Deadlift","sets":[{"reps":5},{"weight":60}]}]`)

	exercises, err := DecodeExercises(doc)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	require.Equal(t, Equipment{ID: "unknown", Name: "Unknown"}, exercises[0].Equipment)
	require.Equal(t, []SetLog{{Reps: 5, Weight: 0}, {Reps: 0, Weight: 60}}, exercises[0].Sets)
}

func TestDecodeExercisesEmptyDocument(t *testing.T) {
	exercises, err := DecodeExercises(nil)
	require.NoError(t, err)
	require.Empty(t, exercises)
}

func TestNormalizeWorkoutName(t *testing.T) {
	require.Equal(t, "Leg Day", NormalizeWorkoutName("Leg Day", "Old Title"))
	require.Equal(t, "Old Title", NormalizeWorkoutName("", "Old Title"))
	require.Equal(t, "Untitled", NormalizeWorkoutName("", ""))
}
