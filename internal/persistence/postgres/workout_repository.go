package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/domain"
	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/observability"
)

// WorkoutRepository stores append-only workout records. Every query filters by
// uid so one user's records are unreachable from another user's requests.
type WorkoutRepository struct {
	pool *pgxpool.Pool
}

// NewWorkoutRepository constructs a WorkoutRepository.
func NewWorkoutRepository(pool *pgxpool.Pool) *WorkoutRepository {
	return &WorkoutRepository{pool: pool}
}

// Add persists a workout with its exercise document.
func (r *WorkoutRepository) Add(ctx context.Context, workout domain.Workout) error {
	doc, err := json.Marshal(workout.Exercises)
	if err != nil {
		return err
	}

	const stmt = `INSERT INTO workouts (workout_id, uid, workout_name, workout_date, exercises, created_at)
        VALUES ($1,$2,$3,$4,$5,$6)`

	_, err = r.pool.Exec(ctx, stmt,
		workout.ID,
		workout.UID,
		workout.WorkoutName,
		workout.Date,
		doc,
		workout.CreatedAt,
	)
	if err != nil {
		return err
	}

	observability.RecordWorkoutLogged(workout.CreatedAt)
	return nil
}

const workoutSelect = `SELECT workout_id, uid, workout_name, title, workout_date, exercises, created_at FROM workouts`

// ListByUser returns every workout owned by uid, newest occurrence first.
func (r *WorkoutRepository) ListByUser(ctx context.Context, uid string) ([]domain.Workout, error) {
	query := workoutSelect + ` WHERE uid=$1 ORDER BY workout_date DESC, workout_id DESC`

	rows, err := r.pool.Query(ctx, query, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkouts(rows)
}

// ListByDateRange returns the uid's workouts dated within [start, end] inclusive.
func (r *WorkoutRepository) ListByDateRange(ctx context.Context, uid string, start, end time.Time) ([]domain.Workout, error) {
	query := workoutSelect + ` WHERE uid=$1 AND workout_date >= $2 AND workout_date <= $3 ORDER BY workout_date DESC, workout_id DESC`

	rows, err := r.pool.Query(ctx, query, uid, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkouts(rows)
}

func collectWorkouts(rows pgx.Rows) ([]domain.Workout, error) {
	results := make([]domain.Workout, 0)
	for rows.Next() {
		var (
			workout     domain.Workout
			name        *string
			legacyTitle *string
			doc         []byte
		)
		if err := rows.Scan(&workout.ID, &workout.UID, &name, &legacyTitle, &workout.Date, &doc, &workout.CreatedAt); err != nil {
			return nil, err
		}

		workout.WorkoutName = domain.NormalizeWorkoutName(deref(name), deref(legacyTitle))
		exercises, err := domain.DecodeExercises(doc)
		if err != nil {
			return nil, err
		}
		workout.Exercises = exercises
		results = append(results, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
