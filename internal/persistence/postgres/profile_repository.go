// Package postgres provides pgx-backed persistence for profiles and workouts.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/domain"
	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/observability"
)

const uniqueViolation = "23505"

// ProfileRepository stores one row per identity, keyed by uid.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository constructs a ProfileRepository.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `uid, email, display_name, phone_number, gender, weight, age, height_ft, height_in, created_at, updated_at`

// Create inserts a new profile. A second signup for the same uid fails with
// domain.ErrProfileExists rather than overwriting.
func (r *ProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	const stmt = `INSERT INTO profiles (uid, email, display_name, phone_number, gender, weight, age, height_ft, height_in, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err := r.pool.Exec(ctx, stmt,
		profile.UID,
		profile.Email,
		profile.DisplayName,
		profile.PhoneNumber,
		profile.Gender,
		profile.Weight,
		profile.Age,
		profile.HeightFt,
		profile.HeightIn,
		profile.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrProfileExists, profile.UID)
		}
		return err
	}

	observability.RecordProfileCreated()
	return nil
}

// Get retrieves a profile by uid. A missing row yields (nil, nil).
func (r *ProfileRepository) Get(ctx context.Context, uid string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE uid=$1`

	row := r.pool.QueryRow(ctx, query, uid)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// Update applies only the provided fields and stamps updated_at, returning the
// merged row. An absent profile fails with domain.ErrProfileNotFound.
func (r *ProfileRepository) Update(ctx context.Context, uid string, update domain.ProfileUpdate, updatedAt time.Time) (*domain.Profile, error) {
	assignments := []string{}
	args := []interface{}{}
	arg := 1

	appendSet := func(column string, value interface{}) {
		assignments = append(assignments, fmt.Sprintf("%s=$%d", column, arg))
		args = append(args, value)
		arg++
	}

	if update.DisplayName != nil {
		appendSet("display_name", *update.DisplayName)
	}
	if update.Email != nil {
		appendSet("email", *update.Email)
	}
	if update.PhoneNumber != nil {
		appendSet("phone_number", *update.PhoneNumber)
	}
	if update.Weight != nil {
		appendSet("weight", *update.Weight)
	}
	if update.Age != nil {
		appendSet("age", *update.Age)
	}
	if update.HeightFt != nil {
		appendSet("height_ft", *update.HeightFt)
	}
	if update.HeightIn != nil {
		appendSet("height_in", *update.HeightIn)
	}
	if len(assignments) == 0 {
		return nil, domain.ErrNoUpdatableFields
	}
	appendSet("updated_at", updatedAt)

	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE uid=$%d RETURNING %s`,
		strings.Join(assignments, ", "), arg, profileColumns)
	args = append(args, uid)

	row := r.pool.QueryRow(ctx, query, args...)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Delete removes the profile row for uid.
func (r *ProfileRepository) Delete(ctx context.Context, uid string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE uid=$1`, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var profile domain.Profile
	if err := row.Scan(
		&profile.UID,
		&profile.Email,
		&profile.DisplayName,
		&profile.PhoneNumber,
		&profile.Gender,
		&profile.Weight,
		&profile.Age,
		&profile.HeightFt,
		&profile.HeightIn,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
