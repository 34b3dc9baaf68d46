package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrProfileNotFound is returned when no profile exists for a uid.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned on duplicate signup for the same identity.
	ErrProfileExists = errors.New("profile already exists")
	// ErrNoUpdatableFields is returned when a partial update carries nothing to apply.
	ErrNoUpdatableFields = errors.New("no updatable fields provided")
)

// Profile is the per-user record of account and self-reported biometric fields.
// The uid equals the identity provider's subject and never changes.
type Profile struct {
	UID         string
	Email       string
	DisplayName string
	PhoneNumber string
	Gender      string
	Weight      *float64
	Age         *int
	HeightFt    *int
	HeightIn    *int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ProfileUpdate carries the subset of fields a partial update may touch.
// Nil pointers mean "leave untouched".
type ProfileUpdate struct {
	DisplayName *string
	Email       *string
	PhoneNumber *string
	Weight      *float64
	Age         *int
	HeightFt    *int
	HeightIn    *int
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.Email == nil && u.PhoneNumber == nil &&
		u.Weight == nil && u.Age == nil && u.HeightFt == nil && u.HeightIn == nil
}

// ProfileRepository captures persistence operations for profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile Profile) error
	Get(ctx context.Context, uid string) (*Profile, error)
	Update(ctx context.Context, uid string, update ProfileUpdate, updatedAt time.Time) (*Profile, error)
	Delete(ctx context.Context, uid string) error
}
