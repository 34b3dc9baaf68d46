package domain

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrIdentityNotFound reports that the identity provider has no record for the uid.
	ErrIdentityNotFound = errors.New("identity record not found")
	// ErrAccountPartiallyDeleted reports that the identity record was removed but
	// the profile document could not be, leaving an orphaned profile behind.
	ErrAccountPartiallyDeleted = errors.New("identity deleted but profile removal failed")
	// ErrMissingDateRange is returned when a range query lacks a bound.
	ErrMissingDateRange = errors.New("start and end dates are required")
)

// IdentityProvider captures the identity-provider operations the service
// depends on beyond token verification.
type IdentityProvider interface {
	DeleteUser(ctx context.Context, uid string) error
}

// EventPublisher emits domain events to downstream consumers.
type EventPublisher interface {
	WorkoutLogged(ctx context.Context, workout Workout) error
}

// Service orchestrates profile and workout workflows.
type Service struct {
	profiles ProfileRepository
	workouts WorkoutRepository
	identity IdentityProvider
	events   EventPublisher
}

// NewService constructs a Service. The event publisher may be nil when event
// emission is disabled.
func NewService(profiles ProfileRepository, workouts WorkoutRepository, identity IdentityProvider, events EventPublisher) *Service {
	return &Service{profiles: profiles, workouts: workouts, identity: identity, events: events}
}

// CreateProfileInput captures the signup payload together with the verified uid.
type CreateProfileInput struct {
	UID         string
	Email       string
	DisplayName string
	PhoneNumber string
	Gender      string
	Weight      *float64
	Age         *int
	HeightFt    *int
	HeightIn    *int
}

// CreateProfile writes the profile document for a freshly created identity.
// Duplicate signups are rejected with ErrProfileExists.
func (s *Service) CreateProfile(ctx context.Context, input CreateProfileInput) (*Profile, error) {
	profile := Profile{
		UID:         input.UID,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		PhoneNumber: input.PhoneNumber,
		Gender:      input.Gender,
		Weight:      input.Weight,
		Age:         input.Age,
		HeightFt:    input.HeightFt,
		HeightIn:    input.HeightIn,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile fetches the profile owned by uid.
func (s *Service) GetProfile(ctx context.Context, uid string) (*Profile, error) {
	profile, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfile merges the provided fields into the stored profile and stamps
// updatedAt. An update carrying no fields fails with ErrNoUpdatableFields.
func (s *Service) UpdateProfile(ctx context.Context, uid string, update ProfileUpdate) (*Profile, error) {
	if update.IsEmpty() {
		return nil, ErrNoUpdatableFields
	}
	return s.profiles.Update(ctx, uid, update, time.Now().UTC())
}

// DeleteAccount removes the identity-provider record and then the profile.
// The identity record goes first so the two stores never diverge towards a
// profile-less identity; if the profile removal then fails the caller sees
// ErrAccountPartiallyDeleted rather than a silent success.
func (s *Service) DeleteAccount(ctx context.Context, uid string) error {
	identityErr := s.identity.DeleteUser(ctx, uid)
	if identityErr != nil && !errors.Is(identityErr, ErrIdentityNotFound) {
		return fmt.Errorf("delete identity: %w", identityErr)
	}

	if err := s.profiles.Delete(ctx, uid); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrAccountPartiallyDeleted, err)
	}
	return nil
}

// AddWorkoutInput captures the payload from the API layer.
type AddWorkoutInput struct {
	UID         string
	WorkoutName string
	Date        time.Time
	Exercises   []Exercise
}

// AddWorkout validates and persists an append-only workout record owned by the
// caller, then emits a workout.logged event best-effort.
func (s *Service) AddWorkout(ctx context.Context, input AddWorkoutInput) (*Workout, error) {
	if strings.TrimSpace(input.WorkoutName) == "" || input.Date.IsZero() || len(input.Exercises) == 0 {
		return nil, ErrMissingWorkoutFields
	}

	workout := Workout{
		ID:          uuid.NewString(),
		UID:         input.UID,
		WorkoutName: input.WorkoutName,
		Date:        input.Date.UTC(),
		Exercises:   input.Exercises,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.workouts.Add(ctx, workout); err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.WorkoutLogged(ctx, workout); err != nil {
			log.Printf("publish workout.logged for %s: %v", workout.ID, err)
		}
	}

	workout.Exercises = NormalizeExercises(workout.Exercises)
	return &workout, nil
}

// ListWorkouts returns every workout owned by uid, newest occurrence first.
func (s *Service) ListWorkouts(ctx context.Context, uid string) ([]Workout, error) {
	return s.workouts.ListByUser(ctx, uid)
}

// ListWorkoutsByDateRange returns the caller's workouts dated within
// [start, end] inclusive, newest first.
func (s *Service) ListWorkoutsByDateRange(ctx context.Context, uid string, start, end time.Time) ([]Workout, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrMissingDateRange
	}
	return s.workouts.ListByDateRange(ctx, uid, start, end)
}
