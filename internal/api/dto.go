package api

import (
	"time"

	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/domain"
)

// SignupRequest is the payload for POST /api/auth/signup. The uid and email
// derive from the verified bearer token, never from the body.
type SignupRequest struct {
	DisplayName string   `json:"displayName" validate:"required"`
	Email       string   `json:"email" validate:"omitempty,email"`
	PhoneNumber string   `json:"phoneNumber"`
	Gender      string   `json:"gender"`
	Weight      *float64 `json:"weight" validate:"omitempty,gt=0"`
	Age         *int     `json:"age" validate:"omitempty,gte=0"`
	HeightFt    *int     `json:"heightFt" validate:"omitempty,gte=0"`
	HeightIn    *int     `json:"heightIn" validate:"omitempty,gte=0,lt=12"`
}

// SignupResponse echoes the created account.
type SignupResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// VerifyTokenResponse carries the verified principal.
type VerifyTokenResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// EditUserInfoRequest carries a partial profile update; absent fields stay untouched.
type EditUserInfoRequest struct {
	DisplayName *string  `json:"displayName"`
	Email       *string  `json:"email"`
	PhoneNumber *string  `json:"phoneNumber"`
	Weight      *float64 `json:"weight"`
	Age         *int     `json:"age"`
	HeightFt    *int     `json:"heightFt"`
	HeightIn    *int     `json:"heightIn"`
}

// appliedFields reports the fields the update actually carried, for echoing
// back to the caller.
func (r EditUserInfoRequest) appliedFields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.DisplayName != nil {
		fields["displayName"] = *r.DisplayName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.PhoneNumber != nil {
		fields["phoneNumber"] = *r.PhoneNumber
	}
	if r.Weight != nil {
		fields["weight"] = *r.Weight
	}
	if r.Age != nil {
		fields["age"] = *r.Age
	}
	if r.HeightFt != nil {
		fields["heightFt"] = *r.HeightFt
	}
	if r.HeightIn != nil {
		fields["heightIn"] = *r.HeightIn
	}
	return fields
}

// ProfileView exposes the stored profile.
type ProfileView struct {
	UID         string     `json:"uid"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	Weight      *float64   `json:"weight,omitempty"`
	Age         *int       `json:"age,omitempty"`
	HeightFt    *int       `json:"heightFt,omitempty"`
	HeightIn    *int       `json:"heightIn,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func toProfileView(profile domain.Profile) ProfileView {
	return ProfileView{
		UID:         profile.UID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		PhoneNumber: profile.PhoneNumber,
		Gender:      profile.Gender,
		Weight:      profile.Weight,
		Age:         profile.Age,
		HeightFt:    profile.HeightFt,
		HeightIn:    profile.HeightIn,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

// AddWorkoutRequest is the payload for POST /api/auth/add-workout.
type AddWorkoutRequest struct {
	WorkoutName string            `json:"workoutName" validate:"required"`
	Date        string            `json:"date" validate:"required"`
	Exercises   []ExercisePayload `json:"exercises" validate:"required,min=1,dive"`
}

// ExercisePayload is one exercise entry in an add-workout request.
type ExercisePayload struct {
	Name      string            `json:"name" validate:"required"`
	Equipment *EquipmentPayload `json:"equipment"`
	Sets      []SetPayload      `json:"sets"`
}

// EquipmentPayload identifies the gear used for an exercise.
type EquipmentPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SetPayload is one set of reps at a weight; absent fields default to zero.
type SetPayload struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

func (r AddWorkoutRequest) toExercises() []domain.Exercise {
	exercises := make([]domain.Exercise, 0, len(r.Exercises))
	for _, payload := range r.Exercises {
		exercise := domain.Exercise{Name: payload.Name}
		if payload.Equipment != nil {
			exercise.Equipment = domain.Equipment{ID: payload.Equipment.ID, Name: payload.Equipment.Name}
		}
		for _, set := range payload.Sets {
			exercise.Sets = append(exercise.Sets, domain.SetLog{Reps: set.Reps, Weight: set.Weight})
		}
		exercises = append(exercises, exercise)
	}
	return exercises
}

// WorkoutView exposes a stored workout record.
type WorkoutView struct {
	ID          string            `json:"id"`
	UID         string            `json:"uid"`
	WorkoutName string            `json:"workoutName"`
	Date        time.Time         `json:"date"`
	Exercises   []domain.Exercise `json:"exercises"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func toWorkoutView(workout domain.Workout) WorkoutView {
	return WorkoutView{
		ID:          workout.ID,
		UID:         workout.UID,
		WorkoutName: workout.WorkoutName,
		Date:        workout.Date,
		Exercises:   workout.Exercises,
		CreatedAt:   workout.CreatedAt,
	}
}

func toWorkoutViews(workouts []domain.Workout) []WorkoutView {
	views := make([]WorkoutView, 0, len(workouts))
	for _, workout := range workouts {
		views = append(views, toWorkoutView(workout))
	}
	return views
}
