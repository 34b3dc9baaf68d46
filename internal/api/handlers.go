// Package api exposes the HTTP handlers for the StrongSight backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/auth"
	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/signup", method(http.MethodPost, h.signup))
	mux.HandleFunc("/api/auth/verify-token", method(http.MethodPost, h.verifyToken))
	mux.HandleFunc("/api/auth/delete-user", method(http.MethodDelete, h.deleteUser))
	mux.HandleFunc("/api/auth/get-userInfo", method(http.MethodGet, h.getUserInfo))
	mux.HandleFunc("/api/auth/edit-userInfo", method(http.MethodPut, h.editUserInfo))
	mux.HandleFunc("/api/auth/add-workout", method(http.MethodPost, h.addWorkout))
	mux.HandleFunc("/api/auth/get-userWorkouts", method(http.MethodGet, h.getUserWorkouts))
	mux.HandleFunc("/api/auth/get-userWorkoutsDate", method(http.MethodGet, h.getUserWorkoutsByDate))
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func method(allowed string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != allowed {
			writeError(w, http.StatusMethodNotAllowed, "unsupported method")
			return
		}
		next(w, r)
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	email := principal.Email
	if email == "" {
		email = req.Email
	}

	profile, err := h.service.CreateProfile(r.Context(), domain.CreateProfileInput{
		UID:         principal.UID,
		Email:       email,
		DisplayName: req.DisplayName,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		Weight:      req.Weight,
		Age:         req.Age,
		HeightFt:    req.HeightFt,
		HeightIn:    req.HeightIn,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SignupResponse{UID: profile.UID, Email: profile.Email})
}

func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}
	writeJSON(w, http.StatusOK, VerifyTokenResponse{UID: principal.UID, Email: principal.Email})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	if err := h.service.DeleteAccount(r.Context(), principal.UID); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted successfully"})
}

func (h *Handler) getUserInfo(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	profile, err := h.service.GetProfile(r.Context(), principal.UID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": toProfileView(*profile)})
}

func (h *Handler) editUserInfo(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	var req EditUserInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse body")
		return
	}

	update := domain.ProfileUpdate{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Weight:      req.Weight,
		Age:         req.Age,
		HeightFt:    req.HeightFt,
		HeightIn:    req.HeightIn,
	}

	if _, err := h.service.UpdateProfile(r.Context(), principal.UID, update); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": req.appliedFields()})
}

func (h *Handler) addWorkout(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	var req AddWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := domain.ParseWorkoutDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be RFC 3339 or YYYY-MM-DD")
		return
	}

	workout, err := h.service.AddWorkout(r.Context(), domain.AddWorkoutInput{
		UID:         principal.UID,
		WorkoutName: req.WorkoutName,
		Date:        date,
		Exercises:   req.toExercises(),
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":   workout.ID,
		"data": toWorkoutView(*workout),
	})
}

func (h *Handler) getUserWorkouts(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	workouts, err := h.service.ListWorkouts(r.Context(), principal.UID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": toWorkoutViews(workouts)})
}

func (h *Handler) getUserWorkoutsByDate(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrMissingToken.Error())
		return
	}

	rawStart := r.URL.Query().Get("start")
	rawEnd := r.URL.Query().Get("end")
	if rawStart == "" || rawEnd == "" {
		writeError(w, http.StatusBadRequest, domain.ErrMissingDateRange.Error())
		return
	}

	start, err := domain.ParseWorkoutDate(rawStart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start must be RFC 3339 or YYYY-MM-DD")
		return
	}
	end, err := domain.ParseWorkoutDate(rawEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end must be RFC 3339 or YYYY-MM-DD")
		return
	}
	// A bare end date covers the whole calendar day.
	if len(rawEnd) == len("2006-01-02") {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	workouts, err := h.service.ListWorkoutsByDateRange(r.Context(), principal.UID, start, end)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": toWorkoutViews(workouts)})
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "profile not found")
	case errors.Is(err, domain.ErrProfileExists):
		writeError(w, http.StatusConflict, "profile already exists for this account")
	case errors.Is(err, domain.ErrNoUpdatableFields),
		errors.Is(err, domain.ErrMissingWorkoutFields),
		errors.Is(err, domain.ErrMissingDateRange),
		errors.Is(err, domain.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAccountPartiallyDeleted):
		writeError(w, http.StatusInternalServerError, "identity deleted but profile removal failed")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request timed out")
	default:
		writeError(w, http.StatusInternalServerError, "unexpected error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
