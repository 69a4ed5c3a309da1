package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/claude/periodize/internal/workout"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	muscleGroup := r.URL.Query().Get("muscle_group")
	equipment := r.URL.Query().Get("equipment")
	rows, err := s.db.ListExercises(r.Context(), muscleGroup, equipment)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}
	row, err := s.db.GetExercise(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	start, end, err := parseDateRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date: " + err.Error()})
		return
	}
	rows, err := s.workouts.List(r.Context(), userID, start, end)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}
	row, err := s.workouts.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var body struct {
		ProgramDayID uuid.UUID `json:"program_day_id"`
		Date         string    `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	date := time.Now()
	if body.Date != "" {
		date, err = parseDate(body.Date)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date: " + err.Error()})
			return
		}
	}
	row, err := s.workouts.Create(r.Context(), userID, body.ProgramDayID, date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleUpdateWorkoutStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}
	var body struct {
		Status        string   `json:"status"`
		TotalVolumeKg *float64 `json:"total_volume_kg"`
		AverageRIR    *float64 `json:"average_rir"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	row, err := s.workouts.UpdateStatus(r.Context(), id, body.Status, body.TotalVolumeKg, body.AverageRIR)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleLogSet(w http.ResponseWriter, r *http.Request) {
	workoutID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}
	var body struct {
		ExerciseID uuid.UUID `json:"exercise_id"`
		SetNumber  *int      `json:"set_number"`
		WeightKg   float64   `json:"weight_kg"`
		Reps       int       `json:"reps"`
		RIR        int       `json:"rir"`
		Timestamp  *string   `json:"timestamp"`
		Notes      *string   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	var ts *time.Time
	if body.Timestamp != nil {
		parsed, err := parseDate(*body.Timestamp)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid timestamp: " + err.Error()})
			return
		}
		ts = &parsed
	}
	row, err := s.workouts.LogSet(r.Context(), workout.LogSetParams{
		WorkoutID:  workoutID,
		ExerciseID: body.ExerciseID,
		SetNumber:  body.SetNumber,
		WeightKg:   body.WeightKg,
		Reps:       body.Reps,
		RIR:        body.RIR,
		Timestamp:  ts,
		Notes:      body.Notes,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleListSets(w http.ResponseWriter, r *http.Request) {
	workoutID, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}
	rows, err := s.workouts.Sets(r.Context(), workoutID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
