package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/claude/periodize/internal/recovery"
)

func (s *Server) handleCurrentWeekVolume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	report, err := s.volume.CurrentWeekVolume(r.Context(), userID, time.Now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleVolumeTrends(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	weeks := 8
	if v := r.URL.Query().Get("weeks"); v != "" {
		weeks, err = strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weeks must be an integer"})
			return
		}
	}
	trends, err := s.volume.History(r.Context(), userID, weeks, r.URL.Query().Get("muscle_group"), time.Now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trends)
}

func (s *Server) handleProgramVolumeAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	analysis, err := s.volume.ProgramAnalysis(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleOneRMProgression(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	exerciseID, err := uuid.Parse(r.URL.Query().Get("exercise_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise_id parameter required"})
		return
	}
	end := time.Now()
	start := end.AddDate(0, -3, 0)
	if v := r.URL.Query().Get("start_date"); v != "" {
		start, err = parseDate(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start_date"})
			return
		}
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		end, err = parseDate(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid end_date"})
			return
		}
	}
	points, err := s.analytics.OneRMProgression(r.Context(), userID, exerciseID, start, end)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleConsistencyMetrics(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	metrics, err := s.analytics.ConsistencyMetrics(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) handleCreateRecoveryAssessment(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var body struct {
		Date             string `json:"date"`
		SleepQuality     int    `json:"sleep_quality"`
		MuscleSoreness   int    `json:"muscle_soreness"`
		MentalMotivation int    `json:"mental_motivation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}
	result, err := s.recovery.Create(r.Context(), userID, recovery.AssessmentParams{
		Date:             body.Date,
		SleepQuality:     body.SleepQuality,
		MuscleSoreness:   body.MuscleSoreness,
		MentalMotivation: body.MentalMotivation,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleGetRecoveryAssessment(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	row, err := s.recovery.ByDate(r.Context(), userID, date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}
