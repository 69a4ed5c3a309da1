package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/claude/periodize/internal/program"
	"github.com/claude/periodize/internal/storage"
)

func (s *Server) handleActiveProgram(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	tree, err := s.programs.Active(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return
	}
	tree, err := s.programs.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (s *Server) handleCreateDefaultProgram(w http.ResponseWriter, r *http.Request) {
	userID, err := s.userID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	tree, err := s.programs.CreateDefault(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tree)
}

func (s *Server) handleAdvancePhase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return
	}
	var body struct {
		Manual      bool   `json:"manual"`
		TargetPhase string `json:"target_phase"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	result, err := s.programs.AdvancePhase(r.Context(), id, body.Manual, body.TargetPhase)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleProgramVolume(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return
	}
	report, err := s.volume.ProgramVolumeReport(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleListProgramExercises(w http.ResponseWriter, r *http.Request) {
	var params program.ListParams
	if v := r.URL.Query().Get("program_day_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program_day_id"})
			return
		}
		params.ProgramDayID = &id
	}
	if v := r.URL.Query().Get("exercise_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise_id"})
			return
		}
		params.ExerciseID = &id
	}
	items, err := s.programs.List(r.Context(), params)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateProgramExercise(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProgramDayID uuid.UUID `json:"program_day_id"`
		ExerciseID   uuid.UUID `json:"exercise_id"`
		TargetSets   int       `json:"target_sets"`
		RepRange     string    `json:"target_rep_range"`
		TargetRIR    int       `json:"target_rir"`
		OrderIndex   *int      `json:"order_index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	result, err := s.programs.Create(r.Context(), program.CreateParams{
		ProgramDayID: body.ProgramDayID,
		ExerciseID:   body.ExerciseID,
		TargetSets:   body.TargetSets,
		RepRange:     body.RepRange,
		TargetRIR:    body.TargetRIR,
		OrderIndex:   body.OrderIndex,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"program_exercise": result.Exercise,
		"volume_warning":   nullable(result.Warning),
	})
}

func (s *Server) handleUpdateProgramExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program exercise ID"})
		return
	}
	var body struct {
		TargetSets *int    `json:"target_sets"`
		RepRange   *string `json:"target_rep_range"`
		TargetRIR  *int    `json:"target_rir"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	result, err := s.programs.Update(r.Context(), id, program.UpdateParams{
		TargetSets: body.TargetSets,
		RepRange:   body.RepRange,
		TargetRIR:  body.TargetRIR,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"updated":          result.Updated,
		"program_exercise": result.Exercise,
		"volume_warning":   nullable(result.Warning),
	})
}

func (s *Server) handleDeleteProgramExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program exercise ID"})
		return
	}
	result, err := s.programs.Delete(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"deleted":        result.Deleted,
		"volume_warning": nullable(result.Warning),
	})
}

func (s *Server) handleSwapProgramExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program exercise ID"})
		return
	}
	var body struct {
		NewExerciseID uuid.UUID `json:"new_exercise_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	result, err := s.programs.Swap(r.Context(), id, body.NewExerciseID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"swapped":           true,
		"old_exercise_name": result.OldName,
		"new_exercise_name": result.NewName,
		"program_exercise":  result.Exercise,
	})
}

func (s *Server) handleBatchReorder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProgramDayID  uuid.UUID `json:"program_day_id"`
		ExerciseOrder []struct {
			ProgramExerciseID uuid.UUID `json:"program_exercise_id"`
			NewOrderIndex     int       `json:"new_order_index"`
		} `json:"exercise_order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	items := make([]storage.ReorderItem, 0, len(body.ExerciseOrder))
	for _, e := range body.ExerciseOrder {
		items = append(items, storage.ReorderItem{
			ProgramExerciseID: e.ProgramExerciseID,
			NewOrderIndex:     e.NewOrderIndex,
		})
	}
	if err := s.programs.Reorder(r.Context(), items); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"reordered": true})
}
