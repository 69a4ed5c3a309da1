package server

import (
	"errors"
	"net/http"

	"github.com/claude/periodize/internal/program"
	"github.com/claude/periodize/internal/storage"
	"github.com/claude/periodize/internal/validate"
	"github.com/claude/periodize/internal/workout"
)

// writeError maps service errors onto HTTP statuses. Unknown errors are
// logged and reported as a bare 500 so internals never leak to the caller.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		rangeErr  *validate.RangeError
		formatErr *validate.FormatError
		phaseErr  *program.InvalidPhaseError
		swapErr   *program.IncompatibleSwapError
		statusErr *workout.InvalidStatusError
	)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, program.ErrProgramExists):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, program.ErrMissingTargetPhase),
		errors.As(err, &rangeErr),
		errors.As(err, &formatErr),
		errors.As(err, &phaseErr),
		errors.As(err, &swapErr),
		errors.As(err, &statusErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		s.log.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
