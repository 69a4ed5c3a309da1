package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// nullable turns an empty warning into JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
	}
	return t, err
}

// parseDateRange reads optional start_date/end_date query params.
func parseDateRange(r *http.Request) (start, end *time.Time, err error) {
	if v := r.URL.Query().Get("start_date"); v != "" {
		t, perr := parseDate(v)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		t, perr := parseDate(v)
		if perr != nil {
			return nil, nil, perr
		}
		end = &t
	}
	return start, end, nil
}
