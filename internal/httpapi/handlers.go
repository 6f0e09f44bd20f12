package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/alexanderramin/crewshift/internal/app"
	"github.com/alexanderramin/crewshift/internal/calendar"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleShift(w http.ResponseWriter, r *http.Request) {
	var body shiftRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req := app.NewShiftStartDateRequest(chi.URLParam(r, "projectID"), body.NewStartDate)
	req.DryRun = body.DryRun
	s.shift(w, r, req)
}

func (s *Server) handleLegacyShift(w http.ResponseWriter, r *http.Request) {
	var body legacyShiftRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(body.ProjectID) == "" || strings.TrimSpace(body.NewStartDate) == "" {
		writeError(w, http.StatusBadRequest, "Missing projectId or newStartDate")
		return
	}
	s.shift(w, r, app.NewShiftStartDateRequest(body.ProjectID, body.NewStartDate))
}

func (s *Server) shift(w http.ResponseWriter, r *http.Request, req app.ShiftStartDateRequest) {
	resp, err := s.shifter.ShiftStartDate(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err, "Failed to update project start date")
		return
	}
	writeJSON(w, http.StatusOK, newShiftResponse(resp))
}

func (s *Server) handleProjectManpower(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if _, err := s.projects.GetByID(r.Context(), projectID); err != nil {
		s.writeServiceError(w, r, err, "Failed to load manpower")
		return
	}
	records, err := s.manpower.ListByProject(r.Context(), projectID)
	if err != nil {
		s.writeServiceError(w, r, err, "Failed to load manpower")
		return
	}
	writeJSON(w, http.StatusOK, newManpowerList(records))
}

func (s *Server) handleWorkingDays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := calendar.Parse(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "from: "+err.Error())
		return
	}
	to, err := calendar.Parse(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "to: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"from":        from,
		"to":          to,
		"workingDays": s.cal.WorkingDaysBetween(from, to),
	})
}

func (s *Server) handleHolidays(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newHolidayList(s.cal.Holidays()))
}

// writeServiceError maps app errors to status codes. Details of internal
// failures are logged, not returned.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, failMsg string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrNotFound):
		writeError(w, http.StatusNotFound, "Project not found")
	default:
		s.logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, failMsg)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
