package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrmanager/models"
	"hrmanager/services/scheduling"

	"github.com/gin-gonic/gin"
)

type stubBookingService struct {
	interview *models.Interview
	err       error
}

func (s *stubBookingService) CreateInterview(context.Context, models.InterviewRequest) (*models.Interview, error) {
	return s.interview, s.err
}

func (s *stubBookingService) ListInterviews(context.Context) ([]models.InterviewWithSpecialist, error) {
	return nil, s.err
}

func postInterview(t *testing.T, svc scheduling.BookingService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewInterviewHandler(svc)
	router.POST("/api/interviews", handler.CreateInterviewHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/interviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"applicant_name": "Jordan Smith",
	"applicant_id": "A42",
	"arrival_time": "2025-03-10T10:00:00Z",
	"duration_minutes": 30,
	"skills": ["JavaScript", "Python", "React"],
	"specialist_id": "S1"
}`

func TestCreateInterviewHandlerCreated(t *testing.T) {
	svc := &stubBookingService{interview: &models.Interview{
		ID:              "iv-1",
		ApplicantName:   "Jordan Smith",
		ApplicantID:     "A42",
		ArrivalTime:     time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Skills:          []string{"JavaScript", "Python", "React"},
		SpecialistID:    "S1",
	}}

	w := postInterview(t, svc, validBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusCreated, w.Body.String())
	}

	var got models.Interview
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID != "iv-1" {
		t.Fatalf("response ID = %q, want %q", got.ID, "iv-1")
	}
}

func TestCreateInterviewHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid request",
			err:        scheduling.NewInvalidRequestError("duration_minutes must be a positive number"),
			wantStatus: http.StatusBadRequest,
			wantError:  "duration_minutes must be a positive number",
		},
		{
			name:       "specialist not found",
			err:        scheduling.NewSpecialistNotFoundError("S999"),
			wantStatus: http.StatusNotFound,
			wantError:  "Specialist not found",
		},
		{
			name:       "skill mismatch",
			err:        scheduling.NewSkillMismatchError(3, 4),
			wantStatus: http.StatusBadRequest,
			wantError:  "Specialist skills do not match the applicant",
		},
		{
			name:       "schedule conflict",
			err:        scheduling.NewScheduleConflictError(),
			wantStatus: http.StatusBadRequest,
			wantError:  "Time overlap with another interview",
		},
		{
			name:       "store failure",
			err:        scheduling.NewStoreFailureError(context.DeadlineExceeded),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Server Error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postInterview(t, &stubBookingService{err: tc.err}, validBody)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body["error"] != tc.wantError {
				t.Fatalf("error = %q, want %q", body["error"], tc.wantError)
			}
		})
	}
}

func TestCreateInterviewHandlerMalformedBody(t *testing.T) {
	w := postInterview(t, &stubBookingService{}, `{"arrival_time": "not-a-date"`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
