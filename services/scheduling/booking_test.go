package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	interviewRepoPkg "hrmanager/database/repository/interview"
	specialistRepoPkg "hrmanager/database/repository/specialist"
	"hrmanager/models"
)

type fakeSpecialistRepo struct {
	specialists map[string]models.Specialist
}

func (r *fakeSpecialistRepo) GetByID(_ context.Context, id string) (*models.Specialist, error) {
	sp, ok := r.specialists[id]
	if !ok {
		return nil, specialistRepoPkg.ErrNotFound
	}
	return &sp, nil
}

func (r *fakeSpecialistRepo) GetAll(context.Context) ([]models.Specialist, error) {
	var out []models.Specialist
	for _, sp := range r.specialists {
		out = append(out, sp)
	}
	return out, nil
}

func (r *fakeSpecialistRepo) Create(_ context.Context, sp *models.Specialist) error {
	r.specialists[sp.ID] = *sp
	return nil
}

func (r *fakeSpecialistRepo) Update(_ context.Context, sp *models.Specialist) error {
	if _, ok := r.specialists[sp.ID]; !ok {
		return specialistRepoPkg.ErrNotFound
	}
	r.specialists[sp.ID] = *sp
	return nil
}

func (r *fakeSpecialistRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.specialists[id]; !ok {
		return specialistRepoPkg.ErrNotFound
	}
	delete(r.specialists, id)
	return nil
}

type fakeInterviewRepo struct {
	interviews []models.Interview
	insertErr  error
}

func (r *fakeInterviewRepo) GetAll(context.Context) ([]models.InterviewWithSpecialist, error) {
	var out []models.InterviewWithSpecialist
	for _, iv := range r.interviews {
		out = append(out, models.InterviewWithSpecialist{Interview: iv})
	}
	return out, nil
}

func (r *fakeInterviewRepo) GetBySpecialist(_ context.Context, specialistID string) ([]models.Interview, error) {
	var out []models.Interview
	for _, iv := range r.interviews {
		if iv.SpecialistID == specialistID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r *fakeInterviewRepo) InsertIfNoOverlap(_ context.Context, iv *models.Interview) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	candidate := NewInterval(iv.ArrivalTime, iv.DurationMinutes)
	for _, existing := range r.interviews {
		if existing.SpecialistID != iv.SpecialistID {
			continue
		}
		if candidate.Overlaps(Interval{Start: existing.ArrivalTime, End: existing.End()}) {
			return interviewRepoPkg.ErrOverlap
		}
	}
	iv.ID = fmt.Sprintf("iv-%d", len(r.interviews)+1)
	iv.CreatedAt = time.Now()
	r.interviews = append(r.interviews, *iv)
	return nil
}

func newBookingFixture() (*DefaultBookingService, *fakeSpecialistRepo, *fakeInterviewRepo) {
	specRepo := &fakeSpecialistRepo{
		specialists: map[string]models.Specialist{
			"S1": {
				ID:                "S1",
				FullName:          "Dana Reyes",
				AvailabilityStart: "09:00",
				AvailabilityEnd:   "17:00",
				Skills:            []string{"JavaScript", "Python", "React", "Node.js"},
			},
		},
	}
	ivRepo := &fakeInterviewRepo{}
	svc := &DefaultBookingService{Specialists: specRepo, Interviews: ivRepo}
	return svc, specRepo, ivRepo
}

func validRequest() models.InterviewRequest {
	return models.InterviewRequest{
		ApplicantName:   "Jordan Smith",
		ApplicantID:     "A42",
		ArrivalTime:     at(10, 0),
		DurationMinutes: 30,
		Skills:          []string{"JavaScript", "Python", "React"},
		SpecialistID:    "S1",
	}
}

func TestCreateInterviewAccepted(t *testing.T) {
	svc, _, ivRepo := newBookingFixture()

	iv, err := svc.CreateInterview(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateInterview returned error: %v", err)
	}
	if iv.ID == "" {
		t.Fatalf("expected store-assigned interview ID")
	}
	if len(ivRepo.interviews) != 1 {
		t.Fatalf("expected 1 stored interview, got %d", len(ivRepo.interviews))
	}
}

func TestCreateInterviewSkillMismatch(t *testing.T) {
	svc, _, ivRepo := newBookingFixture()

	req := validRequest()
	req.Skills = []string{"JavaScript", "Python", "React", "Java"} // 3/4 = 75%

	_, err := svc.CreateInterview(context.Background(), req)
	if KindOf(err) != KindSkillMismatch {
		t.Fatalf("expected KindSkillMismatch, got %v (err: %v)", KindOf(err), err)
	}
	if len(ivRepo.interviews) != 0 {
		t.Fatalf("rejected booking must not be stored")
	}
}

func TestCreateInterviewScheduleConflict(t *testing.T) {
	svc, _, ivRepo := newBookingFixture()
	ivRepo.interviews = []models.Interview{{
		ID:              "iv-existing",
		SpecialistID:    "S1",
		ArrivalTime:     at(10, 0),
		DurationMinutes: 30,
	}}

	// Overlapping the occupied [10:00, 10:30) window is rejected.
	req := validRequest()
	req.ArrivalTime = at(10, 15)
	req.DurationMinutes = 20

	_, err := svc.CreateInterview(context.Background(), req)
	if KindOf(err) != KindScheduleConflict {
		t.Fatalf("expected KindScheduleConflict, got %v (err: %v)", KindOf(err), err)
	}
	if len(ivRepo.interviews) != 1 {
		t.Fatalf("rejected booking must not be stored")
	}

	// Starting exactly at the existing end is accepted.
	req.ArrivalTime = at(10, 30)
	if _, err := svc.CreateInterview(context.Background(), req); err != nil {
		t.Fatalf("booking starting at an existing end must be accepted, got %v", err)
	}
}

func TestCreateInterviewConflictScopedToSpecialist(t *testing.T) {
	svc, specRepo, ivRepo := newBookingFixture()
	specRepo.specialists["S2"] = models.Specialist{
		ID:       "S2",
		FullName: "Sam Okafor",
		Skills:   []string{"JavaScript", "Python", "React"},
	}
	// Another specialist already has this exact window booked.
	ivRepo.interviews = []models.Interview{{
		ID:              "iv-existing",
		SpecialistID:    "S2",
		ArrivalTime:     at(10, 0),
		DurationMinutes: 30,
	}}

	if _, err := svc.CreateInterview(context.Background(), validRequest()); err != nil {
		t.Fatalf("bookings of other specialists must not conflict, got %v", err)
	}
}

func TestCreateInterviewSpecialistNotFound(t *testing.T) {
	svc, _, ivRepo := newBookingFixture()

	req := validRequest()
	req.SpecialistID = "S999"

	_, err := svc.CreateInterview(context.Background(), req)
	if KindOf(err) != KindSpecialistNotFound {
		t.Fatalf("expected KindSpecialistNotFound, got %v (err: %v)", KindOf(err), err)
	}
	if len(ivRepo.interviews) != 0 {
		t.Fatalf("rejected booking must not be stored")
	}
}

func TestCreateInterviewInvalidRequests(t *testing.T) {
	svc, _, ivRepo := newBookingFixture()

	cases := []struct {
		name   string
		mutate func(*models.InterviewRequest)
	}{
		{"missing applicant name", func(r *models.InterviewRequest) { r.ApplicantName = "" }},
		{"missing applicant id", func(r *models.InterviewRequest) { r.ApplicantID = "" }},
		{"missing specialist id", func(r *models.InterviewRequest) { r.SpecialistID = "" }},
		{"zero arrival time", func(r *models.InterviewRequest) { r.ArrivalTime = time.Time{} }},
		{"zero duration", func(r *models.InterviewRequest) { r.DurationMinutes = 0 }},
		{"negative duration", func(r *models.InterviewRequest) { r.DurationMinutes = -15 }},
		{"empty skills", func(r *models.InterviewRequest) { r.Skills = nil }},
		{"skills of empty strings", func(r *models.InterviewRequest) { r.Skills = []string{"", ""} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.CreateInterview(context.Background(), req)
			if KindOf(err) != KindInvalidRequest {
				t.Fatalf("expected KindInvalidRequest, got %v (err: %v)", KindOf(err), err)
			}
		})
	}
	if len(ivRepo.interviews) != 0 {
		t.Fatalf("rejected bookings must not be stored")
	}
}

func TestCreateInterviewConcurrentConflictAtCommit(t *testing.T) {
	// The pre-insert overlap check passes, but a concurrent booking wins the
	// transactional insert. The caller still sees a schedule conflict.
	svc, _, ivRepo := newBookingFixture()
	ivRepo.insertErr = interviewRepoPkg.ErrOverlap

	_, err := svc.CreateInterview(context.Background(), validRequest())
	if KindOf(err) != KindScheduleConflict {
		t.Fatalf("expected KindScheduleConflict, got %v (err: %v)", KindOf(err), err)
	}
}

func TestCreateInterviewStoreFailure(t *testing.T) {
	svc, _, ivRepo := newBookingFixture()
	ivRepo.insertErr = errors.New("connection reset")

	_, err := svc.CreateInterview(context.Background(), validRequest())
	if KindOf(err) != KindStoreFailure {
		t.Fatalf("expected KindStoreFailure, got %v (err: %v)", KindOf(err), err)
	}
	if !errors.Is(err, ivRepo.insertErr) {
		t.Fatalf("store failure must wrap the underlying error")
	}
}

type fakeReminderScheduler struct {
	payloads []models.ReminderPayload
	err      error
}

func (s *fakeReminderScheduler) ScheduleReminder(_ context.Context, p models.ReminderPayload) error {
	if s.err != nil {
		return s.err
	}
	s.payloads = append(s.payloads, p)
	return nil
}

func TestCreateInterviewSchedulesReminder(t *testing.T) {
	svc, _, _ := newBookingFixture()
	reminders := &fakeReminderScheduler{}
	svc.Reminders = reminders

	iv, err := svc.CreateInterview(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("CreateInterview returned error: %v", err)
	}
	if len(reminders.payloads) != 1 {
		t.Fatalf("expected 1 scheduled reminder, got %d", len(reminders.payloads))
	}
	if reminders.payloads[0].InterviewID != iv.ID {
		t.Fatalf("reminder references interview %q, want %q", reminders.payloads[0].InterviewID, iv.ID)
	}
}

func TestCreateInterviewReminderFailureDoesNotFailBooking(t *testing.T) {
	svc, _, ivRepo := newBookingFixture()
	svc.Reminders = &fakeReminderScheduler{err: errors.New("queue unavailable")}

	if _, err := svc.CreateInterview(context.Background(), validRequest()); err != nil {
		t.Fatalf("reminder failure must not fail a committed booking, got %v", err)
	}
	if len(ivRepo.interviews) != 1 {
		t.Fatalf("expected booking to be stored")
	}
}
