package scheduling

import (
	"context"
	"errors"

	interviewRepoPkg "hrmanager/database/repository/interview"
	specialistRepoPkg "hrmanager/database/repository/specialist"
	"hrmanager/models"
	"hrmanager/utils"

	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService against the repositories.
type DefaultBookingService struct {
	Specialists specialistRepoPkg.SpecialistRepository
	Interviews  interviewRepoPkg.InterviewRepository
	Reminders   ReminderScheduler // optional
}

// CreateInterview runs the booking validation pipeline and commits the
// interview when every check passes. Steps short-circuit in order: shape
// validation, specialist resolution, skill match, overlap check, transactional
// insert. No record is written on any failure path.
func (s *DefaultBookingService) CreateInterview(ctx context.Context, req models.InterviewRequest) (*models.Interview, error) {
	logger := utils.GetLogger()

	if err := validateInterviewRequest(req); err != nil {
		return nil, err
	}

	specialist, err := s.Specialists.GetByID(ctx, req.SpecialistID)
	if err != nil {
		if errors.Is(err, specialistRepoPkg.ErrNotFound) {
			return nil, NewSpecialistNotFoundError(req.SpecialistID)
		}
		return nil, NewStoreFailureError(err)
	}

	requiredSkills := NormalizeSkills(req.Skills)
	if !MatchSkills(specialist.Skills, requiredSkills) {
		matched, total := SkillCoverage(specialist.Skills, requiredSkills)
		logger.Debug("Skill match below threshold",
			zap.String("specialistId", specialist.ID),
			zap.Int("matched", matched),
			zap.Int("required", total))
		return nil, NewSkillMismatchError(matched, total)
	}

	existing, err := s.Interviews.GetBySpecialist(ctx, req.SpecialistID)
	if err != nil {
		return nil, NewStoreFailureError(err)
	}
	candidate := NewInterval(req.ArrivalTime, req.DurationMinutes)
	if OverlapsAny(existing, candidate) {
		return nil, NewScheduleConflictError()
	}

	interview := &models.Interview{
		ApplicantName:   req.ApplicantName,
		ApplicantID:     req.ApplicantID,
		ArrivalTime:     req.ArrivalTime,
		DurationMinutes: req.DurationMinutes,
		Skills:          requiredSkills,
		SpecialistID:    req.SpecialistID,
	}
	if err := s.Interviews.InsertIfNoOverlap(ctx, interview); err != nil {
		// A concurrent booking may win between the check above and the insert.
		if errors.Is(err, interviewRepoPkg.ErrOverlap) {
			return nil, NewScheduleConflictError()
		}
		return nil, NewStoreFailureError(err)
	}

	logger.Info("Interview booked",
		zap.String("interviewId", interview.ID),
		zap.String("specialistId", specialist.ID),
		zap.Time("arrival", interview.ArrivalTime))

	if s.Reminders != nil {
		payload := models.ReminderPayload{
			InterviewID:    interview.ID,
			SpecialistID:   specialist.ID,
			SpecialistName: specialist.FullName,
			ApplicantName:  interview.ApplicantName,
			ArrivalTime:    interview.ArrivalTime,
		}
		if err := s.Reminders.ScheduleReminder(ctx, payload); err != nil {
			logger.Warn("Failed to schedule interview reminder",
				zap.String("interviewId", interview.ID), zap.Error(err))
		}
	}

	return interview, nil
}

// ListInterviews returns all interviews joined with their specialist's name.
func (s *DefaultBookingService) ListInterviews(ctx context.Context) ([]models.InterviewWithSpecialist, error) {
	interviews, err := s.Interviews.GetAll(ctx)
	if err != nil {
		return nil, NewStoreFailureError(err)
	}
	return interviews, nil
}

func validateInterviewRequest(req models.InterviewRequest) error {
	switch {
	case req.ApplicantName == "":
		return NewInvalidRequestError("applicant_name is required")
	case req.ApplicantID == "":
		return NewInvalidRequestError("applicant_id is required")
	case req.SpecialistID == "":
		return NewInvalidRequestError("specialist_id is required")
	case req.ArrivalTime.IsZero():
		return NewInvalidRequestError("arrival_time is required")
	case req.DurationMinutes <= 0:
		return NewInvalidRequestError("duration_minutes must be a positive number")
	case len(NormalizeSkills(req.Skills)) == 0:
		return NewInvalidRequestError("skills must be a non-empty list")
	}
	return nil
}
