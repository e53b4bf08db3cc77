package scheduling

import (
	"context"

	"hrmanager/models"
)

// BookingService validates and commits interview bookings.
type BookingService interface {
	CreateInterview(ctx context.Context, req models.InterviewRequest) (*models.Interview, error)
	ListInterviews(ctx context.Context) ([]models.InterviewWithSpecialist, error)
}

// ReminderScheduler schedules a reminder for an accepted interview. The
// booking path treats scheduling as best-effort: an enqueue failure never
// fails a booking that already committed.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload) error
}
