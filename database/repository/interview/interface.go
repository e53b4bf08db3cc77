package interviewRepo

import (
	"context"
	"errors"

	"hrmanager/models"
)

// ErrOverlap is returned by InsertIfNoOverlap when the candidate interval
// intersects an existing interview for the same specialist at commit time.
var ErrOverlap = errors.New("interview overlaps an existing booking")

// InterviewRepository abstracts interview persistence.
//
// InsertIfNoOverlap is the only mutating call: it re-checks the candidate's
// time window and inserts the interview inside a single transaction, so two
// concurrently validated bookings for the same specialist cannot both land.
type InterviewRepository interface {
	GetAll(ctx context.Context) ([]models.InterviewWithSpecialist, error)
	GetBySpecialist(ctx context.Context, specialistID string) ([]models.Interview, error)
	InsertIfNoOverlap(ctx context.Context, interview *models.Interview) error
}
