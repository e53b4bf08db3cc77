package specialistRepo

import (
	"context"
	"errors"

	"hrmanager/models"
)

// ErrNotFound is returned when no specialist matches the given ID.
var ErrNotFound = errors.New("specialist not found")

// SpecialistRepository abstracts specialist persistence.
type SpecialistRepository interface {
	GetByID(ctx context.Context, id string) (*models.Specialist, error)
	GetAll(ctx context.Context) ([]models.Specialist, error)
	Create(ctx context.Context, specialist *models.Specialist) error
	Update(ctx context.Context, specialist *models.Specialist) error
	Delete(ctx context.Context, id string) error
}
