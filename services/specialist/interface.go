package specialist

import (
	"context"

	specialistRepoPkg "hrmanager/database/repository/specialist"
	"hrmanager/models"
)

// SpecialistService manages specialist records.
type SpecialistService interface {
	GetSpecialists(ctx context.Context) ([]models.Specialist, error)
	CreateSpecialist(ctx context.Context, input models.SpecialistInput) (*models.Specialist, error)
	UpdateSpecialist(ctx context.Context, id string, input models.SpecialistInput) (*models.Specialist, error)
	DeleteSpecialist(ctx context.Context, id string) error
}

// DefaultSpecialistService implements SpecialistService.
type DefaultSpecialistService struct {
	Repo  specialistRepoPkg.SpecialistRepository
	Cache SpecialistCache // optional
}
