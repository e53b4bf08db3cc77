package specialist

import (
	"context"
	"time"

	"hrmanager/models"
	"hrmanager/services/scheduling"
	"hrmanager/utils"

	"go.uber.org/zap"
)

// wallClockLayout is the format of availability window bounds ("HH:MM").
const wallClockLayout = "15:04"

// GetSpecialists returns all specialists, serving from cache when possible.
func (s *DefaultSpecialistService) GetSpecialists(ctx context.Context) ([]models.Specialist, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx); err == nil {
			return cached, nil
		}
	}

	specialists, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, specialists); err != nil {
			utils.GetLogger().Warn("Failed to cache specialists", zap.Error(err))
		}
	}
	return specialists, nil
}

// CreateSpecialist validates the payload and inserts a new specialist.
func (s *DefaultSpecialistService) CreateSpecialist(ctx context.Context, input models.SpecialistInput) (*models.Specialist, error) {
	if err := validateSpecialistInput(input); err != nil {
		return nil, err
	}

	sp := &models.Specialist{
		FullName:          input.FullName,
		AvailabilityStart: input.AvailabilityStart,
		AvailabilityEnd:   input.AvailabilityEnd,
		Skills:            scheduling.NormalizeSkills(input.Skills),
	}
	if err := s.Repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return sp, nil
}

// UpdateSpecialist validates the payload and replaces the stored record.
func (s *DefaultSpecialistService) UpdateSpecialist(ctx context.Context, id string, input models.SpecialistInput) (*models.Specialist, error) {
	if err := validateSpecialistInput(input); err != nil {
		return nil, err
	}

	sp := &models.Specialist{
		ID:                id,
		FullName:          input.FullName,
		AvailabilityStart: input.AvailabilityStart,
		AvailabilityEnd:   input.AvailabilityEnd,
		Skills:            scheduling.NormalizeSkills(input.Skills),
	}
	if err := s.Repo.Update(ctx, sp); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return sp, nil
}

// DeleteSpecialist removes a specialist record.
func (s *DefaultSpecialistService) DeleteSpecialist(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *DefaultSpecialistService) invalidateCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		utils.GetLogger().Warn("Failed to invalidate specialist cache", zap.Error(err))
	}
}

func validateSpecialistInput(input models.SpecialistInput) error {
	if input.FullName == "" {
		return NewValidationError("name is required")
	}
	start, err := time.Parse(wallClockLayout, input.AvailabilityStart)
	if err != nil {
		return NewValidationError("availability_start must be a valid HH:MM time")
	}
	end, err := time.Parse(wallClockLayout, input.AvailabilityEnd)
	if err != nil {
		return NewValidationError("availability_end must be a valid HH:MM time")
	}
	if !start.Before(end) {
		return NewValidationError("availability_start must be before availability_end")
	}
	if len(scheduling.NormalizeSkills(input.Skills)) == 0 {
		return NewValidationError("skills must be a non-empty list")
	}
	return nil
}
