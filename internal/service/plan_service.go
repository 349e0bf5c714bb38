package service

import (
	"context"
	"errors"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound = errors.New("workout plan not found")
)

// PlanService manages scheduled plan instances of templates. The template
// link is a plain reference: deleting a plan never cascades into the
// template or into sessions that pointed at the plan.
type PlanService interface {
	CreatePlan(ctx context.Context, ownerID, templateID uuid.UUID, name string, durationWeeks int, startDate time.Time) (*domain.WorkoutPlan, error)
	GetPlan(ctx context.Context, ownerID, planID uuid.UUID) (*domain.WorkoutPlan, error)
	ListPlans(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, ownerID, planID uuid.UUID, name string, durationWeeks int, startDate time.Time) (*domain.WorkoutPlan, error)
	// ActivatePlan marks the plan active and deactivates every sibling in
	// the same write path, so at most one plan per owner is ever active.
	ActivatePlan(ctx context.Context, ownerID, planID uuid.UUID) (*domain.WorkoutPlan, error)
	DeactivatePlan(ctx context.Context, ownerID, planID uuid.UUID) (*domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, ownerID, planID uuid.UUID) error
}

type planService struct {
	planRepo     repository.PlanRepository
	templateRepo repository.TemplateRepository
}

// NewPlanService creates a new plan service.
func NewPlanService(planRepo repository.PlanRepository, templateRepo repository.TemplateRepository) PlanService {
	return &planService{planRepo: planRepo, templateRepo: templateRepo}
}

func (s *planService) CreatePlan(ctx context.Context, ownerID, templateID uuid.UUID, name string, durationWeeks int, startDate time.Time) (*domain.WorkoutPlan, error) {
	if name == "" {
		return nil, domain.NewCustomValidationError("plan name is required")
	}
	if durationWeeks < 0 {
		return nil, domain.NewCustomValidationError("plan duration cannot be negative")
	}

	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil || template.OwnerID != ownerID {
		return nil, ErrTemplateNotFound
	}

	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}
	plan := domain.NewWorkoutPlan(ownerID, templateID, name, durationWeeks, startDate)
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) GetPlan(ctx context.Context, ownerID, planID uuid.UUID) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.OwnerID != ownerID {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *planService) ListPlans(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutPlan, error) {
	return s.planRepo.GetByOwnerID(ctx, ownerID)
}

func (s *planService) UpdatePlan(ctx context.Context, ownerID, planID uuid.UUID, name string, durationWeeks int, startDate time.Time) (*domain.WorkoutPlan, error) {
	if name == "" {
		return nil, domain.NewCustomValidationError("plan name is required")
	}
	if durationWeeks < 0 {
		return nil, domain.NewCustomValidationError("plan duration cannot be negative")
	}

	plan, err := s.GetPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	plan.Name = name
	plan.DurationWeeks = durationWeeks
	if !startDate.IsZero() {
		plan.StartDate = startDate
	}
	if plan.DurationWeeks > 0 {
		end := plan.StartDate.AddDate(0, 0, plan.DurationWeeks*7)
		plan.EndDate = &end
	} else {
		plan.EndDate = nil
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) ActivatePlan(ctx context.Context, ownerID, planID uuid.UUID) (*domain.WorkoutPlan, error) {
	plan, err := s.GetPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	// Siblings first: if we fail between the two writes, the invariant
	// degrades to "no active plan", never to two active plans.
	if err := s.planRepo.DeactivateAllExcept(ctx, ownerID, planID); err != nil {
		return nil, err
	}
	plan.IsActive = true
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"plan": planID}).Info("workout plan activated")
	return plan, nil
}

func (s *planService) DeactivatePlan(ctx context.Context, ownerID, planID uuid.UUID) (*domain.WorkoutPlan, error) {
	plan, err := s.GetPlan(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}
	plan.IsActive = false
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) DeletePlan(ctx context.Context, ownerID, planID uuid.UUID) error {
	err := s.planRepo.Delete(ctx, planID, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPlanNotFound
	}
	return err
}
