package service

import (
	"context"
	"errors"
	"fmt"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrTemplateNotFound         = errors.New("workout template not found")
	ErrDayNotFound              = errors.New("day not found in template")
	ErrExerciseTemplateNotFound = errors.New("planned exercise not found in day")
)

// DayInput carries the caller-supplied fields for a template day.
type DayInput struct {
	Weekday   domain.Weekday
	IsRestDay bool
	Notes     string
}

// ExerciseTemplateInput carries the caller-supplied fields for a planned
// exercise. Nil pointer fields mean "leave unchanged" on update.
type ExerciseTemplateInput struct {
	ExerciseID      uuid.UUID
	SetCount        int
	Reps            int
	Weight          *float64
	Position        float64
	SupersetGroupID *uuid.UUID
}

// TemplateService manages workout templates and their owned days and
// planned exercises. Every mutation validates the prospective state before
// anything is persisted: a failed validation leaves the stored template
// untouched, never partially applied.
type TemplateService interface {
	CreateTemplate(ctx context.Context, ownerID uuid.UUID, name, summary string) (*domain.WorkoutTemplate, error)
	GetTemplate(ctx context.Context, ownerID, templateID uuid.UUID) (*domain.WorkoutTemplate, error)
	ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutTemplate, error)
	RenameTemplate(ctx context.Context, ownerID, templateID uuid.UUID, name string) (*domain.WorkoutTemplate, error)
	UpdateSummary(ctx context.Context, ownerID, templateID uuid.UUID, summary string) (*domain.WorkoutTemplate, error)
	DeleteTemplate(ctx context.Context, ownerID, templateID uuid.UUID) error
	SuggestAvailableName(ctx context.Context, ownerID uuid.UUID, desired string) (string, error)

	AddDay(ctx context.Context, ownerID, templateID uuid.UUID, input DayInput) (*domain.DayTemplate, error)
	UpdateDay(ctx context.Context, ownerID, templateID, dayID uuid.UUID, input DayInput) (*domain.DayTemplate, error)
	RemoveDay(ctx context.Context, ownerID, templateID, dayID uuid.UUID) error

	AddExerciseTemplate(ctx context.Context, ownerID, templateID, dayID uuid.UUID, input ExerciseTemplateInput) (*domain.ExerciseTemplate, error)
	UpdateExerciseTemplate(ctx context.Context, ownerID, templateID, dayID, exerciseTemplateID uuid.UUID, input ExerciseTemplateInput) (*domain.ExerciseTemplate, error)
	RemoveExerciseTemplate(ctx context.Context, ownerID, templateID, dayID, exerciseTemplateID uuid.UUID) error
}

type templateService struct {
	templateRepo repository.TemplateRepository
	exerciseRepo repository.ExerciseRepository
}

// NewTemplateService creates a new template service.
func NewTemplateService(templateRepo repository.TemplateRepository, exerciseRepo repository.ExerciseRepository) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		exerciseRepo: exerciseRepo,
	}
}

// validateName runs the full template-name rules: format first, then the
// case-insensitive uniqueness check against the store.
func (s *templateService) validateName(ctx context.Context, ownerID uuid.UUID, name string, excludeID uuid.UUID) error {
	if vErr := domain.ValidateTemplateNameFormat(name); vErr != nil {
		return vErr
	}
	taken, err := s.templateRepo.ExistsByName(ctx, ownerID, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewDuplicateTemplateNameError(domain.NormalizeTemplateName(name))
	}
	return nil
}

func (s *templateService) CreateTemplate(ctx context.Context, ownerID uuid.UUID, name, summary string) (*domain.WorkoutTemplate, error) {
	if err := s.validateName(ctx, ownerID, name, uuid.Nil); err != nil {
		return nil, err
	}

	template := domain.NewWorkoutTemplate(ownerID, name, summary)
	if err := s.templateRepo.Create(ctx, template); err != nil {
		// The unique index may still reject a racing duplicate that the
		// ExistsByName probe missed.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.NewDuplicateTemplateNameError(template.Name)
		}
		return nil, err
	}

	log.WithFields(log.Fields{"template": template.ID, "name": template.Name}).Info("workout template created")
	return template, nil
}

func (s *templateService) GetTemplate(ctx context.Context, ownerID, templateID uuid.UUID) (*domain.WorkoutTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	if template.OwnerID != ownerID {
		return nil, ErrTemplateNotFound
	}
	return template, nil
}

func (s *templateService) ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]domain.WorkoutTemplate, error) {
	return s.templateRepo.GetByOwnerID(ctx, ownerID)
}

// RenameTemplate validates the prospective name before persisting. The
// stored template keeps its previous name on any failure.
func (s *templateService) RenameTemplate(ctx context.Context, ownerID, templateID uuid.UUID, name string) (*domain.WorkoutTemplate, error) {
	template, err := s.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}
	if err := s.validateName(ctx, ownerID, name, templateID); err != nil {
		return nil, err
	}

	updated := template.Clone()
	updated.Name = domain.NormalizeTemplateName(name)
	if err := s.templateRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.NewDuplicateTemplateNameError(updated.Name)
		}
		return nil, err
	}
	return updated, nil
}

func (s *templateService) UpdateSummary(ctx context.Context, ownerID, templateID uuid.UUID, summary string) (*domain.WorkoutTemplate, error) {
	template, err := s.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}

	updated := template.Clone()
	updated.Summary = summary
	if err := s.templateRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTemplate removes the template and, with it, every owned day and
// planned exercise. The aggregate is a single document in the store, so the
// cascade is all-or-nothing.
func (s *templateService) DeleteTemplate(ctx context.Context, ownerID, templateID uuid.UUID) error {
	err := s.templateRepo.Delete(ctx, templateID, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTemplateNotFound
	}
	return err
}

// SuggestAvailableName probes "desired", "desired 2", "desired 3", … and
// returns the first name the case-insensitive uniqueness check accepts.
func (s *templateService) SuggestAvailableName(ctx context.Context, ownerID uuid.UUID, desired string) (string, error) {
	base := domain.NormalizeTemplateName(desired)
	if base == "" {
		return "", domain.ValidateTemplateNameFormat(desired)
	}

	candidate := base
	for suffix := 2; ; suffix++ {
		taken, err := s.templateRepo.ExistsByName(ctx, ownerID, candidate, uuid.Nil)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s %d", base, suffix)
	}
}

func (s *templateService) AddDay(ctx context.Context, ownerID, templateID uuid.UUID, input DayInput) (*domain.DayTemplate, error) {
	template, err := s.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}
	if !input.Weekday.IsValid() {
		return nil, domain.NewCustomValidationError("invalid weekday")
	}

	updated := template.Clone()
	day := updated.AddDay(domain.DayTemplate{
		Weekday:   input.Weekday,
		IsRestDay: input.IsRestDay,
		Notes:     input.Notes,
	})
	if err := s.templateRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return day, nil
}

func (s *templateService) UpdateDay(ctx context.Context, ownerID, templateID, dayID uuid.UUID, input DayInput) (*domain.DayTemplate, error) {
	template, err := s.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}
	if !input.Weekday.IsValid() {
		return nil, domain.NewCustomValidationError("invalid weekday")
	}

	updated := template.Clone()
	day := updated.Day(dayID)
	if day == nil {
		return nil, ErrDayNotFound
	}
	day.Weekday = input.Weekday
	day.IsRestDay = input.IsRestDay
	day.Notes = input.Notes
	if err := s.templateRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return day, nil
}

// RemoveDay deletes a day and all its planned exercises.
func (s *templateService) RemoveDay(ctx context.Context, ownerID, templateID, dayID uuid.UUID) error {
	template, err := s.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return err
	}

	updated := template.Clone()
	if !updated.RemoveDay(dayID) {
		return ErrDayNotFound
	}
	return s.templateRepo.Update(ctx, updated)
}

func (s *templateService) AddExerciseTemplate(ctx context.Context, ownerID, templateID, dayID uuid.UUID, input ExerciseTemplateInput) (*domain.ExerciseTemplate, error) {
	template, err := s.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}
	if _, err := s.exerciseRepo.GetByID(ctx, input.ExerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	check := domain.ValidateExerciseParameters(input.SetCount, input.Reps, input.Weight, input.Position)
	if !check.IsValid {
		return nil, check.Errors[0]
	}

	updated := template.Clone()
	day := updated.Day(dayID)
	if day == nil {
		return nil, ErrDayNotFound
	}
	et := day.AddExercise(domain.ExerciseTemplate{
		ExerciseID:      input.ExerciseID,
		SetCount:        input.SetCount,
		Reps:            input.Reps,
		Weight:          input.Weight,
		Position:        input.Position,
		SupersetGroupID: input.SupersetGroupID,
	})
	if err := s.templateRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return et, nil
}

// UpdateExerciseTemplate validates the prospective field values on a clone
// before persisting, so an invalid update rolls back to the stored state
// with no partially-applied mutation observable.
func (s *templateService) UpdateExerciseTemplate(ctx context.Context, ownerID, templateID, dayID, exerciseTemplateID uuid.UUID, input ExerciseTemplateInput) (*domain.ExerciseTemplate, error) {
	template, err := s.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}

	updated := template.Clone()
	day := updated.Day(dayID)
	if day == nil {
		return nil, ErrDayNotFound
	}
	et := day.Exercise(exerciseTemplateID)
	if et == nil {
		return nil, ErrExerciseTemplateNotFound
	}

	et.SetCount = input.SetCount
	et.Reps = input.Reps
	et.Weight = input.Weight
	et.Position = input.Position
	et.SupersetGroupID = input.SupersetGroupID

	check := domain.ValidateExerciseParameters(et.SetCount, et.Reps, et.Weight, et.Position)
	if !check.IsValid {
		return nil, check.Errors[0]
	}

	if err := s.templateRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return et, nil
}

func (s *templateService) RemoveExerciseTemplate(ctx context.Context, ownerID, templateID, dayID, exerciseTemplateID uuid.UUID) error {
	template, err := s.GetTemplate(ctx, ownerID, templateID)
	if err != nil {
		return err
	}

	updated := template.Clone()
	day := updated.Day(dayID)
	if day == nil {
		return ErrDayNotFound
	}
	if !day.RemoveExercise(exerciseTemplateID) {
		return ErrExerciseTemplateNotFound
	}
	return s.templateRepo.Update(ctx, updated)
}
