package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrMalformedImportDocument marks structural decode failures: the payload
// is not even shaped like an import document (bad JSON, wrong types, missing
// required keys). It is deliberately distinct from ImportError, which
// reports rule violations in a structurally valid document.
var ErrMalformedImportDocument = errors.New("malformed import document")

// ImportError reports every rule violation found in an import document in
// one batch, so the document can be fixed in a single pass.
type ImportError struct {
	Violations []string `json:"violations"`
}

func (e *ImportError) Error() string {
	return "import validation failed: " + strings.Join(e.Violations, "; ")
}

// ImportDocument is the externally supplied template definition. Required
// fields are pointers (or nilable slices) so an absent key is telling apart
// from a present-but-empty value: absence is a structural failure, emptiness
// a rule violation.
type ImportDocument struct {
	Name    *string     `json:"name"`
	Summary string      `json:"summary"`
	Days    []ImportDay `json:"days"`
}

// ImportDay describes one day of the template. The weekday is resolved from
// DayIndex (1-7, Sunday first) when present, otherwise from DayName via the
// finite name/abbreviation table.
type ImportDay struct {
	DayIndex  *int             `json:"dayIndex,omitempty"`
	DayName   *string          `json:"dayName,omitempty"`
	Name      string           `json:"name"`
	Exercises []ImportExercise `json:"exercises"`
}

// ImportExercise describes one planned exercise. SupersetGroup is an opaque
// label: exercises of a day sharing the same label end up in one superset.
type ImportExercise struct {
	Name          *string  `json:"name"`
	Sets          *int     `json:"sets"`
	Reps          *int     `json:"reps"`
	Weight        *float64 `json:"weight,omitempty"`
	SupersetGroup *string  `json:"supersetGroup,omitempty"`
}

// ImportService validates externally supplied template documents and
// materializes them into the store.
type ImportService interface {
	// Import decodes, validates and materializes a template document.
	// Decode failures wrap ErrMalformedImportDocument; rule violations
	// come back as a single *ImportError listing all of them.
	Import(ctx context.Context, ownerID uuid.UUID, raw []byte) (*domain.WorkoutTemplate, error)

	// Validate runs the rule checks without touching the store, for
	// preview flows. Returns nil or a *ImportError.
	Validate(doc *ImportDocument) error
}

type importService struct {
	templateRepo repository.TemplateRepository
	exerciseRepo repository.ExerciseRepository
	templates    TemplateService
}

// NewImportService creates a new import service.
func NewImportService(templateRepo repository.TemplateRepository, exerciseRepo repository.ExerciseRepository, templates TemplateService) ImportService {
	return &importService{
		templateRepo: templateRepo,
		exerciseRepo: exerciseRepo,
		templates:    templates,
	}
}

// resolveWeekday applies the day-identification rules: an explicit 1-7
// index wins, then a known name or abbreviation; anything else is a
// violation.
func resolveWeekday(day ImportDay, dayNumber int) (domain.Weekday, string) {
	if day.DayIndex != nil {
		weekday, ok := domain.WeekdayFromIndex(*day.DayIndex)
		if !ok {
			return 0, fmt.Sprintf("day %d: day index %d is out of range (1-7)", dayNumber, *day.DayIndex)
		}
		return weekday, ""
	}
	if day.DayName != nil {
		weekday, ok := domain.ParseWeekday(*day.DayName)
		if !ok {
			return 0, fmt.Sprintf("day %d: unrecognized day name %q", dayNumber, *day.DayName)
		}
		return weekday, ""
	}
	return 0, fmt.Sprintf("day %d: a day index or day name is required", dayNumber)
}

// decodeImportDocument unmarshals the raw payload and checks that every
// required key is present. Both failure modes are structural and wrap
// ErrMalformedImportDocument; rule checks on present values belong to
// Validate.
func decodeImportDocument(raw []byte) (*ImportDocument, error) {
	var doc ImportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImportDocument, err)
	}

	if doc.Name == nil {
		return nil, fmt.Errorf("%w: missing required key %q", ErrMalformedImportDocument, "name")
	}
	if doc.Days == nil {
		return nil, fmt.Errorf("%w: missing required key %q", ErrMalformedImportDocument, "days")
	}
	for i, day := range doc.Days {
		if day.Exercises == nil {
			return nil, fmt.Errorf("%w: day %d: missing required key %q", ErrMalformedImportDocument, i+1, "exercises")
		}
		for j, exercise := range day.Exercises {
			where := fmt.Sprintf("day %d, exercise %d", i+1, j+1)
			switch {
			case exercise.Name == nil:
				return nil, fmt.Errorf("%w: %s: missing required key %q", ErrMalformedImportDocument, where, "name")
			case exercise.Sets == nil:
				return nil, fmt.Errorf("%w: %s: missing required key %q", ErrMalformedImportDocument, where, "sets")
			case exercise.Reps == nil:
				return nil, fmt.Errorf("%w: %s: missing required key %q", ErrMalformedImportDocument, where, "reps")
			}
		}
	}
	return &doc, nil
}

func (s *importService) Validate(doc *ImportDocument) error {
	var violations []string

	var trimmedName string
	if doc.Name != nil {
		trimmedName = domain.NormalizeTemplateName(*doc.Name)
	}
	if trimmedName == "" {
		violations = append(violations, "template name is required")
	} else if len(trimmedName) > domain.MaxTemplateNameLength {
		violations = append(violations, "template name cannot exceed 100 characters")
	}

	if len(doc.Days) == 0 {
		violations = append(violations, "at least one day is required")
	}

	for i, day := range doc.Days {
		dayNumber := i + 1
		if _, violation := resolveWeekday(day, dayNumber); violation != "" {
			violations = append(violations, violation)
		}
		if len(day.Exercises) == 0 {
			violations = append(violations, fmt.Sprintf("day %d: at least one exercise is required", dayNumber))
		}
		for j, exercise := range day.Exercises {
			where := fmt.Sprintf("day %d, exercise %d", dayNumber, j+1)
			if exercise.Name == nil || strings.TrimSpace(*exercise.Name) == "" {
				violations = append(violations, where+": exercise name is required")
			}
			if exercise.Sets == nil || !domain.IsValidSetCount(*exercise.Sets) {
				violations = append(violations, where+": sets must be at least 1")
			}
			if exercise.Reps == nil || !domain.IsValidReps(*exercise.Reps) {
				violations = append(violations, where+": reps must be at least 1")
			}
			if !domain.IsValidWeight(exercise.Weight) {
				violations = append(violations, where+": weight cannot be negative")
			}
		}
	}

	if len(violations) > 0 {
		return &ImportError{Violations: violations}
	}
	return nil
}

func (s *importService) Import(ctx context.Context, ownerID uuid.UUID, raw []byte) (*domain.WorkoutTemplate, error) {
	doc, err := decodeImportDocument(raw)
	if err != nil {
		return nil, err
	}

	if err := s.Validate(doc); err != nil {
		return nil, err
	}

	// Imported templates never fail on a name collision; they take the
	// first free suffixed variant instead.
	name, err := s.templates.SuggestAvailableName(ctx, ownerID, *doc.Name)
	if err != nil {
		return nil, err
	}

	template := domain.NewWorkoutTemplate(ownerID, name, doc.Summary)
	for _, importDay := range doc.Days {
		weekday, _ := resolveWeekday(importDay, 0)
		day := template.AddDay(domain.DayTemplate{
			Weekday: weekday,
			Notes:   importDay.Name,
		})

		// Distinct superset labels of a day map to fresh group IDs.
		groups := make(map[string]uuid.UUID)
		for j, importExercise := range importDay.Exercises {
			exercise, err := s.resolveExercise(ctx, ownerID, *importExercise.Name)
			if err != nil {
				return nil, err
			}

			var groupID *uuid.UUID
			if importExercise.SupersetGroup != nil && *importExercise.SupersetGroup != "" {
				id, ok := groups[*importExercise.SupersetGroup]
				if !ok {
					id = uuid.New()
					groups[*importExercise.SupersetGroup] = id
				}
				groupID = &id
			}

			day.AddExercise(domain.ExerciseTemplate{
				ExerciseID:      exercise.ID,
				SetCount:        *importExercise.Sets,
				Reps:            *importExercise.Reps,
				Weight:          importExercise.Weight,
				Position:        float64(j + 1),
				SupersetGroupID: groupID,
			})
		}
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"template": template.ID, "name": template.Name, "days": len(template.Days)}).Info("template imported")
	return template, nil
}

// resolveExercise reuses an existing catalog entry by case-insensitive name
// or creates a fresh one for names the catalog has never seen.
func (s *importService) resolveExercise(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Exercise, error) {
	name = strings.TrimSpace(name)
	exercise, err := s.exerciseRepo.GetByName(ctx, ownerID, name)
	if err == nil {
		return exercise, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	exercise = domain.NewExercise(ownerID, name, domain.CategoryOther, "")
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}
