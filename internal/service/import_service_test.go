package service

import (
	"context"
	"testing"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"
	"liftlog/workout-app/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportFixture(t *testing.T) (ImportService, TemplateService, repository.ExerciseRepository, uuid.UUID) {
	t.Helper()
	templateRepo := memory.NewTemplateRepository()
	exerciseRepo := memory.NewExerciseRepository()
	templates := NewTemplateService(templateRepo, exerciseRepo)
	return NewImportService(templateRepo, exerciseRepo, templates), templates, exerciseRepo, uuid.New()
}

const validImportDoc = `{
	"name": "Imported PPL",
	"summary": "three day split",
	"days": [
		{
			"dayIndex": 2,
			"name": "Push",
			"exercises": [
				{"name": "Bench Press", "sets": 3, "reps": 8, "weight": 80},
				{"name": "Dips", "sets": 3, "reps": 12}
			]
		},
		{
			"dayName": "wed",
			"name": "Pull",
			"exercises": [
				{"name": "Row", "sets": 4, "reps": 10, "supersetGroup": "A"},
				{"name": "Curl", "sets": 4, "reps": 10, "supersetGroup": "A"}
			]
		}
	]
}`

func TestImportMaterializesTemplate(t *testing.T) {
	svc, _, exerciseRepo, owner := newImportFixture(t)
	ctx := context.Background()

	template, err := svc.Import(ctx, owner, []byte(validImportDoc))
	require.NoError(t, err)

	assert.Equal(t, "Imported PPL", template.Name)
	require.Len(t, template.Days, 2)
	assert.Equal(t, domain.Monday, template.Days[0].Weekday, "day index 2 is Monday in the Sunday-first convention")
	assert.Equal(t, domain.Wednesday, template.Days[1].Weekday)

	// Superset labels map to one shared group ID per day.
	pull := template.Days[1]
	require.Len(t, pull.Exercises, 2)
	require.NotNil(t, pull.Exercises[0].SupersetGroupID)
	require.NotNil(t, pull.Exercises[1].SupersetGroupID)
	assert.Equal(t, *pull.Exercises[0].SupersetGroupID, *pull.Exercises[1].SupersetGroupID)

	// Unknown exercise names became catalog entries.
	bench, err := exerciseRepo.GetByName(ctx, owner, "Bench Press")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, bench.Category)
}

func TestImportReusesExistingCatalogEntries(t *testing.T) {
	svc, _, exerciseRepo, owner := newImportFixture(t)
	ctx := context.Background()

	existing := domain.NewExercise(owner, "Bench Press", domain.CategoryStrength, "bar to chest")
	require.NoError(t, exerciseRepo.Create(ctx, existing))

	template, err := svc.Import(ctx, owner, []byte(validImportDoc))
	require.NoError(t, err)

	assert.Equal(t, existing.ID, template.Days[0].Exercises[0].ExerciseID, "matching is by case-insensitive name")
	all, err := exerciseRepo.GetByOwnerID(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, all, 4, "one reused plus three created")
}

func TestImportSuffixesCollidingName(t *testing.T) {
	svc, templates, _, owner := newImportFixture(t)
	ctx := context.Background()

	_, err := templates.CreateTemplate(ctx, owner, "Imported PPL", "")
	require.NoError(t, err)

	template, err := svc.Import(ctx, owner, []byte(validImportDoc))
	require.NoError(t, err)
	assert.Equal(t, "Imported PPL 2", template.Name, "imports never fail on a name collision")
}

func TestImportRejectsMalformedDocument(t *testing.T) {
	svc, _, _, owner := newImportFixture(t)

	_, err := svc.Import(context.Background(), owner, []byte(`{"name": 42`))
	assert.ErrorIs(t, err, ErrMalformedImportDocument)

	_, err = svc.Import(context.Background(), owner, []byte(`{"name": 42}`))
	assert.ErrorIs(t, err, ErrMalformedImportDocument, "type mismatches are structural failures, not rule violations")
}

func TestImportRejectsDocumentsWithMissingRequiredKeys(t *testing.T) {
	svc, _, _, owner := newImportFixture(t)
	ctx := context.Background()

	cases := map[string]string{
		"no template name":   `{"summary": "nameless"}`,
		"no days key":        `{"name": "Keyless"}`,
		"no exercises key":   `{"name": "Keyless", "days": [{"dayIndex": 1}]}`,
		"exercise sans name": `{"name": "Keyless", "days": [{"dayIndex": 1, "exercises": [{"sets": 3, "reps": 8}]}]}`,
		"exercise sans sets": `{"name": "Keyless", "days": [{"dayIndex": 1, "exercises": [{"name": "Bench", "reps": 8}]}]}`,
		"exercise sans reps": `{"name": "Keyless", "days": [{"dayIndex": 1, "exercises": [{"name": "Bench", "sets": 3}]}]}`,
	}
	for label, doc := range cases {
		_, err := svc.Import(ctx, owner, []byte(doc))
		assert.ErrorIs(t, err, ErrMalformedImportDocument, label)
		var iErr *ImportError
		assert.NotErrorAs(t, err, &iErr, "absent keys are structural, not rule violations: "+label)
	}

	// An empty value for a present key stays a rule violation.
	_, err := svc.Import(ctx, owner, []byte(`{"name": "", "days": []}`))
	var iErr *ImportError
	require.ErrorAs(t, err, &iErr)
}

func TestImportCollectsAllViolations(t *testing.T) {
	svc, _, _, owner := newImportFixture(t)

	doc := `{
		"name": "",
		"days": [
			{"dayIndex": 8, "exercises": [{"name": "Bench", "sets": 0, "reps": -1}]},
			{"name": "no weekday", "exercises": []}
		]
	}`
	_, err := svc.Import(context.Background(), owner, []byte(doc))

	var iErr *ImportError
	require.ErrorAs(t, err, &iErr)
	assert.Len(t, iErr.Violations, 6)
	assert.Contains(t, iErr.Violations, "template name is required")
	assert.Contains(t, iErr.Violations, "day 2: at least one exercise is required")
	assert.Contains(t, iErr.Violations, "day 1: day index 8 is out of range (1-7)")
	assert.Contains(t, iErr.Violations, "day 1, exercise 1: sets must be at least 1")
	assert.Contains(t, iErr.Violations, "day 1, exercise 1: reps must be at least 1")
	assert.Contains(t, iErr.Violations, "day 2: a day index or day name is required")
}

func TestImportRequiresAtLeastOneDay(t *testing.T) {
	svc, _, _, owner := newImportFixture(t)

	_, err := svc.Import(context.Background(), owner, []byte(`{"name": "Empty", "days": []}`))
	var iErr *ImportError
	require.ErrorAs(t, err, &iErr)
	assert.Contains(t, iErr.Violations, "at least one day is required")
}

func TestValidateDoesNotTouchStore(t *testing.T) {
	svc, templates, _, owner := newImportFixture(t)
	ctx := context.Background()

	index, name, exName, sets, reps := 1, "Preview", "Plank", 3, 1
	doc := &ImportDocument{
		Name: &name,
		Days: []ImportDay{{
			DayIndex:  &index,
			Exercises: []ImportExercise{{Name: &exName, Sets: &sets, Reps: &reps}},
		}},
	}
	require.NoError(t, svc.Validate(doc))

	stored, err := templates.ListTemplates(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
