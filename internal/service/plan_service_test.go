package service

import (
	"context"
	"testing"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"
	"liftlog/workout-app/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanFixture(t *testing.T) (PlanService, repository.TemplateRepository, uuid.UUID) {
	t.Helper()
	planRepo := memory.NewPlanRepository()
	templateRepo := memory.NewTemplateRepository()
	return NewPlanService(planRepo, templateRepo), templateRepo, uuid.New()
}

func createPlanTemplate(t *testing.T, templateRepo repository.TemplateRepository, owner uuid.UUID, name string) *domain.WorkoutTemplate {
	t.Helper()
	template := domain.NewWorkoutTemplate(owner, name, "")
	require.NoError(t, templateRepo.Create(context.Background(), template))
	return template
}

func TestCreatePlanDerivesEndDate(t *testing.T) {
	svc, templateRepo, owner := newPlanFixture(t)
	ctx := context.Background()
	template := createPlanTemplate(t, templateRepo, owner, "Base")

	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	plan, err := svc.CreatePlan(ctx, owner, template.ID, "Fall Block", 8, start)
	require.NoError(t, err)

	require.NotNil(t, plan.EndDate)
	assert.Equal(t, start.AddDate(0, 0, 56), *plan.EndDate)
	assert.False(t, plan.IsActive, "plans start inactive")

	openEnded, err := svc.CreatePlan(ctx, owner, template.ID, "Open", 0, start)
	require.NoError(t, err)
	assert.Nil(t, openEnded.EndDate)
}

func TestCreatePlanRequiresOwnedTemplate(t *testing.T) {
	svc, templateRepo, owner := newPlanFixture(t)
	ctx := context.Background()
	template := createPlanTemplate(t, templateRepo, uuid.New(), "Not Mine")

	_, err := svc.CreatePlan(ctx, owner, template.ID, "Plan", 4, time.Now().UTC())
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestActivatePlanDeactivatesSiblings(t *testing.T) {
	svc, templateRepo, owner := newPlanFixture(t)
	ctx := context.Background()
	template := createPlanTemplate(t, templateRepo, owner, "Base")

	first, err := svc.CreatePlan(ctx, owner, template.ID, "First", 4, time.Now().UTC())
	require.NoError(t, err)
	second, err := svc.CreatePlan(ctx, owner, template.ID, "Second", 4, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.ActivatePlan(ctx, owner, first.ID)
	require.NoError(t, err)
	activated, err := svc.ActivatePlan(ctx, owner, second.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	plans, err := svc.ListPlans(ctx, owner)
	require.NoError(t, err)
	activeCount := 0
	for _, p := range plans {
		if p.IsActive {
			activeCount++
			assert.Equal(t, second.ID, p.ID)
		}
	}
	assert.Equal(t, 1, activeCount, "at most one plan per owner is active")
}

func TestActivatePlanDoesNotTouchOtherOwners(t *testing.T) {
	svc, templateRepo, owner := newPlanFixture(t)
	ctx := context.Background()

	otherOwner := uuid.New()
	otherTemplate := createPlanTemplate(t, templateRepo, otherOwner, "Other Base")
	otherPlan, err := svc.CreatePlan(ctx, otherOwner, otherTemplate.ID, "Other", 4, time.Now().UTC())
	require.NoError(t, err)
	_, err = svc.ActivatePlan(ctx, otherOwner, otherPlan.ID)
	require.NoError(t, err)

	template := createPlanTemplate(t, templateRepo, owner, "Base")
	plan, err := svc.CreatePlan(ctx, owner, template.ID, "Mine", 4, time.Now().UTC())
	require.NoError(t, err)
	_, err = svc.ActivatePlan(ctx, owner, plan.ID)
	require.NoError(t, err)

	stored, err := svc.GetPlan(ctx, otherOwner, otherPlan.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive, "activation is scoped to the activating owner")
}

func TestDeactivatePlan(t *testing.T) {
	svc, templateRepo, owner := newPlanFixture(t)
	ctx := context.Background()
	template := createPlanTemplate(t, templateRepo, owner, "Base")

	plan, err := svc.CreatePlan(ctx, owner, template.ID, "Plan", 4, time.Now().UTC())
	require.NoError(t, err)
	_, err = svc.ActivatePlan(ctx, owner, plan.ID)
	require.NoError(t, err)

	deactivated, err := svc.DeactivatePlan(ctx, owner, plan.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
}

func TestUpdatePlanRederivesEndDate(t *testing.T) {
	svc, templateRepo, owner := newPlanFixture(t)
	ctx := context.Background()
	template := createPlanTemplate(t, templateRepo, owner, "Base")

	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	plan, err := svc.CreatePlan(ctx, owner, template.ID, "Plan", 4, start)
	require.NoError(t, err)

	updated, err := svc.UpdatePlan(ctx, owner, plan.ID, "Plan", 12, start)
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, start.AddDate(0, 0, 84), *updated.EndDate)

	updated, err = svc.UpdatePlan(ctx, owner, plan.ID, "Plan", 0, start)
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
}

func TestDeletePlanLeavesTemplateIntact(t *testing.T) {
	svc, templateRepo, owner := newPlanFixture(t)
	ctx := context.Background()
	template := createPlanTemplate(t, templateRepo, owner, "Base")

	plan, err := svc.CreatePlan(ctx, owner, template.ID, "Plan", 4, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, svc.DeletePlan(ctx, owner, plan.ID))

	_, err = svc.GetPlan(ctx, owner, plan.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)
	_, err = templateRepo.GetByID(ctx, template.ID)
	assert.NoError(t, err, "plan deletion never cascades into the template")
}
