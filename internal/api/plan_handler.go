package api

import (
	"net/http"
	"time"

	"liftlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanHandler handles workout plan endpoints.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

type createPlanRequest struct {
	TemplateID    uuid.UUID `json:"templateId" binding:"required"`
	Name          string    `json:"name" binding:"required"`
	DurationWeeks int       `json:"durationWeeks"`
	StartDate     time.Time `json:"startDate"`
}

type updatePlanRequest struct {
	Name          string    `json:"name" binding:"required"`
	DurationWeeks int       `json:"durationWeeks"`
	StartDate     time.Time `json:"startDate"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), owner, req.TemplateID, req.Name, req.DurationWeeks, req.StartDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	planID, ok := pathID(c, "planId")
	if !ok {
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), owner, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), owner)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	planID, ok := pathID(c, "planId")
	if !ok {
		return
	}
	var req updatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), owner, planID, req.Name, req.DurationWeeks, req.StartDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) ActivatePlan(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	planID, ok := pathID(c, "planId")
	if !ok {
		return
	}

	plan, err := h.planService.ActivatePlan(c.Request.Context(), owner, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeactivatePlan(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	planID, ok := pathID(c, "planId")
	if !ok {
		return
	}

	plan, err := h.planService.DeactivatePlan(c.Request.Context(), owner, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	planID, ok := pathID(c, "planId")
	if !ok {
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), owner, planID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
