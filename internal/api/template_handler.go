package api

import (
	"net/http"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TemplateHandler handles workout template endpoints, including the owned
// days and planned exercises and the import surface.
type TemplateHandler struct {
	templateService service.TemplateService
	importService   service.ImportService
}

// NewTemplateHandler creates a new template handler.
func NewTemplateHandler(templateService service.TemplateService, importService service.ImportService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		importService:   importService,
	}
}

type createTemplateRequest struct {
	Name    string `json:"name" binding:"required"`
	Summary string `json:"summary"`
}

type renameTemplateRequest struct {
	Name string `json:"name" binding:"required"`
}

type templateSummaryRequest struct {
	Summary string `json:"summary"`
}

type dayRequest struct {
	Weekday   string `json:"weekday" binding:"required"`
	IsRestDay bool   `json:"isRestDay"`
	Notes     string `json:"notes"`
}

type exerciseTemplateRequest struct {
	ExerciseID      uuid.UUID  `json:"exerciseId" binding:"required"`
	Sets            int        `json:"sets"`
	Reps            int        `json:"reps"`
	Weight          *float64   `json:"weight"`
	Position        float64    `json:"position"`
	SupersetGroupID *uuid.UUID `json:"supersetGroupId"`
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), owner, req.Name, req.Summary)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), owner, templateID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	templates, err := h.templateService.ListTemplates(c.Request.Context(), owner)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) RenameTemplate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}
	var req renameTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	template, err := h.templateService.RenameTemplate(c.Request.Context(), owner, templateID, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) UpdateSummary(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}
	var req templateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	template, err := h.templateService.UpdateSummary(c.Request.Context(), owner, templateID, req.Summary)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

// DeleteTemplate removes the template with its full owned subtree.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), owner, templateID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SuggestAvailableName returns the first free suffixed variant of ?name=.
func (h *TemplateHandler) SuggestAvailableName(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	desired := c.Query("name")

	name, err := h.templateService.SuggestAvailableName(c.Request.Context(), owner, desired)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name})
}

// ImportTemplate accepts a raw import document in the request body.
func (h *TemplateHandler) ImportTemplate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	raw, err := c.GetRawData()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	template, err := h.importService.Import(c.Request.Context(), owner, raw)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

func (h *TemplateHandler) dayInput(c *gin.Context) (service.DayInput, bool) {
	var req dayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return service.DayInput{}, false
	}
	weekday, ok := domain.ParseWeekday(req.Weekday)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "unrecognized weekday")
		return service.DayInput{}, false
	}
	return service.DayInput{
		Weekday:   weekday,
		IsRestDay: req.IsRestDay,
		Notes:     req.Notes,
	}, true
}

func (h *TemplateHandler) AddDay(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}
	input, ok := h.dayInput(c)
	if !ok {
		return
	}

	day, err := h.templateService.AddDay(c.Request.Context(), owner, templateID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, day)
}

func (h *TemplateHandler) UpdateDay(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}
	dayID, ok := pathID(c, "dayId")
	if !ok {
		return
	}
	input, ok := h.dayInput(c)
	if !ok {
		return
	}

	day, err := h.templateService.UpdateDay(c.Request.Context(), owner, templateID, dayID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *TemplateHandler) RemoveDay(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}
	dayID, ok := pathID(c, "dayId")
	if !ok {
		return
	}

	if err := h.templateService.RemoveDay(c.Request.Context(), owner, templateID, dayID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func exerciseTemplateInput(req exerciseTemplateRequest) service.ExerciseTemplateInput {
	return service.ExerciseTemplateInput{
		ExerciseID:      req.ExerciseID,
		SetCount:        req.Sets,
		Reps:            req.Reps,
		Weight:          req.Weight,
		Position:        req.Position,
		SupersetGroupID: req.SupersetGroupID,
	}
}

func (h *TemplateHandler) AddExerciseTemplate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}
	dayID, ok := pathID(c, "dayId")
	if !ok {
		return
	}
	var req exerciseTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	et, err := h.templateService.AddExerciseTemplate(c.Request.Context(), owner, templateID, dayID, exerciseTemplateInput(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, et)
}

func (h *TemplateHandler) UpdateExerciseTemplate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}
	dayID, ok := pathID(c, "dayId")
	if !ok {
		return
	}
	exerciseTemplateID, ok := pathID(c, "exerciseTemplateId")
	if !ok {
		return
	}
	var req exerciseTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	et, err := h.templateService.UpdateExerciseTemplate(c.Request.Context(), owner, templateID, dayID, exerciseTemplateID, exerciseTemplateInput(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, et)
}

func (h *TemplateHandler) RemoveExerciseTemplate(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}
	dayID, ok := pathID(c, "dayId")
	if !ok {
		return
	}
	exerciseTemplateID, ok := pathID(c, "exerciseTemplateId")
	if !ok {
		return
	}

	if err := h.templateService.RemoveExerciseTemplate(c.Request.Context(), owner, templateID, dayID, exerciseTemplateID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
