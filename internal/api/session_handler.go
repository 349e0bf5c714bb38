package api

import (
	"net/http"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler handles workout session endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type createSessionRequest struct {
	Title  string     `json:"title" binding:"required"`
	Date   time.Time  `json:"date"`
	PlanID *uuid.UUID `json:"planId"`
}

type startFromPlanRequest struct {
	PlanID  uuid.UUID `json:"planId" binding:"required"`
	Weekday string    `json:"weekday" binding:"required"`
	Date    time.Time `json:"date"`
}

type sessionExerciseRequest struct {
	ExerciseID      uuid.UUID  `json:"exerciseId" binding:"required"`
	Sets            *int       `json:"sets"`
	Reps            *int       `json:"reps"`
	Weight          *float64   `json:"weight"`
	Position        float64    `json:"position"`
	SupersetGroupID *uuid.UUID `json:"supersetGroupId"`
	// Auto-population from the last-used snapshot is on unless the client
	// opts out.
	DisableAutoPopulate bool `json:"disableAutoPopulate"`
}

type updateSessionExerciseRequest struct {
	PlannedSets   int      `json:"plannedSets"`
	PlannedReps   int      `json:"plannedReps"`
	PlannedWeight *float64 `json:"plannedWeight"`
}

type completedSetRequest struct {
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	Position    float64 `json:"position"`
	IsCompleted bool    `json:"isCompleted"`
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), owner, req.Title, req.Date, req.PlanID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// StartFromPlan instantiates the plan's template day for the given weekday.
func (h *SessionHandler) StartFromPlan(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req startFromPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	weekday, ok := domain.ParseWeekday(req.Weekday)
	if !ok {
		abortWithError(c, http.StatusBadRequest, "unrecognized weekday")
		return
	}

	session, err := h.sessionService.StartFromPlan(c.Request.Context(), owner, req.PlanID, weekday, req.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), owner, sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), owner)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// DeleteSession removes the session with its full owned subtree.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), owner, sessionID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SessionVolume returns the bottom-up total volume of the session.
func (h *SessionHandler) SessionVolume(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	volume, err := h.sessionService.SessionVolume(c.Request.Context(), owner, sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalVolume": volume})
}

func (h *SessionHandler) AddSessionExercise(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}
	var req sessionExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	se, err := h.sessionService.AddSessionExercise(c.Request.Context(), owner, sessionID, service.SessionExerciseInput{
		ExerciseID:          req.ExerciseID,
		Sets:                req.Sets,
		Reps:                req.Reps,
		Weight:              req.Weight,
		Position:            req.Position,
		SupersetGroupID:     req.SupersetGroupID,
		DisableAutoPopulate: req.DisableAutoPopulate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, se)
}

func (h *SessionHandler) UpdateSessionExercise(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}
	sessionExerciseID, ok := pathID(c, "sessionExerciseId")
	if !ok {
		return
	}
	var req updateSessionExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	se, err := h.sessionService.UpdateSessionExercise(c.Request.Context(), owner, sessionID, sessionExerciseID, req.PlannedSets, req.PlannedReps, req.PlannedWeight)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, se)
}

func (h *SessionHandler) RemoveSessionExercise(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}
	sessionExerciseID, ok := pathID(c, "sessionExerciseId")
	if !ok {
		return
	}

	if err := h.sessionService.RemoveSessionExercise(c.Request.Context(), owner, sessionID, sessionExerciseID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CompleteSessionExercise flags the exercise done and refreshes the catalog
// entry's last-used snapshot.
func (h *SessionHandler) CompleteSessionExercise(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}
	sessionExerciseID, ok := pathID(c, "sessionExerciseId")
	if !ok {
		return
	}

	se, err := h.sessionService.CompleteSessionExercise(c.Request.Context(), owner, sessionID, sessionExerciseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, se)
}

func (h *SessionHandler) AddCompletedSet(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}
	sessionExerciseID, ok := pathID(c, "sessionExerciseId")
	if !ok {
		return
	}
	var req completedSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	set, err := h.sessionService.AddCompletedSet(c.Request.Context(), owner, sessionID, sessionExerciseID, service.CompletedSetInput{
		Reps:        req.Reps,
		Weight:      req.Weight,
		Position:    req.Position,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, set)
}

func (h *SessionHandler) RemoveCompletedSet(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}
	sessionExerciseID, ok := pathID(c, "sessionExerciseId")
	if !ok {
		return
	}
	setID, ok := pathID(c, "setId")
	if !ok {
		return
	}

	if err := h.sessionService.RemoveCompletedSet(c.Request.Context(), owner, sessionID, sessionExerciseID, setID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
