package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers into the router. Everything except
// registration, login and the ping probe sits behind the JWT middleware.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authHandler *AuthHandler,
	exerciseHandler *ExerciseHandler,
	templateHandler *TemplateHandler,
	planHandler *PlanHandler,
	sessionHandler *SessionHandler,
	photoHandler *PhotoHandler,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(AuthMiddleware(jwtSecret))

	exercises := protected.Group("/exercises")
	{
		exercises.POST("", exerciseHandler.CreateExercise)
		exercises.GET("", exerciseHandler.ListExercises)
		exercises.GET("/:exerciseId", exerciseHandler.GetExercise)
		exercises.PUT("/:exerciseId", exerciseHandler.UpdateExercise)
		exercises.DELETE("/:exerciseId", exerciseHandler.DeleteExercise)
		exercises.GET("/:exerciseId/starting-values", exerciseHandler.SuggestedStartingValues)
	}

	templates := protected.Group("/templates")
	{
		templates.POST("", templateHandler.CreateTemplate)
		templates.GET("", templateHandler.ListTemplates)
		templates.POST("/import", templateHandler.ImportTemplate)
		templates.GET("/suggest-name", templateHandler.SuggestAvailableName)
		templates.GET("/:templateId", templateHandler.GetTemplate)
		templates.PUT("/:templateId/name", templateHandler.RenameTemplate)
		templates.PUT("/:templateId/summary", templateHandler.UpdateSummary)
		templates.DELETE("/:templateId", templateHandler.DeleteTemplate)

		templates.POST("/:templateId/days", templateHandler.AddDay)
		templates.PUT("/:templateId/days/:dayId", templateHandler.UpdateDay)
		templates.DELETE("/:templateId/days/:dayId", templateHandler.RemoveDay)

		templates.POST("/:templateId/days/:dayId/exercises", templateHandler.AddExerciseTemplate)
		templates.PUT("/:templateId/days/:dayId/exercises/:exerciseTemplateId", templateHandler.UpdateExerciseTemplate)
		templates.DELETE("/:templateId/days/:dayId/exercises/:exerciseTemplateId", templateHandler.RemoveExerciseTemplate)
	}

	plans := protected.Group("/plans")
	{
		plans.POST("", planHandler.CreatePlan)
		plans.GET("", planHandler.ListPlans)
		plans.GET("/:planId", planHandler.GetPlan)
		plans.PUT("/:planId", planHandler.UpdatePlan)
		plans.POST("/:planId/activate", planHandler.ActivatePlan)
		plans.POST("/:planId/deactivate", planHandler.DeactivatePlan)
		plans.DELETE("/:planId", planHandler.DeletePlan)
	}

	sessions := protected.Group("/sessions")
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.POST("/from-plan", sessionHandler.StartFromPlan)
		sessions.GET("", sessionHandler.ListSessions)
		sessions.GET("/:sessionId", sessionHandler.GetSession)
		sessions.DELETE("/:sessionId", sessionHandler.DeleteSession)
		sessions.GET("/:sessionId/volume", sessionHandler.SessionVolume)

		sessions.POST("/:sessionId/exercises", sessionHandler.AddSessionExercise)
		sessions.PUT("/:sessionId/exercises/:sessionExerciseId", sessionHandler.UpdateSessionExercise)
		sessions.DELETE("/:sessionId/exercises/:sessionExerciseId", sessionHandler.RemoveSessionExercise)
		sessions.POST("/:sessionId/exercises/:sessionExerciseId/complete", sessionHandler.CompleteSessionExercise)

		sessions.POST("/:sessionId/exercises/:sessionExerciseId/sets", sessionHandler.AddCompletedSet)
		sessions.DELETE("/:sessionId/exercises/:sessionExerciseId/sets/:setId", sessionHandler.RemoveCompletedSet)
	}

	photos := protected.Group("/photos")
	{
		photos.POST("", photoHandler.CreatePhoto)
		photos.GET("", photoHandler.ListPhotos)
		photos.GET("/:photoId", photoHandler.GetPhoto)
		photos.PUT("/:photoId", photoHandler.UpdatePhoto)
		photos.DELETE("/:photoId", photoHandler.DeletePhoto)
		photos.GET("/:photoId/download-url", photoHandler.DownloadURL)
	}
}
