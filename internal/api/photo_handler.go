package api

import (
	"net/http"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PhotoHandler handles progress photo endpoints.
type PhotoHandler struct {
	photoService service.PhotoService
}

// NewPhotoHandler creates a new photo handler.
func NewPhotoHandler(photoService service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

type photoRequest struct {
	Date           time.Time `json:"date"`
	Angle          string    `json:"angle" binding:"required"`
	Notes          string    `json:"notes"`
	ManualWeight   *float64  `json:"manualWeight"`
	WeightSampleID *string   `json:"weightSampleId"`
	ContentType    string    `json:"contentType"`
}

func (r photoRequest) toInput() service.PhotoInput {
	return service.PhotoInput{
		Date:           r.Date,
		Angle:          domain.PhotoAngle(r.Angle),
		Notes:          r.Notes,
		ManualWeight:   r.ManualWeight,
		WeightSampleID: r.WeightSampleID,
		ContentType:    r.ContentType,
	}
}

func (h *PhotoHandler) CreatePhoto(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req photoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	upload, err := h.photoService.CreatePhoto(c.Request.Context(), owner, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, upload)
}

func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	photoID, ok := pathID(c, "photoId")
	if !ok {
		return
	}

	photo, err := h.photoService.GetPhoto(c.Request.Context(), owner, photoID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	photos, err := h.photoService.ListPhotos(c.Request.Context(), owner)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	photoID, ok := pathID(c, "photoId")
	if !ok {
		return
	}
	var req photoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	photo, err := h.photoService.UpdatePhoto(c.Request.Context(), owner, photoID, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	photoID, ok := pathID(c, "photoId")
	if !ok {
		return
	}

	if err := h.photoService.DeletePhoto(c.Request.Context(), owner, photoID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadURL returns a presigned URL serving the photo asset.
func (h *PhotoHandler) DownloadURL(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	photoID, ok := pathID(c, "photoId")
	if !ok {
		return
	}

	url, err := h.photoService.DownloadURL(c.Request.Context(), owner, photoID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}
