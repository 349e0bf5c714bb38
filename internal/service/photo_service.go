package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"
	"liftlog/workout-app/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrPhotoNotFound = errors.New("progress photo not found")
)

// PhotoUpload is returned when a photo record is created: the client PUTs
// the image bytes to UploadURL under the record's asset key.
type PhotoUpload struct {
	Photo     *domain.ProgressPhoto `json:"photo"`
	UploadURL string                `json:"uploadUrl"`
}

// PhotoInput carries the caller-supplied fields of a progress photo.
type PhotoInput struct {
	Date           time.Time
	Angle          domain.PhotoAngle
	Notes          string
	ManualWeight   *float64
	WeightSampleID *string
	ContentType    string
}

// PhotoService manages progress photo records and their stored assets.
// Photos have their own lifecycle, independent of the workout graph.
type PhotoService interface {
	CreatePhoto(ctx context.Context, ownerID uuid.UUID, input PhotoInput) (*PhotoUpload, error)
	GetPhoto(ctx context.Context, ownerID, photoID uuid.UUID) (*domain.ProgressPhoto, error)
	ListPhotos(ctx context.Context, ownerID uuid.UUID) ([]domain.ProgressPhoto, error)
	UpdatePhoto(ctx context.Context, ownerID, photoID uuid.UUID, input PhotoInput) (*domain.ProgressPhoto, error)
	// DeletePhoto removes the stored asset first, then the record: a
	// failed asset delete leaves the record (and retryability) intact.
	DeletePhoto(ctx context.Context, ownerID, photoID uuid.UUID) error
	DownloadURL(ctx context.Context, ownerID, photoID uuid.UUID) (string, error)
}

type photoService struct {
	photoRepo repository.PhotoRepository
	assets    storage.AssetStorage
}

// NewPhotoService creates a new progress photo service.
func NewPhotoService(photoRepo repository.PhotoRepository, assets storage.AssetStorage) PhotoService {
	return &photoService{photoRepo: photoRepo, assets: assets}
}

func validateAngle(angle domain.PhotoAngle) error {
	switch angle {
	case domain.AngleFront, domain.AngleSide, domain.AngleBack:
		return nil
	default:
		return domain.NewCustomValidationError("photo angle must be front, side or back")
	}
}

func validateManualWeight(weight *float64) error {
	if !domain.IsValidWeight(weight) {
		return domain.NewCustomValidationError("manual weight cannot be negative")
	}
	return nil
}

func (s *photoService) CreatePhoto(ctx context.Context, ownerID uuid.UUID, input PhotoInput) (*PhotoUpload, error) {
	if err := validateAngle(input.Angle); err != nil {
		return nil, err
	}
	if err := validateManualWeight(input.ManualWeight); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	photo := domain.NewProgressPhoto(ownerID, input.Date, input.Angle, "")
	photo.AssetKey = fmt.Sprintf("photos/%s/%s", ownerID, photo.ID)
	photo.Notes = input.Notes
	photo.ManualWeight = input.ManualWeight
	photo.WeightSampleID = input.WeightSampleID

	uploadURL, err := s.assets.GeneratePresignedUploadURL(ctx, photo.AssetKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, err
	}

	return &PhotoUpload{Photo: photo, UploadURL: uploadURL}, nil
}

func (s *photoService) GetPhoto(ctx context.Context, ownerID, photoID uuid.UUID) (*domain.ProgressPhoto, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	if photo.OwnerID != ownerID {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}

func (s *photoService) ListPhotos(ctx context.Context, ownerID uuid.UUID) ([]domain.ProgressPhoto, error) {
	return s.photoRepo.GetByOwnerID(ctx, ownerID)
}

func (s *photoService) UpdatePhoto(ctx context.Context, ownerID, photoID uuid.UUID, input PhotoInput) (*domain.ProgressPhoto, error) {
	if err := validateAngle(input.Angle); err != nil {
		return nil, err
	}
	if err := validateManualWeight(input.ManualWeight); err != nil {
		return nil, err
	}

	photo, err := s.GetPhoto(ctx, ownerID, photoID)
	if err != nil {
		return nil, err
	}

	if !input.Date.IsZero() {
		photo.Date = input.Date
	}
	photo.Angle = input.Angle
	photo.Notes = input.Notes
	photo.ManualWeight = input.ManualWeight
	photo.WeightSampleID = input.WeightSampleID

	if err := s.photoRepo.Update(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *photoService) DeletePhoto(ctx context.Context, ownerID, photoID uuid.UUID) error {
	photo, err := s.GetPhoto(ctx, ownerID, photoID)
	if err != nil {
		return err
	}

	if err := s.assets.DeleteObject(ctx, photo.AssetKey); err != nil {
		log.WithError(err).WithField("photo", photoID).Error("failed to delete photo asset")
		return err
	}
	return s.photoRepo.Delete(ctx, photoID, ownerID)
}

func (s *photoService) DownloadURL(ctx context.Context, ownerID, photoID uuid.UUID) (string, error) {
	photo, err := s.GetPhoto(ctx, ownerID, photoID)
	if err != nil {
		return "", err
	}
	return s.assets.GeneratePresignedDownloadURL(ctx, photo.AssetKey, storage.DefaultPresignedURLExpiry)
}
