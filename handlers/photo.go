package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	photoRepo "venuely/database/repository/photo"
	"venuely/models"
	"venuely/services/storage"
	"venuely/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxPhotoSize  = 10 << 20 // 10 MB
	uploadsFolder = "venuely/photos"
)

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// PhotoHandler manages the venue photo gallery. Listing is public; upload
// and delete are admin operations.
type PhotoHandler struct {
	Repo    photoRepo.PhotoRepository
	Storage storage.StorageService
}

func NewPhotoHandler(repo photoRepo.PhotoRepository, st storage.StorageService) *PhotoHandler {
	return &PhotoHandler{Repo: repo, Storage: st}
}

// UploadPhotoHandler accepts a multipart upload, pushes the file to remote
// storage and records the photo document.
func (h *PhotoHandler) UploadPhotoHandler(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing photo file")
		return
	}
	if file.Size > maxPhotoSize {
		utils.JSONError(c, http.StatusBadRequest, "Photo exceeds the 10MB limit")
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		utils.JSONError(c, http.StatusBadRequest, "Unsupported image type")
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+ext)
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.GetLogger().Error("failed to buffer upload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process upload")
		return
	}
	defer os.Remove(tmpPath)

	publicID, url, err := h.Storage.Upload(c.Request.Context(), tmpPath, uploadsFolder)
	if err != nil {
		utils.GetLogger().Error("photo upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store photo")
		return
	}

	photo := &models.Photo{
		ID:         uuid.New().String(),
		BookingRef: c.PostForm("bookingRef"),
		Caption:    c.PostForm("caption"),
		Category:   c.PostForm("category"),
		URL:        url,
		PublicID:   publicID,
	}
	if uploadedBy, ok := c.Get("userID"); ok {
		photo.UploadedBy, _ = uploadedBy.(string)
	}

	if err := h.Repo.Create(photo); err != nil {
		// Try not to leave an orphaned remote file behind.
		if delErr := h.Storage.Delete(c.Request.Context(), publicID); delErr != nil {
			utils.GetLogger().Warn("failed to clean up orphaned upload",
				zap.String("publicId", publicID), zap.Error(delErr))
		}
		utils.GetLogger().Error("failed to record photo", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// ListPhotosHandler returns the gallery, optionally filtered by category or
// booking reference.
func (h *PhotoHandler) ListPhotosHandler(c *gin.Context) {
	var (
		photos []models.Photo
		err    error
	)
	if ref := c.Query("bookingRef"); ref != "" {
		photos, err = h.Repo.GetByBookingRef(ref)
	} else {
		photos, err = h.Repo.GetAll(c.Query("category"))
	}
	if err != nil {
		utils.GetLogger().Error("failed to list photos", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos, "count": len(photos)})
}

// DeletePhotoHandler removes a photo. A failed remote delete is logged but
// does not keep the document around.
func (h *PhotoHandler) DeletePhotoHandler(c *gin.Context) {
	id := c.Param("id")
	photo, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, photoRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Photo not found")
			return
		}
		utils.GetLogger().Error("failed to fetch photo", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch photo")
		return
	}

	if err := h.Storage.Delete(c.Request.Context(), photo.PublicID); err != nil {
		utils.GetLogger().Warn("remote photo delete failed",
			zap.String("publicId", photo.PublicID), zap.Error(err))
	}

	if err := h.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("failed to delete photo", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
}
