// internal/handlers/inspections.go
package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/M00N69/supainspection/internal/inspection"
	"github.com/M00N69/supainspection/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InspectionStore is the persistence surface the inspection handlers need:
// the session store plus the per-user history listing.
type InspectionStore interface {
	inspection.Store
	ListByUser(ctx context.Context, userID uint) ([]models.Inspection, error)
}

// PhotoUploader stores checkpoint photos and serves links back.
type PhotoUploader interface {
	UploadPhotoFile(ctx context.Context, inspectionID uint, filename, filePath string) (string, error)
	PresignedPhotoURL(ctx context.Context, photoURL string) (string, error)
}

type StartInspectionRequest struct {
	Checklist string `json:"checklist" binding:"required"`
}

func ListChecklists(catalog inspection.Catalog, logg *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := catalog.Checklists(c.Request.Context())
		if err != nil {
			logg.WithFields(logrus.Fields{"handler": "ListChecklists"}).Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checklists"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"checklists": names})
	}
}

func StartInspection(catalog inspection.Catalog, store InspectionStore, logg *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		var req StartInspectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess := inspection.NewSession(nil, catalog, store)
		sess.Bind(&models.User{ID: userID})

		insp, err := sess.StartInspection(c.Request.Context(), req.Checklist)
		switch {
		case errors.Is(err, inspection.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Checklist name is required"})
			return
		case errors.Is(err, inspection.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No checkpoints found for this checklist"})
			return
		case err != nil:
			logg.WithFields(logrus.Fields{"handler": "StartInspection", "checklist": req.Checklist}).Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start inspection"})
			return
		}

		c.JSON(http.StatusCreated, insp)
	}
}

func GetInspection(store InspectionStore, photos PhotoUploader, logg *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inspection id"})
			return
		}

		sess := inspection.NewSession(nil, nil, store)
		sess.Bind(&models.User{ID: userID})
		sess.BindInspection(uint(id))

		insp, err := sess.LoadActiveInspection(c.Request.Context())
		if errors.Is(err, inspection.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inspection not found"})
			return
		}
		if err != nil {
			logg.WithFields(logrus.Fields{"handler": "GetInspection", "id": id}).Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inspection"})
			return
		}

		presignPhotos(c.Request.Context(), photos, insp.Results, logg)

		c.JSON(http.StatusOK, gin.H{
			"id":         insp.ID,
			"user_id":    insp.UserID,
			"status":     insp.Status,
			"progress":   insp.Progress,
			"results":    insp.Results,
			"zones":      inspection.GroupByZone(insp.Results),
			"created_at": insp.CreatedAt,
			"updated_at": insp.UpdatedAt,
		})
	}
}

func GetHistory(store InspectionStore, logg *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		inspections, err := store.ListByUser(c.Request.Context(), userID)
		if err != nil {
			logg.WithFields(logrus.Fields{"handler": "GetHistory"}).Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
			return
		}
		c.JSON(http.StatusOK, inspections)
	}
}

// SaveResults handles the save-results form submit: per checkpoint a
// status_<id> and comment_<id> field plus any number of photos_<id> file
// parts. Photos go through a temp file to MinIO before the row update; a
// photo that fails to upload is logged and skipped, never failing the save.
func SaveResults(store InspectionStore, photos PhotoUploader, logg *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inspection id"})
			return
		}

		sess := inspection.NewSession(nil, nil, store)
		sess.Bind(&models.User{ID: userID})
		sess.BindInspection(uint(id))

		insp, err := sess.LoadActiveInspection(c.Request.Context())
		if errors.Is(err, inspection.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inspection not found"})
			return
		}
		if err != nil {
			logg.WithFields(logrus.Fields{"handler": "SaveResults", "id": id}).Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inspection"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form submission"})
			return
		}

		edits := make([]inspection.Edit, 0, len(insp.Results))
		for _, r := range insp.Results {
			status := c.PostForm(fmt.Sprintf("status_%d", r.CheckpointID))
			if status == "" {
				status = models.StatusUnevaluated
			}
			if !validStatus(status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid status for checkpoint %d", r.CheckpointID)})
				return
			}

			edit := inspection.Edit{
				CheckpointID: r.CheckpointID,
				Status:       status,
				Comment:      c.PostForm(fmt.Sprintf("comment_%d", r.CheckpointID)),
			}

			for _, file := range form.File[fmt.Sprintf("photos_%d", r.CheckpointID)] {
				url, err := uploadViaTempFile(c, photos, insp.ID, file)
				if err != nil {
					logg.WithFields(logrus.Fields{
						"handler":    "SaveResults",
						"id":         insp.ID,
						"checkpoint": r.CheckpointID,
						"file":       file.Filename,
					}).Error(err.Error())
					continue
				}
				edit.Photos = append(edit.Photos, url)
			}

			edits = append(edits, edit)
		}

		updated, err := sess.SaveResults(c.Request.Context(), edits)
		if err != nil {
			var perr *inspection.PersistenceError
			if errors.As(err, &perr) {
				logg.WithFields(logrus.Fields{"handler": "SaveResults", "id": id}).Error(err.Error())
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save results"})
				return
			}
			if errors.Is(err, inspection.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Inspection not found"})
				return
			}
			logg.WithFields(logrus.Fields{"handler": "SaveResults", "id": id}).Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save results"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func validStatus(status string) bool {
	switch status {
	case models.StatusUnevaluated, models.StatusCompliant, models.StatusNonCompliant:
		return true
	}
	return false
}

// uploadViaTempFile spools the multipart part to a temp file and hands the
// file to the photo store.
func uploadViaTempFile(c *gin.Context, photos PhotoUploader, inspectionID uint, file *multipart.FileHeader) (string, error) {
	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("photo_%s%s", uuid.New().String(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		return "", &inspection.UploadError{Object: file.Filename, Err: err}
	}
	defer os.Remove(tempPath)

	return photos.UploadPhotoFile(c.Request.Context(), inspectionID, file.Filename, tempPath)
}

func presignPhotos(ctx context.Context, photos PhotoUploader, results []models.CheckpointResult, logg *logrus.Logger) {
	for i := range results {
		for j, photoURL := range results[i].Photos {
			url, err := photos.PresignedPhotoURL(ctx, photoURL)
			if err != nil {
				logg.WithFields(logrus.Fields{"photo": photoURL}).Error(err.Error())
				continue
			}
			results[i].Photos[j] = url
		}
	}
}
