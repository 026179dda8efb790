package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/httpresp"
	"github.com/lanavaja/barber-platform/internal/middleware"
	"github.com/lanavaja/barber-platform/internal/models"
	"github.com/lanavaja/barber-platform/internal/storage"
)

type GalleryHandler struct {
	db    *gorm.DB
	store *storage.Store
	log   *zap.Logger
}

func NewGalleryHandler(db *gorm.DB, store *storage.Store, log *zap.Logger) *GalleryHandler {
	return &GalleryHandler{db: db, store: store, log: log}
}

func (h *GalleryHandler) List(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.db.Order("created_at DESC").Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gallery", "Error al cargar la galería.")
		return
	}
	httpresp.List(c, images)
}

// Upload re-encodes the image to webp before storing it publicly.
func (h *GalleryHandler) Upload(c *gin.Context) {
	uploaderID := c.MustGet(middleware.ContextUserID).(uint)

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Falta la imagen.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "La imagen es demasiado grande.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Error al leer la imagen.")
		return
	}
	raw, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Error al leer la imagen.")
		return
	}

	encoded, err := storage.ReencodeWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Formato de imagen no soportado.")
		return
	}

	key, url, err := h.store.UploadPublic(c.Request.Context(), "gallery", encoded, ".webp", "image/webp")
	if err != nil {
		h.log.Error("gallery upload failed", zap.Error(err))
		httperr.Internal(c, "failed_to_upload", "Error al subir la imagen.")
		return
	}

	image := models.GalleryImage{
		Title:      c.PostForm("title"),
		ObjectKey:  key,
		URL:        url,
		UploadedBy: uploaderID,
	}

	if err := h.db.Create(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_save_image", "Error al guardar la imagen.")
		return
	}

	httpresp.Created(c, image)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	var image models.GalleryImage
	if err := h.db.First(&image, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "image_not_found", "Imagen no encontrada.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), image.ObjectKey); err != nil {
		// The record is removed either way; an orphaned object is
		// preferable to a gallery entry pointing nowhere.
		h.log.Warn("failed to delete gallery object", zap.String("key", image.ObjectKey), zap.Error(err))
	}

	if err := h.db.Delete(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Error al borrar la imagen.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
