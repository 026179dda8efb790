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

const maxUploadBytes = 10 << 20 // 10 MiB

type FeedHandler struct {
	db    *gorm.DB
	store *storage.Store
	log   *zap.Logger
}

func NewFeedHandler(db *gorm.DB, store *storage.Store, log *zap.Logger) *FeedHandler {
	return &FeedHandler{db: db, store: store, log: log}
}

// ======================================================
// POSTS
// ======================================================

func (h *FeedHandler) ListPosts(c *gin.Context) {
	var posts []models.Post
	if err := h.db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes").
		Order("created_at DESC").
		Limit(50).
		Find(&posts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_posts", "Error al cargar el feed.")
		return
	}

	for i := range posts {
		posts[i].LikeCount = len(posts[i].Likes)
	}

	httpresp.List(c, posts)
}

// CreatePost accepts multipart form data with a "content" field and an
// optional "image" file that is re-encoded to webp and stored publicly.
func (h *FeedHandler) CreatePost(c *gin.Context) {
	authorID := c.MustGet(middleware.ContextUserID).(uint)

	content := c.PostForm("content")
	if content == "" {
		httperr.BadRequest(c, "missing_content", "La publicación necesita contenido.")
		return
	}

	post := models.Post{
		AuthorID: authorID,
		Content:  content,
	}

	if file, err := c.FormFile("image"); err == nil {
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

		_, url, err := h.store.UploadPublic(c.Request.Context(), "feed", encoded, ".webp", "image/webp")
		if err != nil {
			// The post still publishes without its image.
			h.log.Error("feed image upload failed", zap.Error(err))
		} else {
			post.ImageURL = url
		}
	}

	if err := h.db.Create(&post).Error; err != nil {
		httperr.Internal(c, "failed_to_create_post", "Error al publicar.")
		return
	}

	httpresp.Created(c, post)
}

func (h *FeedHandler) DeletePost(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var post models.Post
	if err := h.db.First(&post, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "post_not_found", "Publicación no encontrada.")
		return
	}

	if post.AuthorID != actorID && !middleware.IsAdmin(c) {
		httperr.Forbidden(c, "forbidden", "No puedes borrar esta publicación.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_post", "Error al borrar la publicación.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// COMMENTS
// ======================================================

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *FeedHandler) CreateComment(c *gin.Context) {
	authorID := c.MustGet(middleware.ContextUserID).(uint)

	var post models.Post
	if err := h.db.First(&post, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "post_not_found", "Publicación no encontrada.")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: authorID,
		Content:  req.Content,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_comment", "Error al comentar.")
		return
	}

	httpresp.Created(c, comment)
}

// ======================================================
// LIKES
// ======================================================

// ToggleLike adds the caller's like, or removes it when already present.
func (h *FeedHandler) ToggleLike(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var post models.Post
	if err := h.db.First(&post, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "post_not_found", "Publicación no encontrada.")
		return
	}

	var existing models.Like
	err := h.db.
		Where("post_id = ? AND user_id = ?", post.ID, userID).
		First(&existing).Error

	if err == nil {
		if err := h.db.Delete(&existing).Error; err != nil {
			httperr.Internal(c, "failed_to_unlike", "Error al quitar el me gusta.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"liked": false})
		return
	}

	like := models.Like{PostID: post.ID, UserID: userID}
	if err := h.db.Create(&like).Error; err != nil {
		httperr.Internal(c, "failed_to_like", "Error al dar me gusta.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": true})
}
