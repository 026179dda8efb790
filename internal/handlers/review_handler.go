package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/httpresp"
	"github.com/lanavaja/barber-platform/internal/middleware"
	"github.com/lanavaja/barber-platform/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type CreateReviewRequest struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "invalid_rating", "La valoración debe estar entre 1 y 5.")
		return
	}

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", req.BarberID, middleware.RoleBarber).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	var count int64
	h.db.Model(&models.Review{}).
		Where("client_id = ? AND barber_id = ?", clientID, req.BarberID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "review_already_exists", "Ya has valorado a este barbero.")
		return
	}

	review := models.Review{
		ClientID: clientID,
		BarberID: req.BarberID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_create_review", "Error al guardar la valoración.")
		return
	}

	httpresp.Created(c, review)
}

func (h *ReviewHandler) ListForBarber(c *gin.Context) {
	var reviews []models.Review
	if err := h.db.
		Preload("Client").
		Where("barber_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Error al listar las valoraciones.")
		return
	}

	httpresp.List(c, reviews)
}
