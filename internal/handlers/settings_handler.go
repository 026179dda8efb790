package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/httpresp"
	"github.com/lanavaja/barber-platform/internal/models"
	"github.com/lanavaja/barber-platform/internal/settings"
)

type SettingsHandler struct {
	settings *settings.Service
}

func NewSettingsHandler(s *settings.Service) *SettingsHandler {
	return &SettingsHandler{settings: s}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.settings.Get())
}

type UpdateSettingsRequest struct {
	ShopName    string `json:"shop_name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	OpeningInfo string `json:"opening_info"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	saved, err := h.settings.Save(c.Request.Context(), models.ShopSettings{
		ShopName:    req.ShopName,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		OpeningInfo: req.OpeningInfo,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Error al guardar la configuración.")
		return
	}

	httpresp.OK(c, saved)
}
