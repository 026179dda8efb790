package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/httpresp"
	"github.com/lanavaja/barber-platform/internal/middleware"
	"github.com/lanavaja/barber-platform/internal/models"
)

type BarberHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewBarberHandler(db *gorm.DB, loc *time.Location) *BarberHandler {
	return &BarberHandler{db: db, loc: loc}
}

// ======================================================
// PUBLIC LIST
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ? AND active = true", middleware.RoleBarber).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Error al listar los barberos.")
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// ADMIN CRUD
// ======================================================

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Ese correo ya está registrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	barber := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Bio:          req.Bio,
		Role:         middleware.RoleBarber,
		Active:       true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Error al crear el barbero.")
		return
	}

	httpresp.Created(c, barber)
}

type UpdateBarberRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Bio    *string `json:"bio"`
	Active *bool   `json:"active"`
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, middleware.RoleBarber).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Bio != nil {
		barber.Bio = *req.Bio
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Error al actualizar el barbero.")
		return
	}

	httpresp.OK(c, barber)
}

// ======================================================
// WEEKLY AVAILABILITY
// ======================================================

type WeeklyAvailabilityEntry struct {
	Weekday     int    `json:"weekday"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

func (h *BarberHandler) GetAvailability(c *gin.Context) {
	barberID, ok := h.resolveBarberID(c)
	if !ok {
		return
	}

	var rows []models.Availability
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Error al cargar el horario.")
		return
	}

	httpresp.List(c, rows)
}

// PutAvailability replaces the barber's whole weekly schedule.
func (h *BarberHandler) PutAvailability(c *gin.Context) {
	barberID, ok := h.resolveBarberID(c)
	if !ok {
		return
	}

	var entries []WeeklyAvailabilityEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	for _, e := range entries {
		if e.Weekday < 0 || e.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Día de la semana inválido.")
			return
		}
		if e.IsAvailable {
			if _, err := time.Parse("15:04", e.StartTime); err != nil {
				httperr.BadRequest(c, "invalid_time", "Hora inválida.")
				return
			}
			if _, err := time.Parse("15:04", e.EndTime); err != nil {
				httperr.BadRequest(c, "invalid_time", "Hora inválida.")
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.Availability{}).Error; err != nil {
			return err
		}

		for _, e := range entries {
			row := models.Availability{
				BarberID:    barberID,
				Weekday:     e.Weekday,
				StartTime:   e.StartTime,
				EndTime:     e.EndTime,
				IsAvailable: e.IsAvailable,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_availability", "Error al guardar el horario.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// DAYS OFF
// ======================================================

type CreateDayOffRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

func (h *BarberHandler) CreateDayOff(c *gin.Context) {
	barberID, ok := h.resolveBarberID(c)
	if !ok {
		return
	}

	var req CreateDayOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	date, err := parseShopDate(h.loc, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	dayOff := models.DayOff{
		BarberID: barberID,
		Date:     date,
		Reason:   req.Reason,
	}

	if err := h.db.Create(&dayOff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_day_off", "Error al registrar el día libre.")
		return
	}

	httpresp.Created(c, dayOff)
}

func (h *BarberHandler) ListDaysOff(c *gin.Context) {
	barberID, ok := h.resolveBarberID(c)
	if !ok {
		return
	}

	var rows []models.DayOff
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_days_off", "Error al listar los días libres.")
		return
	}

	httpresp.List(c, rows)
}

func (h *BarberHandler) DeleteDayOff(c *gin.Context) {
	barberID, ok := h.resolveBarberID(c)
	if !ok {
		return
	}

	res := h.db.
		Where("id = ? AND barber_id = ?", c.Param("id"), barberID).
		Delete(&models.DayOff{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_day_off", "Error al eliminar el día libre.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "day_off_not_found", "Día libre no encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// resolveBarberID: barbers act on their own schedule; admins pass
// ?barber_id= (or :id on admin routes).
func (h *BarberHandler) resolveBarberID(c *gin.Context) (uint, bool) {
	if middleware.IsAdmin(c) {
		q := c.Query("barber_id")
		if q == "" {
			q = c.Param("id")
		}
		if q != "" {
			id, err := strconv.ParseUint(q, 10, 64)
			if err != nil {
				httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
				return 0, false
			}
			return uint(id), true
		}
	}

	return c.MustGet(middleware.ContextUserID).(uint), true
}
