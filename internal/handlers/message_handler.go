package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/httpresp"
	"github.com/lanavaja/barber-platform/internal/middleware"
	"github.com/lanavaja/barber-platform/internal/models"
	"github.com/lanavaja/barber-platform/internal/notify"
)

type MessageHandler struct {
	db       *gorm.DB
	notifier *notify.Dispatcher
	log      *zap.Logger
}

func NewMessageHandler(db *gorm.DB, notifier *notify.Dispatcher, log *zap.Logger) *MessageHandler {
	return &MessageHandler{db: db, notifier: notifier, log: log}
}

type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	senderID := c.MustGet(middleware.ContextUserID).(uint)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.RecipientID == senderID {
		httperr.BadRequest(c, "invalid_recipient", "No puedes enviarte mensajes a ti mismo.")
		return
	}

	var recipient models.User
	if err := h.db.First(&recipient, req.RecipientID).Error; err != nil {
		httperr.NotFound(c, "recipient_not_found", "Destinatario no encontrado.")
		return
	}

	msg := models.Message{
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Content:     req.Content,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_send_message", "Error al enviar el mensaje.")
		return
	}

	if h.notifier != nil {
		var sender models.User
		if err := h.db.First(&sender, senderID).Error; err == nil {
			h.notifier.Notify(c.Request.Context(),
				notify.Recipient{
					Name:        recipient.Name,
					Email:       recipient.Email,
					Phone:       recipient.Phone,
					DeviceToken: recipient.FCMToken,
				},
				notify.Message{
					Title: "Nuevo mensaje",
					Body:  sender.Name + " te ha enviado un mensaje.",
				})
		}
	}

	httpresp.Created(c, msg)
}

// Conversation returns the full exchange between the caller and another
// user, oldest first, marking received messages as read.
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	otherID := c.Param("id")

	var messages []models.Message
	if err := h.db.
		Preload("Sender").
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, otherID, otherID, userID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Error al cargar la conversación.")
		return
	}

	now := time.Now()
	if err := h.db.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read_at IS NULL", otherID, userID).
		Update("read_at", now).Error; err != nil {
		h.log.Warn("failed to mark messages read", zap.Error(err))
	}

	httpresp.List(c, messages)
}

type conversationSummary struct {
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
	Unread      int64     `json:"unread"`
}

// Inbox lists the caller's conversations, most recent first, with a
// per-conversation unread count.
func (h *MessageHandler) Inbox(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var messages []models.Message
	if err := h.db.
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Error al cargar los mensajes.")
		return
	}

	byPeer := make(map[uint]*conversationSummary)
	order := make([]uint, 0)

	for _, m := range messages {
		peer := m.SenderID
		if peer == userID {
			peer = m.RecipientID
		}
		if _, ok := byPeer[peer]; !ok {
			byPeer[peer] = &conversationSummary{
				UserID:      peer,
				LastMessage: m.Content,
				LastAt:      m.CreatedAt,
			}
			order = append(order, peer)
		}
		if m.RecipientID == userID && m.ReadAt == nil {
			byPeer[peer].Unread++
		}
	}

	if len(order) > 0 {
		var peers []models.User
		if err := h.db.Where("id IN ?", order).Find(&peers).Error; err == nil {
			for _, u := range peers {
				if s, ok := byPeer[u.ID]; ok {
					s.UserName = u.Name
				}
			}
		}
	}

	out := make([]conversationSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byPeer[id])
	}

	c.JSON(http.StatusOK, gin.H{"conversations": out})
}
