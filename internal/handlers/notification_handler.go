package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberdesk/booking-api/internal/httperr"
	"github.com/barberdesk/booking-api/internal/models"
)

const recentNotificationsLimit = 20

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// ListRecent feeds the dashboard's notification sheet, which polls this
// endpoint on a fixed interval.
func (h *NotificationHandler) ListRecent(c *gin.Context) {
	var notifications []models.Notification
	if err := h.db.
		Order("created_at DESC").
		Limit(recentNotificationsLimit).
		Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	var notification models.Notification
	if err := h.db.First(&notification, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Notificação não encontrada.")
		return
	}

	notification.Read = true
	if err := h.db.Save(&notification).Error; err != nil {
		httperr.Internal(c, "failed_to_update_notification", "Erro ao atualizar notificação.")
		return
	}

	c.JSON(http.StatusOK, notification)
}
