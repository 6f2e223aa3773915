package handlers

import (
	"io"
	"net/http"
	"satlink/internal/db"
	"satlink/internal/middleware"
	"satlink/internal/models"
	"satlink/internal/services"
	"satlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	hub *services.Hub
}

func NewNotificationHandler(hub *services.Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

func (h *NotificationHandler) List(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	page := utils.PageParam(c.Query("page"))
	perPage := 50

	var notifications []models.Notification
	db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&notifications)

	JSON(c, http.StatusOK, notifications)
}

func (h *NotificationHandler) Read(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	db.DB.Model(&notification).UpdateColumn("is_read", true)
	JSON(c, http.StatusOK, gin.H{"read": true})
}

func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true)
	db.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		UpdateColumn("has_unread", false)

	JSON(c, http.StatusOK, gin.H{"read": true})
}

// Events 实时通知的 SSE 长连接
func (h *NotificationHandler) Events(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	ch, cancel := h.hub.Subscribe(user.ID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case payload, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("notification", payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
