package handlers

import (
	"net/http"
	"satlink/internal/middleware"
	"satlink/internal/models"
	"satlink/internal/services"

	"github.com/gin-gonic/gin"
)

type InviteHandler struct {
	invites *services.InviteService
}

func NewInviteHandler(invites *services.InviteService) *InviteHandler {
	return &InviteHandler{invites: invites}
}

type sendInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Gift  int64  `json:"gift"`
}

func (h *InviteHandler) Send(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var req sendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}
	if req.Gift < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gift cannot be negative"})
		return
	}

	invite, err := h.invites.Send(user.ID, req.Email, req.Gift)
	if err != nil {
		Error(c, err)
		return
	}
	JSON(c, http.StatusCreated, invite)
}

type checkInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

func (h *InviteHandler) Check(c *gin.Context) {
	var req checkInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and token are required"})
		return
	}

	if err := h.invites.Check(req.Email, req.Token); err != nil {
		Error(c, err)
		return
	}
	JSON(c, http.StatusOK, gin.H{"message": "Successfully accepted"})
}
