package handlers

import (
	"net/http"
	"satlink/internal/middleware"
	"satlink/internal/models"
	"satlink/internal/services"

	"github.com/gin-gonic/gin"
)

type TipHandler struct {
	tips *services.TipService
}

func NewTipHandler(tips *services.TipService) *TipHandler {
	return &TipHandler{tips: tips}
}

func (h *TipHandler) Tip(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	if err := h.tips.Tip(c.Param("pid"), user.ID); err != nil {
		Error(c, err)
		return
	}
	JSON(c, http.StatusOK, gin.H{"message": "Post author tipped successfully!"})
}
