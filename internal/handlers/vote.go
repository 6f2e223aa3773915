package handlers

import (
	"net/http"
	"satlink/internal/middleware"
	"satlink/internal/models"
	"satlink/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes *services.VoteService
}

func NewVoteHandler(votes *services.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Upvote handles upvote logic
func (h *VoteHandler) Upvote(c *gin.Context) {
	h.apply(c, models.VoteUp)
}

// Downvote 处理点踩逻辑
func (h *VoteHandler) Downvote(c *gin.Context) {
	h.apply(c, models.VoteDown)
}

func (h *VoteHandler) apply(c *gin.Context, value int) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, err := h.votes.Apply(c.Param("pid"), user.ID, value)
	if err != nil {
		Error(c, err)
		return
	}
	JSON(c, http.StatusOK, post)
}
