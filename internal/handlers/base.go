package handlers

import (
	"errors"
	"net/http"
	"satlink/internal/services"
	"satlink/internal/utils"

	"github.com/gin-gonic/gin"
)

// JSON success envelope
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"data": data})
}

// Error 把服务层错误映射到 HTTP 状态码
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAuthorNotFound),
		errors.Is(err, services.ErrSystemAccount),
		errors.Is(err, services.ErrInviteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInsufficientBalance):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotPostOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSelfVote),
		errors.Is(err, services.ErrSelfTip),
		errors.Is(err, services.ErrInviteLimit),
		errors.Is(err, services.ErrAlreadyInvited),
		errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrInviteToken),
		errors.Is(err, utils.ErrEmptyPermalink):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		// ErrPartialTransfer 也落在这里：对外是内部错误，细节进日志
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
