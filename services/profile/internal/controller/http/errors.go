package http

import (
	"errors"
	"net/http"

	"socialhub/pkg/logger"
	"socialhub/services/profile/internal/entity"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, log *logger.Logger, err error, generic string) {
	switch {
	case errors.Is(err, entity.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrAvatarTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidUsername),
		errors.Is(err, entity.ErrInvalidLanguage),
		errors.Is(err, entity.ErrInvalidAvatarType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("%s: %v", generic, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}
