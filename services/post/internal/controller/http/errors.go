package http

import (
	"errors"
	"net/http"

	"socialhub/pkg/logger"
	"socialhub/services/post/internal/entity"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, log *logger.Logger, err error, generic string) {
	switch {
	case errors.Is(err, entity.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrTitleRequired),
		errors.Is(err, entity.ErrContentRequired),
		errors.Is(err, entity.ErrInvalidImageType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("%s: %v", generic, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}
