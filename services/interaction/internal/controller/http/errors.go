package http

import (
	"errors"
	"net/http"

	"socialhub/pkg/logger"
	"socialhub/services/interaction/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to status codes; anything unrecognised is
// logged and answered with the generic message.
func respondError(c *gin.Context, log *logger.Logger, err error, generic string) {
	switch {
	case errors.Is(err, entity.ErrPostNotFound),
		errors.Is(err, entity.ErrCommentNotFound),
		errors.Is(err, entity.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrSelfFollow),
		errors.Is(err, entity.ErrEmptyComment),
		errors.Is(err, entity.ErrInvalidParent),
		errors.Is(err, entity.ErrInvalidTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Error("%s: %v", generic, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}
