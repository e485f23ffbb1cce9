package http

import (
	"net/http"

	"socialhub/pkg/logger"
	"socialhub/services/translate/internal/entity"
	"socialhub/services/translate/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TranslateHandler struct {
	translateUseCase usecase.TranslateUseCase
	logger           *logger.Logger
}

func NewTranslateHandler(translateUseCase usecase.TranslateUseCase, logger *logger.Logger) *TranslateHandler {
	return &TranslateHandler{
		translateUseCase: translateUseCase,
		logger:           logger,
	}
}

// Translate godoc
// @Summary      Translate text
// @Description  Translates text into target_language; an empty target returns the text unchanged
// @Tags         translate
// @Accept       json
// @Produce      json
// @Param        request body entity.TranslateRequest true "Text and languages"
// @Success      200  {object}  entity.TranslateResponse
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /translate [post]
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req entity.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.translateUseCase.Translate(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to translate text")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TranslatePost godoc
// @Summary      Translate a post
// @Description  Translates the post's title and content into the caller's profile language (en when unknown)
// @Tags         translate
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.PostTranslation
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /translate/posts/{id} [post]
func (h *TranslateHandler) TranslatePost(c *gin.Context) {
	authToken := ""
	if c.GetString("user_id") != "" {
		authToken = c.GetHeader("Authorization")
	}

	result, err := h.translateUseCase.TranslatePost(c.Request.Context(), c.Param("id"), authToken)
	if err != nil {
		respondError(c, h.logger, err, "Failed to translate post")
		return
	}

	c.JSON(http.StatusOK, result)
}
