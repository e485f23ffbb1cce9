package http

import (
	"errors"
	"net/http"
	"strconv"

	"socialhub/pkg/logger"
	"socialhub/services/search/internal/entity"
	"socialhub/services/search/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUseCase usecase.SearchUseCase
	logger        *logger.Logger
}

func NewSearchHandler(searchUseCase usecase.SearchUseCase, logger *logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
		logger:        logger,
	}
}

// caller identifies whose generations a request belongs to.
func caller(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}

// Search godoc
// @Summary      Search posts and users
// @Description  Posts matching title or content come first, then users matching username or full name. Results for a superseded generation come back stale and empty.
// @Tags         search
// @Produce      json
// @Param        q query string false "Search text"
// @Param        scope query string false "all, posts or users"
// @Param        generation query int false "Caller's request generation"
// @Success      200  {object}  entity.Response
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	req := usecase.SearchRequest{
		Caller: caller(c),
		Query:  c.Query("q"),
		Scope:  c.Query("scope"),
	}

	if raw, ok := c.GetQuery("generation"); ok {
		gen, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "generation must be an integer"})
			return
		}
		req.Generation = &gen
	}

	resp, err := h.searchUseCase.Search(c.Request.Context(), req)
	if errors.Is(err, entity.ErrInvalidScope) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("Search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
