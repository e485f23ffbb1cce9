package http

import (
	"net/http"

	"socialhub/pkg/logger"
	"socialhub/services/interaction/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type createCommentRequest struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parent_id"`
}

// ListComments godoc
// @Summary      List comments of a post
// @Description  Returns top-level comments oldest first, each with its replies and author
// @Tags         comments
// @Produce      json
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /interactions/posts/{post_id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUseCase.ListComments(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// CountComments godoc
// @Summary      Count comments of a post
// @Tags         comments
// @Produce      json
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /interactions/posts/{post_id}/comments/count [get]
func (h *CommentHandler) CountComments(c *gin.Context) {
	postID := c.Param("post_id")

	count, err := h.commentUseCase.CountComments(c.Request.Context(), postID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to count comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"post_id": postID, "comment_count": count})
}

// CreateComment godoc
// @Summary      Comment on a post
// @Description  Creates a top-level comment, or a reply when parent_id names a top-level comment of the same post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Param        request body createCommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /interactions/posts/{post_id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), c.GetString("user_id"), c.Param("post_id"), req.Content, req.ParentID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Deletes the caller's comment together with its replies
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        comment_id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /interactions/comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), c.GetString("user_id"), c.Param("comment_id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
