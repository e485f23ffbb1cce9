package http

import (
	"net/http"

	"socialhub/pkg/logger"
	"socialhub/services/interaction/internal/entity"
	"socialhub/services/interaction/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

// LikePost godoc
// @Summary      Toggle like on a post
// @Description  Likes the post, or removes the like if the caller already liked it
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  entity.LikeState
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /interactions/posts/{post_id}/like [post]
func (h *InteractionHandler) LikePost(c *gin.Context) {
	h.toggleLike(c, entity.TargetPost, c.Param("post_id"))
}

// LikeComment godoc
// @Summary      Toggle like on a comment
// @Description  Likes the comment, or removes the like if the caller already liked it
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        comment_id path string true "Comment ID"
// @Success      200  {object}  entity.LikeState
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /interactions/comments/{comment_id}/like [post]
func (h *InteractionHandler) LikeComment(c *gin.Context) {
	h.toggleLike(c, entity.TargetComment, c.Param("comment_id"))
}

func (h *InteractionHandler) toggleLike(c *gin.Context, kind entity.TargetKind, targetID string) {
	userID := c.GetString("user_id")

	state, err := h.interactionUseCase.ToggleLike(c.Request.Context(), userID, kind, targetID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update like")
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetPostLike godoc
// @Summary      Get like state of a post
// @Description  Returns the like count and whether the caller liked the post
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  entity.LikeState
// @Failure      404  {object}  map[string]string
// @Router       /interactions/posts/{post_id}/like [get]
func (h *InteractionHandler) GetPostLike(c *gin.Context) {
	h.likeState(c, entity.TargetPost, c.Param("post_id"))
}

// GetCommentLike godoc
// @Summary      Get like state of a comment
// @Description  Returns the like count and whether the caller liked the comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        comment_id path string true "Comment ID"
// @Success      200  {object}  entity.LikeState
// @Failure      404  {object}  map[string]string
// @Router       /interactions/comments/{comment_id}/like [get]
func (h *InteractionHandler) GetCommentLike(c *gin.Context) {
	h.likeState(c, entity.TargetComment, c.Param("comment_id"))
}

func (h *InteractionHandler) likeState(c *gin.Context, kind entity.TargetKind, targetID string) {
	state, err := h.interactionUseCase.GetLikeState(c.Request.Context(), c.GetString("user_id"), kind, targetID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to check like status")
		return
	}

	c.JSON(http.StatusOK, state)
}

// Follow godoc
// @Summary      Toggle follow
// @Description  Follows the user, or unfollows if the caller already follows them
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  entity.FollowState
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /interactions/users/{user_id}/follow [post]
func (h *InteractionHandler) Follow(c *gin.Context) {
	state, err := h.interactionUseCase.ToggleFollow(c.Request.Context(), c.GetString("user_id"), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to update follow")
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetFollow godoc
// @Summary      Get follow state
// @Description  Returns whether the caller follows the user along with both counters
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  entity.FollowState
// @Failure      404  {object}  map[string]string
// @Router       /interactions/users/{user_id}/follow [get]
func (h *InteractionHandler) GetFollow(c *gin.Context) {
	state, err := h.interactionUseCase.GetFollowState(c.Request.Context(), c.GetString("user_id"), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to check follow status")
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetFollowers godoc
// @Summary      List followers
// @Tags         follows
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /interactions/users/{user_id}/followers [get]
func (h *InteractionHandler) GetFollowers(c *gin.Context) {
	users, err := h.interactionUseCase.ListFollowers(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch followers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// GetFollowing godoc
// @Summary      List followed users
// @Tags         follows
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /interactions/users/{user_id}/following [get]
func (h *InteractionHandler) GetFollowing(c *gin.Context) {
	users, err := h.interactionUseCase.ListFollowing(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch following")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
