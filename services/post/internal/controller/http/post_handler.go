package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"socialhub/pkg/logger"
	"socialhub/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// optionalImage returns nil when the request carries no image field.
func optionalImage(c *gin.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	return file, err
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Creates a post with an optional image (max 10MB)
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Post title"
// @Param        content formData string true "Post content"
// @Param        image formData file false "Post image"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	image, err := optionalImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form"})
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), c.GetString("user_id"), c.PostForm("title"), c.PostForm("content"), image)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetFeed godoc
// @Summary      Home feed
// @Description  Newest posts first, 20 per page, with author and comment count
// @Tags         posts
// @Produce      json
// @Param        page query int false "Page number, starting at 0"
// @Success      200  {object}  entity.FeedPage
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	page, err := h.postUseCase.GetFeed(c.Request.Context(), pageParam(c))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetFollowingFeed godoc
// @Summary      Following feed
// @Description  Newest posts by users the caller follows
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number, starting at 0"
// @Success      200  {object}  entity.FeedPage
// @Failure      500  {object}  map[string]string
// @Router       /posts/following [get]
func (h *PostHandler) GetFollowingFeed(c *gin.Context) {
	page, err := h.postUseCase.GetFollowingFeed(c.Request.Context(), c.GetString("user_id"), pageParam(c))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetUserPosts godoc
// @Summary      Posts by user
// @Tags         posts
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        page query int false "Page number, starting at 0"
// @Success      200  {object}  entity.FeedPage
// @Failure      500  {object}  map[string]string
// @Router       /posts/user/{user_id} [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	page, err := h.postUseCase.GetUserPosts(c.Request.Context(), c.Param("user_id"), pageParam(c))
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, page)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Updates title, content or image of the caller's post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        title formData string false "Post title"
// @Param        content formData string false "Post content"
// @Param        image formData file false "Replacement image"
// @Param        remove_image formData bool false "Remove the current image"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	image, err := optionalImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form"})
		return
	}

	input := usecase.UpdatePostInput{Image: image}
	if title, ok := c.GetPostForm("title"); ok {
		input.Title = &title
	}
	if content, ok := c.GetPostForm("content"); ok {
		input.Content = &content
	}
	input.RemoveImage, _ = strconv.ParseBool(c.PostForm("remove_image"))

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), c.Param("id"), c.GetString("user_id"), input)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes the caller's post, its image, comments and likes
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.DeletePost(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
