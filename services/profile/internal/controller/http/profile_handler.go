package http

import (
	"net/http"

	"socialhub/pkg/logger"
	"socialhub/services/profile/internal/entity"
	"socialhub/services/profile/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	logger         *logger.Logger
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// GetMe godoc
// @Summary      Current profile
// @Description  Returns the caller's profile, creating it on first access
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Profile
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /profiles/me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, err := h.profileUseCase.Me(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetMyUsername godoc
// @Summary      Current username
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /profiles/me/username [get]
func (h *ProfileHandler) GetMyUsername(c *gin.Context) {
	name, err := h.profileUseCase.Username(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to load username")
		return
	}

	if name == "" {
		c.JSON(http.StatusOK, gin.H{"username": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": name})
}

// GetByID godoc
// @Summary      Profile by id
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Profile ID"
// @Success      200  {object}  entity.Profile
// @Failure      404  {object}  map[string]string
// @Router       /profiles/id/{id} [get]
func (h *ProfileHandler) GetByID(c *gin.Context) {
	profile, err := h.profileUseCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetByUsername godoc
// @Summary      Profile by username
// @Tags         profiles
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {object}  entity.Profile
// @Failure      404  {object}  map[string]string
// @Router       /profiles/{username} [get]
func (h *ProfileHandler) GetByUsername(c *gin.Context) {
	profile, err := h.profileUseCase.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMe godoc
// @Summary      Update current profile
// @Description  Only the fields present in the body are changed
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.ProfileUpdate true "Profile fields"
// @Success      200  {object}  entity.Profile
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /profiles/me [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req entity.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileUseCase.Update(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadAvatar godoc
// @Summary      Upload avatar
// @Description  Replaces the caller's avatar (max 500KB; jpg, jpeg, png, gif, webp)
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image file"
// @Success      200  {object}  entity.Profile
// @Failure      400  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Router       /profiles/me/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}

	profile, err := h.profileUseCase.UploadAvatar(c.Request.Context(), c.GetString("user_id"), file)
	if err != nil {
		respondError(c, h.logger, err, "Failed to upload avatar")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteAvatar godoc
// @Summary      Reset avatar
// @Description  Reverts the caller to the default avatar
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Profile
// @Router       /profiles/me/avatar [delete]
func (h *ProfileHandler) DeleteAvatar(c *gin.Context) {
	profile, err := h.profileUseCase.DeleteAvatar(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to reset avatar")
		return
	}

	c.JSON(http.StatusOK, profile)
}
