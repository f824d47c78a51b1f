package handler

import (
	"net/http"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/middleware"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/service"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the authenticated user's own profile. The subject
// comes from the verified token; no profile route accepts a user id.
type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	profile := router.Group("/profile", authn)
	{
		profile.GET("/", h.GetProfile)
		profile.PUT("/", h.UpdateProfile)
		profile.POST("/picture", h.UploadPicture)
	}
}

// GetProfile returns the authenticated user's profile
// @Summary      Get profile
// @Tags         profile
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.ProfileResponse}
// @Failure      401  {object}  response.Response
// @Router       /profile/ [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), user.Email)
	if err != nil {
		response.FromError(c, "get profile", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, profile))
}

// UpdateProfile applies a partial update to the authenticated user's profile
// @Summary      Update profile
// @Tags         profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateProfileRequest  true  "Profile payload"
// @Success      200      {object}  response.Response{data=service.ProfileResponse}
// @Failure      400      {object}  response.Response
// @Router       /profile/ [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), user.Email, req)
	if err != nil {
		response.FromError(c, "update profile", err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, profile))
}

// UploadPicture stores a profile picture and records its path
// @Summary      Upload profile picture
// @Tags         profile
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        picture  formData  file  true  "Picture file"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profile/picture [post]
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
		return
	}

	file, err := c.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "missing required field 'picture'"))
		return
	}

	path, err := h.profileService.SavePicturePath(c.Request.Context(), user.Email, file.Filename)
	if err != nil {
		response.FromError(c, "upload profile picture", err)
		return
	}

	if err := c.SaveUploadedFile(file, path); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to save picture"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"profile_picture": path}))
}
