package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/middleware"
)

// ProfileController handles profile-related HTTP requests
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetAllProfiles lists all profiles
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} dto.ProfileResponse
// @Router /profiles [get]
func (c *ProfileController) GetAllProfiles(ctx *gin.Context) {
	profiles, err := c.profileService.GetAllProfiles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewProfileListResponse(profiles))
}

// GetProfileByID retrieves a profile by ID
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id} [get]
func (c *ProfileController) GetProfileByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", models.EntityProfile)
	if !ok {
		return
	}

	profile, err := c.profileService.GetProfileByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, models.EntityProfile, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// CreateProfile attaches a profile to an existing user
// @Summary Create profile
// @Description A user can have at most one profile.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body dto.CreateProfileRequest true "Profile information"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Missing data"
// @Failure 409 {object} dto.MessageResponse "Unknown user or user already has a profile"
// @Router /profiles [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	var req dto.CreateProfileRequest
	if !middleware.BindCreate(ctx, &req) {
		return
	}

	profile, err := c.profileService.CreateProfile(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, models.EntityProfile, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewProfileResponse(profile))
}

// UpdateProfile changes the fields present in the body
// @Summary Update profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 409 {object} dto.MessageResponse
// @Router /profiles/{id} [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", models.EntityProfile)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !middleware.BindUpdate(ctx, &req) {
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, models.EntityProfile, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// DeleteProfile deletes a profile
// @Summary Delete profile
// @Tags profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} dto.MessageResponse "Profile deleted"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id} [delete]
func (c *ProfileController) DeleteProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", models.EntityProfile)
	if !ok {
		return
	}

	if err := c.profileService.DeleteProfile(ctx.Request.Context(), id); err != nil {
		respondError(ctx, models.EntityProfile, err)
		return
	}
	deleted(ctx, models.EntityProfile)
}
