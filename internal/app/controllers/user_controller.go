package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/middleware"
)

// UserController handles user-related HTTP requests
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetAllUsers lists all users
// @Summary List users
// @Description Returns every user with its profile inlined
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// GetUserByID retrieves a user by ID
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", models.EntityUser)
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, models.EntityUser, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// CreateUser handles user creation
// @Summary Create user
// @Description Creates a user. The password is stored as given and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Missing data"
// @Failure 409 {object} dto.MessageResponse "Email already exists"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !middleware.BindCreate(ctx, &req) {
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, models.EntityUser, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// UpdateUser changes the fields present in the body
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.MessageResponse "Email already exists"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", models.EntityUser)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !middleware.BindUpdate(ctx, &req) {
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, models.EntityUser, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser deletes a user
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse "User deleted"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.MessageResponse "User is still referenced"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", models.EntityUser)
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), id); err != nil {
		respondError(ctx, models.EntityUser, err)
		return
	}
	deleted(ctx, models.EntityUser)
}
