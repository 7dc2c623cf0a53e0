package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/middleware"
)

// TeacherController handles teacher-related HTTP requests
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// GetAllTeachers lists all teachers with their course titles
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {array} dto.TeacherResponse
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTeacherListResponse(teachers))
}

// @Summary Get teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.TeacherResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", models.EntityTeacher)
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, models.EntityTeacher, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTeacherResponse(teacher))
}

// @Summary Create teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.CreateTeacherRequest true "Teacher"
// @Success 201 {object} dto.TeacherResponse
// @Failure 400 {object} dto.ErrorResponse "Missing data"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if !middleware.BindCreate(ctx, &req) {
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, models.EntityTeacher, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewTeacherResponse(teacher))
}

// @Summary Update teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param request body dto.UpdateTeacherRequest true "Fields to change"
// @Success 200 {object} dto.TeacherResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", models.EntityTeacher)
	if !ok {
		return
	}
	var req dto.UpdateTeacherRequest
	if !middleware.BindUpdate(ctx, &req) {
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, models.EntityTeacher, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTeacherResponse(teacher))
}

// DeleteTeacher fails with 409 while courses still reference the teacher.
// @Summary Delete teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.MessageResponse "Teacher is still referenced"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", models.EntityTeacher)
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		respondError(ctx, models.EntityTeacher, err)
		return
	}
	deleted(ctx, models.EntityTeacher)
}
