package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/middleware"
)

// EnrollmentController handles the student/course association endpoints.
// Rows are addressed by the (student_id, course_id) pair.
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

func (c *EnrollmentController) pathKey(ctx *gin.Context) (models.EnrollmentKey, bool) {
	studentID, ok := parseIDParam(ctx, "student_id", models.EntityEnrollment)
	if !ok {
		return models.EnrollmentKey{}, false
	}
	courseID, ok := parseIDParam(ctx, "course_id", models.EntityEnrollment)
	if !ok {
		return models.EnrollmentKey{}, false
	}
	return models.EnrollmentKey{StudentID: studentID, CourseID: courseID}, true
}

// GetAllEnrollments lists every enrollment
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {array} dto.EnrollmentResponse
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewEnrollmentListResponse(enrollments))
}

// CreateEnrollment enrolls a student in a course
// @Summary Create enrollment
// @Description enrollment_date is set by the server to the current UTC time
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Student and course"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing data"
// @Failure 409 {object} dto.MessageResponse "Enrollment already exists or references a missing row"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if !middleware.BindCreate(ctx, &req) {
		return
	}

	key := models.EnrollmentKey{StudentID: *req.StudentID, CourseID: *req.CourseID}
	enrollment, err := c.enrollmentService.CreateEnrollment(ctx.Request.Context(), key)
	if err != nil {
		respondError(ctx, models.EntityEnrollment, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewEnrollmentResponse(enrollment))
}

// UpdateEnrollment re-links an enrollment to another student/course pair
// @Summary Update enrollment
// @Description Both ids are required in the body. enrollment_date is unchanged.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param student_id path int true "Current student ID"
// @Param course_id path int true "Current course ID"
// @Param request body dto.EnrollmentRequest true "New student and course"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.MessageResponse
// @Router /enrollments/{student_id}/{course_id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	from, ok := c.pathKey(ctx)
	if !ok {
		return
	}
	var req dto.EnrollmentRequest
	if !middleware.BindCreate(ctx, &req) {
		return
	}

	to := models.EnrollmentKey{StudentID: *req.StudentID, CourseID: *req.CourseID}
	enrollment, err := c.enrollmentService.UpdateEnrollment(ctx.Request.Context(), from, to)
	if err != nil {
		respondError(ctx, models.EntityEnrollment, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewEnrollmentResponse(enrollment))
}

// DeleteEnrollment removes an enrollment
// @Summary Delete enrollment
// @Tags enrollments
// @Produce json
// @Param student_id path int true "Student ID"
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse "Enrollment deleted"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{student_id}/{course_id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	key, ok := c.pathKey(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx.Request.Context(), key); err != nil {
		respondError(ctx, models.EntityEnrollment, err)
		return
	}
	deleted(ctx, models.EntityEnrollment)
}
