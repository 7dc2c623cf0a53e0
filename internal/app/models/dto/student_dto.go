package dto

import (
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/pkg/helpers"
)

// CreateStudentRequest is the body of POST /students.
type CreateStudentRequest struct {
	Name *string `json:"name" binding:"required" example:"Carlos"`
}

// UpdateStudentRequest carries the student fields to change.
type UpdateStudentRequest struct {
	Name *string `json:"name"`
}

// StudentCourse is one entry of a student's course list.
type StudentCourse struct {
	Title      string `json:"title" example:"Matemáticas"`
	EnrolledOn string `json:"enrolled_on" example:"2024-03-09T08:07:06.120000"`
}

// StudentResponse inlines the courses the student is enrolled in.
type StudentResponse struct {
	ID      int64           `json:"id" example:"1"`
	Name    string          `json:"name" example:"Carlos"`
	Courses []StudentCourse `json:"courses"`
}

func NewStudentResponse(student *models.Student) StudentResponse {
	courses := make([]StudentCourse, 0, len(student.Enrollments))
	for _, e := range student.Enrollments {
		courses = append(courses, StudentCourse{
			Title:      e.CourseTitle,
			EnrolledOn: helpers.ISOFormat(e.EnrollmentDate),
		})
	}
	return StudentResponse{ID: student.ID, Name: student.Name, Courses: courses}
}

func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// EnrollmentRequest is the body of POST /enrollments and PUT
// /enrollments/{student_id}/{course_id}. Both ids are always required.
type EnrollmentRequest struct {
	StudentID *int64 `json:"student_id" binding:"required" example:"1"`
	CourseID  *int64 `json:"course_id" binding:"required" example:"1"`
}

// EnrollmentResponse is the flat view of an enrollment row.
type EnrollmentResponse struct {
	StudentID      int64  `json:"student_id" example:"1"`
	CourseID       int64  `json:"course_id" example:"1"`
	EnrollmentDate string `json:"enrollment_date" example:"2024-03-09T08:07:06.120000"`
}

func NewEnrollmentResponse(e *models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		EnrollmentDate: helpers.ISOFormat(e.EnrollmentDate),
	}
}

func NewEnrollmentListResponse(enrollments []*models.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, NewEnrollmentResponse(e))
	}
	return out
}
