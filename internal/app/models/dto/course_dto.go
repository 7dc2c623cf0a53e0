package dto

import (
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/pkg/helpers"
)

// CreateTeacherRequest is the body of POST /teachers.
type CreateTeacherRequest struct {
	Name *string `json:"name" binding:"required" example:"Profesor X"`
}

// UpdateTeacherRequest carries the teacher fields to change.
type UpdateTeacherRequest struct {
	Name *string `json:"name"`
}

// TeacherResponse lists the titles of the courses the teacher owns.
type TeacherResponse struct {
	ID      int64    `json:"id" example:"1"`
	Name    string   `json:"name" example:"Profesor X"`
	Courses []string `json:"courses"`
}

func NewTeacherResponse(teacher *models.Teacher) TeacherResponse {
	titles := make([]string, 0, len(teacher.Courses))
	for _, c := range teacher.Courses {
		titles = append(titles, c.Title)
	}
	return TeacherResponse{ID: teacher.ID, Name: teacher.Name, Courses: titles}
}

func NewTeacherListResponse(teachers []*models.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, NewTeacherResponse(t))
	}
	return out
}

// CreateCourseRequest is the body of POST /courses.
type CreateCourseRequest struct {
	Title     *string `json:"title" binding:"required" example:"Matemáticas"`
	TeacherID *int64  `json:"teacher_id" binding:"required" example:"1"`
}

// UpdateCourseRequest carries the course fields to change.
type UpdateCourseRequest struct {
	Title     *string `json:"title"`
	TeacherID *int64  `json:"teacher_id"`
}

// EnrolledStudent is one entry of a course's student list.
type EnrolledStudent struct {
	Name       string `json:"name" example:"Carlos"`
	EnrolledOn string `json:"enrolled_on" example:"2024-03-09T08:07:06.120000"`
}

// CourseResponse inlines the teacher's name and the enrolled students.
type CourseResponse struct {
	ID       int64             `json:"id" example:"1"`
	Title    string            `json:"title" example:"Matemáticas"`
	Teacher  string            `json:"teacher" example:"Profesor X"`
	Students []EnrolledStudent `json:"students"`
}

func NewCourseResponse(course *models.Course) CourseResponse {
	students := make([]EnrolledStudent, 0, len(course.Enrollments))
	for _, e := range course.Enrollments {
		students = append(students, EnrolledStudent{
			Name:       e.StudentName,
			EnrolledOn: helpers.ISOFormat(e.EnrollmentDate),
		})
	}
	return CourseResponse{
		ID:       course.ID,
		Title:    course.Title,
		Teacher:  course.TeacherName,
		Students: students,
	}
}

func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
