package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	// Relations (populated when needed)
	Enrollments []Enrollment `json:"enrollments,omitempty"`
}

// Enrollment links a student to a course. It has no surrogate id; the
// (StudentID, CourseID) pair is the primary key.
type Enrollment struct {
	StudentID      int64     `json:"student_id" db:"student_id"`
	CourseID       int64     `json:"course_id" db:"course_id"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"`

	// Joined columns, filled depending on which side is being loaded
	StudentName string `json:"student_name,omitempty"`
	CourseTitle string `json:"course_title,omitempty"`
}

// Key returns the composite primary key.
func (e Enrollment) Key() EnrollmentKey {
	return EnrollmentKey{StudentID: e.StudentID, CourseID: e.CourseID}
}
