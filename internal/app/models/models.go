package models

// Entity names used in client-facing messages.
const (
	EntityUser       = "User"
	EntityProfile    = "Profile"
	EntityTeacher    = "Teacher"
	EntityCourse     = "Course"
	EntityStudent    = "Student"
	EntityEnrollment = "Enrollment"
)

// EnrollmentKey identifies an enrollment row.
type EnrollmentKey struct {
	StudentID int64
	CourseID  int64
}
