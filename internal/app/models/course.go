package models

// Teacher owns many courses.
type Teacher struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	// Relations (populated when needed)
	Courses []Course `json:"courses,omitempty"`
}

// Course represents a course taught by one teacher.
type Course struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	TeacherID int64  `json:"teacher_id" db:"teacher_id"`

	// Relations (populated when needed)
	TeacherName string       `json:"teacher_name,omitempty"`
	Enrollments []Enrollment `json:"enrollments,omitempty"`
}
