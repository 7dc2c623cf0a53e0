package services

import (
	"context"

	"github.com/yigit/classroom/internal/app/models"
)

// The store interfaces list what each service needs from its repository.
// The repositories package implements them on PostgreSQL.

type UserStore interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type ProfileStore interface {
	GetAllProfiles(ctx context.Context) ([]*models.Profile, error)
	GetProfileByID(ctx context.Context, id int64) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) (int64, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	DeleteProfile(ctx context.Context, id int64) error
}

type TeacherStore interface {
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error)
	UpdateTeacher(ctx context.Context, teacher *models.Teacher) error
	DeleteTeacher(ctx context.Context, id int64) error
}

type CourseStore interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type StudentStore interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}
