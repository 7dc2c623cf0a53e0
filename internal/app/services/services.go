// Package services holds the business rules between controllers and
// repositories: partial-update merges and the translation of repository
// errors into client-facing application errors.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/db"
	"github.com/yigit/classroom/internal/pkg/apperrors"
)

// Transactor runs fn inside a database transaction. *db.PostgresDB implements it.
type Transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// Services groups every service used by the controllers.
type Services struct {
	UserService       UserService
	ProfileService    ProfileService
	TeacherService    TeacherService
	CourseService     CourseService
	StudentService    StudentService
	EnrollmentService EnrollmentService
}

// NewServices wires services onto repositories.
func NewServices(repos *repositories.Repositories, tx Transactor) *Services {
	return &Services{
		UserService:       NewUserService(repos.UserRepository),
		ProfileService:    NewProfileService(repos.ProfileRepository),
		TeacherService:    NewTeacherService(repos.TeacherRepository),
		CourseService:     NewCourseService(repos.CourseRepository),
		StudentService:    NewStudentService(repos.StudentRepository),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository, tx),
	}
}

var duplicateMessages = map[string]string{
	models.EntityUser:       "Email already exists",
	models.EntityProfile:    "Profile for this user already exists",
	models.EntityEnrollment: "Enrollment already exists",
}

// translateError maps repository errors for entity to application errors.
// Anything unrecognised is wrapped and left for the error middleware.
func translateError(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NewResourceNotFoundError(entity + " not found")
	case errors.Is(err, repositories.ErrDuplicate):
		msg, ok := duplicateMessages[entity]
		if !ok {
			msg = entity + " already exists"
		}
		return apperrors.NewConflictError(msg)
	case errors.Is(err, repositories.ErrMissingReference):
		return apperrors.NewConflictError(entity + " references a missing row")
	case errors.Is(err, repositories.ErrStillReferenced):
		return apperrors.NewConflictError(entity + " is still referenced")
	}
	return fmt.Errorf("%s: %w", entity, err)
}
