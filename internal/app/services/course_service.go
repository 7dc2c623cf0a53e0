package services

import (
	"context"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courseRepo CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	return courses, translateError(models.EntityCourse, err)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, translateError(models.EntityCourse, err)
	}
	return course, nil
}

// CreateCourse inserts the course and reloads it so the teacher name is filled.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	id, err := s.courseRepo.CreateCourse(ctx, &models.Course{Title: *req.Title, TeacherID: *req.TeacherID})
	if err != nil {
		return nil, translateError(models.EntityCourse, err)
	}
	return s.GetCourseByID(ctx, id)
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.TeacherID != nil {
		course.TeacherID = *req.TeacherID
	}
	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		return nil, translateError(models.EntityCourse, err)
	}
	// The teacher may have changed.
	return s.GetCourseByID(ctx, id)
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return translateError(models.EntityCourse, s.courseRepo.DeleteCourse(ctx, id))
}
