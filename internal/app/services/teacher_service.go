package services

import (
	"context"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
)

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

type teacherServiceImpl struct {
	teacherRepo TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo TeacherStore) TeacherService {
	return &teacherServiceImpl{teacherRepo: teacherRepo}
}

func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.GetAllTeachers(ctx)
	return teachers, translateError(models.EntityTeacher, err)
}

func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetTeacherByID(ctx, id)
	if err != nil {
		return nil, translateError(models.EntityTeacher, err)
	}
	return teacher, nil
}

func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	teacher := &models.Teacher{Name: *req.Name, Courses: []models.Course{}}
	id, err := s.teacherRepo.CreateTeacher(ctx, teacher)
	if err != nil {
		return nil, translateError(models.EntityTeacher, err)
	}
	teacher.ID = id
	return teacher, nil
}

func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.GetTeacherByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if err := s.teacherRepo.UpdateTeacher(ctx, teacher); err != nil {
		return nil, translateError(models.EntityTeacher, err)
	}
	return teacher, nil
}

func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	return translateError(models.EntityTeacher, s.teacherRepo.DeleteTeacher(ctx, id))
}
