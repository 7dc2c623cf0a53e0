package services

import (
	"context"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAllStudents(ctx)
	return students, translateError(models.EntityStudent, err)
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, id)
	if err != nil {
		return nil, translateError(models.EntityStudent, err)
	}
	return student, nil
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{Name: *req.Name, Enrollments: []models.Enrollment{}}
	id, err := s.studentRepo.CreateStudent(ctx, student)
	if err != nil {
		return nil, translateError(models.EntityStudent, err)
	}
	student.ID = id
	return student, nil
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		return nil, translateError(models.EntityStudent, err)
	}
	return student, nil
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return translateError(models.EntityStudent, s.studentRepo.DeleteStudent(ctx, id))
}
