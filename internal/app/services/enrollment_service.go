package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/repositories"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, key models.EnrollmentKey) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, from, to models.EnrollmentKey) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, key models.EnrollmentKey) error
}

type enrollmentServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
	tx             Transactor
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository, tx Transactor) EnrollmentService {
	return &enrollmentServiceImpl{enrollmentRepo: enrollmentRepo, tx: tx}
}

func (s *enrollmentServiceImpl) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAllEnrollments(ctx)
	return enrollments, translateError(models.EntityEnrollment, err)
}

func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, key models.EnrollmentKey) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.CreateEnrollment(ctx, key)
	if err != nil {
		return nil, translateError(models.EntityEnrollment, err)
	}
	return enrollment, nil
}

// UpdateEnrollment locks the existing row and re-links it to the new pair.
func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, from, to models.EnrollmentKey) (*models.Enrollment, error) {
	var updated *models.Enrollment
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.enrollmentRepo.WithTx(tx)
		existing, err := repo.GetEnrollment(ctx, from)
		if err != nil {
			return err
		}
		if from == to {
			updated = existing
			return nil
		}
		e, err := repo.UpdateEnrollment(ctx, from, to)
		updated = e
		return err
	})
	if err != nil {
		return nil, translateError(models.EntityEnrollment, err)
	}
	return updated, nil
}

func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, key models.EnrollmentKey) error {
	return translateError(models.EntityEnrollment, s.enrollmentRepo.DeleteEnrollment(ctx, key))
}
