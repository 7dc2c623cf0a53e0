package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/pkg/logger"
)

// EnrollmentRepository handles the student/course association table
type EnrollmentRepository struct {
	db DBTX
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *EnrollmentRepository) WithTx(tx pgx.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{db: tx}
}

func keyEq(key models.EnrollmentKey) squirrel.Eq {
	return squirrel.Eq{"student_id": key.StudentID, "course_id": key.CourseID}
}

// GetAllEnrollments lists every enrollment ordered by (student_id, course_id)
func (r *EnrollmentRepository) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	sql, args, err := psql.Select("student_id", "course_id", "enrollment_date").
		From("enrollments").
		OrderBy("student_id ASC", "course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{}
		if err := rows.Scan(&e.StudentID, &e.CourseID, &e.EnrollmentDate); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return enrollments, nil
}

// GetEnrollment retrieves one enrollment by its composite key. FOR UPDATE
// holds the row when called inside a transaction.
func (r *EnrollmentRepository) GetEnrollment(ctx context.Context, key models.EnrollmentKey) (*models.Enrollment, error) {
	sql, args, err := psql.Select("student_id", "course_id", "enrollment_date").
		From("enrollments").
		Where(keyEq(key)).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	e := &models.Enrollment{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.StudentID, &e.CourseID, &e.EnrollmentDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting enrollment: %w", err)
	}
	return e, nil
}

// CreateEnrollment inserts the pair; the store stamps enrollment_date.
func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, key models.EnrollmentKey) (*models.Enrollment, error) {
	sql, args, err := psql.Insert("enrollments").
		Columns("student_id", "course_id").
		Values(key.StudentID, key.CourseID).
		Suffix("RETURNING student_id, course_id, enrollment_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	e := &models.Enrollment{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.StudentID, &e.CourseID, &e.EnrollmentDate); err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", mapWriteError(err))
	}
	return e, nil
}

// UpdateEnrollment moves the row at from to the pair to, keeping its date.
func (r *EnrollmentRepository) UpdateEnrollment(ctx context.Context, from, to models.EnrollmentKey) (*models.Enrollment, error) {
	sql, args, err := psql.Update("enrollments").
		SetMap(map[string]interface{}{
			"student_id": to.StudentID,
			"course_id":  to.CourseID,
		}).
		Where(keyEq(from)).
		Suffix("RETURNING student_id, course_id, enrollment_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	e := &models.Enrollment{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.StudentID, &e.CourseID, &e.EnrollmentDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating enrollment: %w", mapWriteError(err))
	}
	return e, nil
}

// DeleteEnrollment removes one enrollment by its composite key
func (r *EnrollmentRepository) DeleteEnrollment(ctx context.Context, key models.EnrollmentKey) error {
	sql, args, err := psql.Delete("enrollments").Where(keyEq(key)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", mapDeleteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
