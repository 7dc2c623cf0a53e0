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

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{db: db}
}

// GetAllStudents retrieves all students with the courses they attend
func (r *StudentRepository) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := psql.Select("id", "name").From("students").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	if err := r.loadEnrollments(ctx, students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudentByID retrieves a student with the courses they attend
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := psql.Select("id", "name").From("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	if err := r.loadEnrollments(ctx, []*models.Student{s}); err != nil {
		return nil, err
	}
	return s, nil
}

// loadEnrollments fills Enrollments, with course titles, for every student.
func (r *StudentRepository) loadEnrollments(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}
	byID := make(map[int64]*models.Student, len(students))
	ids := make([]int64, 0, len(students))
	for _, s := range students {
		s.Enrollments = []models.Enrollment{}
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	sql, args, err := psql.Select("e.student_id", "e.course_id", "e.enrollment_date", "c.title").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.student_id": ids}).
		OrderBy("e.student_id ASC", "e.course_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build student enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error querying student enrollments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.StudentID, &e.CourseID, &e.EnrollmentDate, &e.CourseTitle); err != nil {
			return fmt.Errorf("error scanning enrollment row: %w", err)
		}
		if s, ok := byID[e.StudentID]; ok {
			e.StudentName = s.Name
			s.Enrollments = append(s.Enrollments, e)
		}
	}
	return rows.Err()
}

// CreateStudent inserts a student and returns its id
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := psql.Insert("students").
		Columns("name").
		Values(student.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating student: %w", mapWriteError(err))
	}
	return id, nil
}

// UpdateStudent overwrites the name
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := psql.Update("students").
		Set("name", student.Name).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStudent deletes a student by ID
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", mapDeleteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
