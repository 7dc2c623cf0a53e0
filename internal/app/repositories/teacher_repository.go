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

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db DBTX
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db DBTX) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// GetAllTeachers retrieves all teachers with their courses
func (r *TeacherRepository) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	sql, args, err := psql.Select("id", "name").From("teachers").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		t := &models.Teacher{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	if err := r.loadCourses(ctx, teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// GetTeacherByID retrieves a teacher and its courses
func (r *TeacherRepository) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	sql, args, err := psql.Select("id", "name").From("teachers").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	t := &models.Teacher{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting teacher by ID: %w", err)
	}

	if err := r.loadCourses(ctx, []*models.Teacher{t}); err != nil {
		return nil, err
	}
	return t, nil
}

// loadCourses fills Courses for every teacher with a single IN query.
func (r *TeacherRepository) loadCourses(ctx context.Context, teachers []*models.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}
	byID := make(map[int64]*models.Teacher, len(teachers))
	ids := make([]int64, 0, len(teachers))
	for _, t := range teachers {
		t.Courses = []models.Course{}
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	sql, args, err := psql.Select("id", "title", "teacher_id").
		From("courses").
		Where(squirrel.Eq{"teacher_id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build teacher courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error querying teacher courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.TeacherID); err != nil {
			return fmt.Errorf("error scanning course row: %w", err)
		}
		if t, ok := byID[c.TeacherID]; ok {
			c.TeacherName = t.Name
			t.Courses = append(t.Courses, c)
		}
	}
	return rows.Err()
}

// CreateTeacher inserts a teacher and returns its id
func (r *TeacherRepository) CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error) {
	sql, args, err := psql.Insert("teachers").
		Columns("name").
		Values(teacher.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create teacher query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating teacher: %w", mapWriteError(err))
	}
	return id, nil
}

// UpdateTeacher overwrites the name
func (r *TeacherRepository) UpdateTeacher(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := psql.Update("teachers").
		Set("name", teacher.Name).
		Where(squirrel.Eq{"id": teacher.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating teacher: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTeacher deletes a teacher by ID
func (r *TeacherRepository) DeleteTeacher(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("teachers").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", mapDeleteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
