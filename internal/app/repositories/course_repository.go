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

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return psql.Select("c.id", "c.title", "c.teacher_id", "t.name").
		From("courses c").
		Join("teachers t ON t.id = c.teacher_id")
}

// GetAllCourses retrieves all courses with teacher name and enrolled students
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.selectCourses().OrderBy("c.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c := &models.Course{}
		if err := rows.Scan(&c.ID, &c.Title, &c.TeacherID, &c.TeacherName); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	if err := r.loadEnrollments(ctx, courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourseByID retrieves a course with teacher name and enrolled students
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectCourses().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c := &models.Course{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.Title, &c.TeacherID, &c.TeacherName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	if err := r.loadEnrollments(ctx, []*models.Course{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// loadEnrollments fills Enrollments, with student names, for every course.
func (r *CourseRepository) loadEnrollments(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	byID := make(map[int64]*models.Course, len(courses))
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		c.Enrollments = []models.Enrollment{}
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	sql, args, err := psql.Select("e.student_id", "e.course_id", "e.enrollment_date", "s.name").
		From("enrollments e").
		Join("students s ON s.id = e.student_id").
		Where(squirrel.Eq{"e.course_id": ids}).
		OrderBy("e.student_id ASC", "e.course_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build course enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error querying course enrollments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.StudentID, &e.CourseID, &e.EnrollmentDate, &e.StudentName); err != nil {
			return fmt.Errorf("error scanning enrollment row: %w", err)
		}
		if c, ok := byID[e.CourseID]; ok {
			e.CourseTitle = c.Title
			c.Enrollments = append(c.Enrollments, e)
		}
	}
	return rows.Err()
}

// CreateCourse inserts a course and returns its id
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := psql.Insert("courses").
		Columns("title", "teacher_id").
		Values(course.Title, course.TeacherID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating course: %w", mapWriteError(err))
	}
	return id, nil
}

// UpdateCourse overwrites title and teacher_id
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	sql, args, err := psql.Update("courses").
		SetMap(map[string]interface{}{
			"title":      course.Title,
			"teacher_id": course.TeacherID,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating course: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCourse deletes a course by ID
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", mapDeleteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
