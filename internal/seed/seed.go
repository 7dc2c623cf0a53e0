package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appMigrations "github.com/yigit/classroom/internal/app/migrations"
	appModels "github.com/yigit/classroom/internal/app/models"
	appRepos "github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/db"
)

// Summary reports what Load inserted.
type Summary struct {
	Users       int
	Profiles    int
	Teachers    int
	Courses     int
	Students    int
	Enrollments int
}

// Reset drops every table and recreates the schema.
func Reset(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.Reset(ctx); err != nil {
		return err
	}
	return migrator.Migrate(ctx)
}

// Load inserts the sample data set in a single transaction.
func Load(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) (*Summary, error) {
	summary := &Summary{}
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewRepositories(tx)

		users := []*appModels.User{
			{Email: "alice@example.com", Password: "1234"},
			{Email: "bob@example.com", Password: "5678"},
		}
		bios := []string{"Soy Alice", "Soy Bob"}
		for i, u := range users {
			id, err := repos.UserRepository.CreateUser(ctx, u)
			if err != nil {
				return fmt.Errorf("seed user %s: %w", u.Email, err)
			}
			u.ID = id
			if _, err := repos.ProfileRepository.CreateProfile(ctx, &appModels.Profile{Bio: bios[i], UserID: id}); err != nil {
				return fmt.Errorf("seed profile for %s: %w", u.Email, err)
			}
			summary.Users++
			summary.Profiles++
		}

		teacherIDs := make([]int64, 0, 2)
		for _, name := range []string{"Profesor X", "Profesora Y"} {
			id, err := repos.TeacherRepository.CreateTeacher(ctx, &appModels.Teacher{Name: name})
			if err != nil {
				return fmt.Errorf("seed teacher %s: %w", name, err)
			}
			teacherIDs = append(teacherIDs, id)
			summary.Teachers++
		}

		courseIDs := make([]int64, 0, 2)
		for i, title := range []string{"Matemáticas", "Ciencias"} {
			id, err := repos.CourseRepository.CreateCourse(ctx, &appModels.Course{Title: title, TeacherID: teacherIDs[i]})
			if err != nil {
				return fmt.Errorf("seed course %s: %w", title, err)
			}
			courseIDs = append(courseIDs, id)
			summary.Courses++
		}

		studentIDs := make([]int64, 0, 2)
		for _, name := range []string{"Carlos", "Lucía"} {
			id, err := repos.StudentRepository.CreateStudent(ctx, &appModels.Student{Name: name})
			if err != nil {
				return fmt.Errorf("seed student %s: %w", name, err)
			}
			studentIDs = append(studentIDs, id)
			summary.Students++
		}

		// Each student takes the course with the same position.
		for i := range studentIDs {
			key := appModels.EnrollmentKey{StudentID: studentIDs[i], CourseID: courseIDs[i]}
			if _, err := repos.EnrollmentRepository.CreateEnrollment(ctx, key); err != nil {
				return fmt.Errorf("seed enrollment %d/%d: %w", key.StudentID, key.CourseID, err)
			}
			summary.Enrollments++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	lgr.Info().
		Int("users", summary.Users).
		Int("teachers", summary.Teachers).
		Int("courses", summary.Courses).
		Int("students", summary.Students).
		Int("enrollments", summary.Enrollments).
		Msg("Seed data inserted")
	return summary, nil
}
