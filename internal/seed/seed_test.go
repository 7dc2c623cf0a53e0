//go:build integration

package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/testutil"
)

func TestLoad(t *testing.T) {
	database := testutil.PostgresDB(t)
	ctx := context.Background()

	if err := Reset(ctx, database, zerolog.Nop()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	summary, err := Load(ctx, database, zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Summary{Users: 2, Profiles: 2, Teachers: 2, Courses: 2, Students: 2, Enrollments: 2}
	if *summary != want {
		t.Errorf("summary = %+v, want %+v", *summary, want)
	}

	repos := repositories.NewRepositories(database.Pool)
	users, _ := repos.UserRepository.GetAllUsers(ctx)
	if len(users) != 2 || users[0].Email != "alice@example.com" || users[0].Profile == nil || users[0].Profile.Bio != "Soy Alice" {
		t.Errorf("unexpected users %+v", users)
	}

	students, _ := repos.StudentRepository.GetAllStudents(ctx)
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
	if got := students[1]; got.Name != "Lucía" || len(got.Enrollments) != 1 || got.Enrollments[0].CourseTitle != "Ciencias" {
		t.Errorf("unexpected second student %+v", got)
	}

	// A second load violates users_email_key and must leave nothing behind.
	if _, err := Load(ctx, database, zerolog.Nop()); err == nil {
		t.Fatal("expected duplicate seed to fail")
	}
	teachers, _ := repos.TeacherRepository.GetAllTeachers(ctx)
	if len(teachers) != 2 {
		t.Errorf("failed load was not rolled back: %d teachers", len(teachers))
	}
}
