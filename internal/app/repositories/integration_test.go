//go:build integration

package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/testutil"
)

func setup(t *testing.T) (*repositories.Repositories, context.Context) {
	t.Helper()
	database := testutil.PostgresDB(t)
	return repositories.NewRepositories(database.Pool), context.Background()
}

func TestUserRepository_CRUD(t *testing.T) {
	repos, ctx := setup(t)
	users := repos.UserRepository

	id, err := users.CreateUser(ctx, &models.User{Email: "a@x.com", Password: "p"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := users.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "a@x.com" || got.Password != "p" || got.Profile != nil {
		t.Errorf("unexpected user %+v", got)
	}

	got.Email = "b@x.com"
	if err := users.UpdateUser(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = users.GetUserByID(ctx, id)
	if got.Email != "b@x.com" || got.Password != "p" {
		t.Errorf("update changed the wrong fields: %+v", got)
	}

	if err := users.DeleteUser(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := users.DeleteUser(ctx, id); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
	if _, err := users.GetUserByID(ctx, id); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("get after delete: expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repos, ctx := setup(t)

	if _, err := repos.UserRepository.CreateUser(ctx, &models.User{Email: "a@x.com", Password: "p"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := repos.UserRepository.CreateUser(ctx, &models.User{Email: "a@x.com", Password: "q"})
	if !errors.Is(err, repositories.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestProfileRepository_Constraints(t *testing.T) {
	repos, ctx := setup(t)

	_, err := repos.ProfileRepository.CreateProfile(ctx, &models.Profile{Bio: "ghost", UserID: 999})
	if !errors.Is(err, repositories.ErrMissingReference) {
		t.Errorf("missing user: expected ErrMissingReference, got %v", err)
	}

	userID, _ := repos.UserRepository.CreateUser(ctx, &models.User{Email: "a@x.com", Password: "p"})
	profileID, err := repos.ProfileRepository.CreateProfile(ctx, &models.Profile{Bio: "Soy Alice", UserID: userID})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	_, err = repos.ProfileRepository.CreateProfile(ctx, &models.Profile{Bio: "again", UserID: userID})
	if !errors.Is(err, repositories.ErrDuplicate) {
		t.Errorf("second profile: expected ErrDuplicate, got %v", err)
	}

	user, err := repos.UserRepository.GetUserByID(ctx, userID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Profile == nil || user.Profile.ID != profileID || user.Profile.Bio != "Soy Alice" {
		t.Errorf("profile not joined: %+v", user.Profile)
	}

	if err := repos.UserRepository.DeleteUser(ctx, userID); !errors.Is(err, repositories.ErrStillReferenced) {
		t.Errorf("delete referenced user: expected ErrStillReferenced, got %v", err)
	}
}

func TestTeacherAndCourseRepositories(t *testing.T) {
	repos, ctx := setup(t)

	teacherID, err := repos.TeacherRepository.CreateTeacher(ctx, &models.Teacher{Name: "Profesor X"})
	if err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	teacher, _ := repos.TeacherRepository.GetTeacherByID(ctx, teacherID)
	if teacher.Courses == nil || len(teacher.Courses) != 0 {
		t.Errorf("expected empty, non-nil courses, got %#v", teacher.Courses)
	}

	if _, err := repos.CourseRepository.CreateCourse(ctx, &models.Course{Title: "Orphan", TeacherID: 999}); !errors.Is(err, repositories.ErrMissingReference) {
		t.Errorf("missing teacher: expected ErrMissingReference, got %v", err)
	}

	for _, title := range []string{"Matemáticas", "Ciencias"} {
		if _, err := repos.CourseRepository.CreateCourse(ctx, &models.Course{Title: title, TeacherID: teacherID}); err != nil {
			t.Fatalf("create course: %v", err)
		}
	}

	teachers, err := repos.TeacherRepository.GetAllTeachers(ctx)
	if err != nil {
		t.Fatalf("list teachers: %v", err)
	}
	if len(teachers) != 1 || len(teachers[0].Courses) != 2 ||
		teachers[0].Courses[0].Title != "Matemáticas" || teachers[0].Courses[1].Title != "Ciencias" {
		t.Errorf("unexpected teachers %+v", teachers)
	}

	courses, err := repos.CourseRepository.GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(courses) != 2 || courses[0].TeacherName != "Profesor X" || len(courses[0].Enrollments) != 0 {
		t.Errorf("unexpected courses %+v", courses)
	}

	if err := repos.TeacherRepository.DeleteTeacher(ctx, teacherID); !errors.Is(err, repositories.ErrStillReferenced) {
		t.Errorf("delete referenced teacher: expected ErrStillReferenced, got %v", err)
	}
}

func TestEnrollmentRepository_Scenario(t *testing.T) {
	repos, ctx := setup(t)

	teacherID, _ := repos.TeacherRepository.CreateTeacher(ctx, &models.Teacher{Name: "Profesor X"})
	courseID, _ := repos.CourseRepository.CreateCourse(ctx, &models.Course{Title: "Matemáticas", TeacherID: teacherID})
	otherCourseID, _ := repos.CourseRepository.CreateCourse(ctx, &models.Course{Title: "Ciencias", TeacherID: teacherID})
	studentID, _ := repos.StudentRepository.CreateStudent(ctx, &models.Student{Name: "Carlos"})

	before := time.Now().UTC().Add(-time.Minute)
	key := models.EnrollmentKey{StudentID: studentID, CourseID: courseID}
	enrollment, err := repos.EnrollmentRepository.CreateEnrollment(ctx, key)
	if err != nil {
		t.Fatalf("create enrollment: %v", err)
	}
	if enrollment.EnrollmentDate.Before(before) {
		t.Errorf("enrollment_date %v is not current", enrollment.EnrollmentDate)
	}

	if _, err := repos.EnrollmentRepository.CreateEnrollment(ctx, key); !errors.Is(err, repositories.ErrDuplicate) {
		t.Errorf("duplicate enrollment: expected ErrDuplicate, got %v", err)
	}
	if _, err := repos.EnrollmentRepository.CreateEnrollment(ctx, models.EnrollmentKey{StudentID: 999, CourseID: courseID}); !errors.Is(err, repositories.ErrMissingReference) {
		t.Errorf("missing student: expected ErrMissingReference, got %v", err)
	}

	student, err := repos.StudentRepository.GetStudentByID(ctx, studentID)
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if len(student.Enrollments) != 1 || student.Enrollments[0].CourseTitle != "Matemáticas" ||
		!student.Enrollments[0].EnrollmentDate.Equal(enrollment.EnrollmentDate) {
		t.Errorf("unexpected student enrollments %+v", student.Enrollments)
	}

	course, _ := repos.CourseRepository.GetCourseByID(ctx, courseID)
	if len(course.Enrollments) != 1 || course.Enrollments[0].StudentName != "Carlos" {
		t.Errorf("unexpected course enrollments %+v", course.Enrollments)
	}

	to := models.EnrollmentKey{StudentID: studentID, CourseID: otherCourseID}
	moved, err := repos.EnrollmentRepository.UpdateEnrollment(ctx, key, to)
	if err != nil {
		t.Fatalf("update enrollment: %v", err)
	}
	if moved.Key() != to || !moved.EnrollmentDate.Equal(enrollment.EnrollmentDate) {
		t.Errorf("update should keep the date: %+v", moved)
	}
	if _, err := repos.EnrollmentRepository.UpdateEnrollment(ctx, key, to); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("update of old key: expected ErrNotFound, got %v", err)
	}

	if err := repos.StudentRepository.DeleteStudent(ctx, studentID); !errors.Is(err, repositories.ErrStillReferenced) {
		t.Errorf("delete enrolled student: expected ErrStillReferenced, got %v", err)
	}

	if err := repos.EnrollmentRepository.DeleteEnrollment(ctx, to); err != nil {
		t.Fatalf("delete enrollment: %v", err)
	}
	if err := repos.EnrollmentRepository.DeleteEnrollment(ctx, to); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
	all, _ := repos.EnrollmentRepository.GetAllEnrollments(ctx)
	if len(all) != 0 {
		t.Errorf("expected no enrollments, got %d", len(all))
	}
}
