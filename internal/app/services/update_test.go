package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/pkg/apperrors"
)

func ref[T any](v T) *T { return &v }

func TestUserService_UpdateUser_KeepsOmittedFields(t *testing.T) {
	store := newMockUserStore()
	svc := NewUserService(store)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, dto.CreateUserRequest{Email: ref("a@x.com"), Password: ref("p")})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if _, err := svc.UpdateUser(ctx, user.ID, dto.UpdateUserRequest{Password: ref("q")}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	got := store.users[user.ID]
	if got.Email != "a@x.com" || got.Password != "q" {
		t.Errorf("password-only update stored %+v", got)
	}

	if _, err := svc.UpdateUser(ctx, user.ID, dto.UpdateUserRequest{Email: ref("b@x.com")}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	got = store.users[user.ID]
	if got.Email != "b@x.com" || got.Password != "q" {
		t.Errorf("email-only update stored %+v", got)
	}

	updated, err := svc.UpdateUser(ctx, user.ID, dto.UpdateUserRequest{})
	if err != nil {
		t.Fatalf("empty UpdateUser: %v", err)
	}
	if updated.Email != "b@x.com" || store.users[user.ID] != got {
		t.Errorf("empty update changed the row: %+v", store.users[user.ID])
	}
}

func TestUserService_UpdateUser_Errors(t *testing.T) {
	svc := NewUserService(newMockUserStore())
	ctx := context.Background()

	a, _ := svc.CreateUser(ctx, dto.CreateUserRequest{Email: ref("a@x.com"), Password: ref("p")})
	if _, err := svc.CreateUser(ctx, dto.CreateUserRequest{Email: ref("b@x.com"), Password: ref("p")}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := svc.UpdateUser(ctx, a.ID, dto.UpdateUserRequest{Email: ref("b@x.com")})
	if apiErr, ok := err.(*apperrors.APIError); !ok || apiErr.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for taken email, got %v", err)
	}
	if _, err := svc.UpdateUser(ctx, 99, dto.UpdateUserRequest{Email: ref("c@x.com")}); !apperrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestProfileService_UpdateProfile_KeepsOmittedFields(t *testing.T) {
	store := newMockProfileStore()
	svc := NewProfileService(store)
	ctx := context.Background()

	profile, err := svc.CreateProfile(ctx, dto.CreateProfileRequest{Bio: ref("Soy Alice"), UserID: ref(int64(1))})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, profile.ID, dto.UpdateProfileRequest{Bio: ref("")}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got := store.profiles[profile.ID]; got.Bio != "" || got.UserID != 1 {
		t.Errorf("bio-only update stored %+v", got)
	}

	if _, err := svc.UpdateProfile(ctx, profile.ID, dto.UpdateProfileRequest{UserID: ref(int64(2))}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got := store.profiles[profile.ID]; got.Bio != "" || got.UserID != 2 {
		t.Errorf("user_id-only update stored %+v", got)
	}
}

func TestTeacherService_UpdateTeacher(t *testing.T) {
	store := newMockTeacherStore()
	svc := NewTeacherService(store)
	ctx := context.Background()

	teacher, _ := svc.CreateTeacher(ctx, dto.CreateTeacherRequest{Name: ref("Profesor X")})

	if _, err := svc.UpdateTeacher(ctx, teacher.ID, dto.UpdateTeacherRequest{}); err != nil {
		t.Fatalf("empty UpdateTeacher: %v", err)
	}
	if got := store.teachers[teacher.ID].Name; got != "Profesor X" {
		t.Errorf("empty update changed name to %q", got)
	}

	updated, err := svc.UpdateTeacher(ctx, teacher.ID, dto.UpdateTeacherRequest{Name: ref("Profesora Y")})
	if err != nil {
		t.Fatalf("UpdateTeacher: %v", err)
	}
	if updated.Name != "Profesora Y" || store.teachers[teacher.ID].Name != "Profesora Y" {
		t.Errorf("unexpected teacher %+v", updated)
	}
}

func TestTeacherService_DeleteReferencedTeacher(t *testing.T) {
	store := newMockTeacherStore()
	svc := NewTeacherService(store)
	ctx := context.Background()

	id, _ := store.CreateTeacher(ctx, &models.Teacher{Name: "Profesor X", Courses: []models.Course{{ID: 1, Title: "Matemáticas"}}})
	err := svc.DeleteTeacher(ctx, id)
	if apiErr, ok := err.(*apperrors.APIError); !ok || apiErr.StatusCode != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestStudentService_UpdateStudent(t *testing.T) {
	store := newMockStudentStore()
	svc := NewStudentService(store)
	ctx := context.Background()

	student, _ := svc.CreateStudent(ctx, dto.CreateStudentRequest{Name: ref("Carlos")})

	if _, err := svc.UpdateStudent(ctx, student.ID, dto.UpdateStudentRequest{}); err != nil {
		t.Fatalf("empty UpdateStudent: %v", err)
	}
	if got := store.students[student.ID].Name; got != "Carlos" {
		t.Errorf("empty update changed name to %q", got)
	}

	if _, err := svc.UpdateStudent(ctx, student.ID, dto.UpdateStudentRequest{Name: ref("Lucía")}); err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}
	if got := store.students[student.ID].Name; got != "Lucía" {
		t.Errorf("expected Lucía, got %q", got)
	}
}

func TestDeleteTwice(t *testing.T) {
	ctx := context.Background()

	users := NewUserService(newMockUserStore())
	u, _ := users.CreateUser(ctx, dto.CreateUserRequest{Email: ref("a@x.com"), Password: ref("p")})
	profiles := NewProfileService(newMockProfileStore())
	p, _ := profiles.CreateProfile(ctx, dto.CreateProfileRequest{Bio: ref("hola"), UserID: &u.ID})
	teachers := NewTeacherService(newMockTeacherStore())
	tc, _ := teachers.CreateTeacher(ctx, dto.CreateTeacherRequest{Name: ref("Profesor X")})
	students := NewStudentService(newMockStudentStore())
	s, _ := students.CreateStudent(ctx, dto.CreateStudentRequest{Name: ref("Carlos")})

	cases := map[string]func() error{
		"user":    func() error { return users.DeleteUser(ctx, u.ID) },
		"profile": func() error { return profiles.DeleteProfile(ctx, p.ID) },
		"teacher": func() error { return teachers.DeleteTeacher(ctx, tc.ID) },
		"student": func() error { return students.DeleteStudent(ctx, s.ID) },
	}
	for name, del := range cases {
		if err := del(); err != nil {
			t.Errorf("%s: first delete failed: %v", name, err)
		}
		if err := del(); !apperrors.IsNotFound(err) {
			t.Errorf("%s: expected not found on second delete, got %v", name, err)
		}
	}
}
