package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/repositories"
	"github.com/yigit/classroom/internal/pkg/apperrors"
)

func TestTranslateError(t *testing.T) {
	wrap := func(sentinel error) error { return fmt.Errorf("error creating row: %w", sentinel) }

	cases := []struct {
		entity     string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{models.EntityUser, repositories.ErrNotFound, http.StatusNotFound, "User not found"},
		{models.EntityUser, wrap(repositories.ErrDuplicate), http.StatusConflict, "Email already exists"},
		{models.EntityProfile, wrap(repositories.ErrDuplicate), http.StatusConflict, "Profile for this user already exists"},
		{models.EntityTeacher, wrap(repositories.ErrDuplicate), http.StatusConflict, "Teacher already exists"},
		{models.EntityCourse, wrap(repositories.ErrMissingReference), http.StatusConflict, "Course references a missing row"},
		{models.EntityStudent, wrap(repositories.ErrStillReferenced), http.StatusConflict, "Student is still referenced"},
	}
	for _, c := range cases {
		err := translateError(c.entity, c.err)
		var apiErr *apperrors.APIError
		if !errors.As(err, &apiErr) {
			t.Errorf("%s/%v: expected APIError, got %T", c.entity, c.err, err)
			continue
		}
		if apiErr.StatusCode != c.wantStatus || apiErr.Message != c.wantMsg {
			t.Errorf("%s/%v: got %d %q, want %d %q", c.entity, c.err, apiErr.StatusCode, apiErr.Message, c.wantStatus, c.wantMsg)
		}
	}
}

func TestTranslateError_PassThrough(t *testing.T) {
	if translateError(models.EntityUser, nil) != nil {
		t.Error("nil should stay nil")
	}

	raw := errors.New("connection reset")
	err := translateError(models.EntityUser, raw)
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		t.Error("unknown errors must not become APIErrors")
	}
	if !errors.Is(err, raw) {
		t.Error("unknown errors must stay wrapped")
	}
}
