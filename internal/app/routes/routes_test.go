package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yigit/classroom/internal/app/controllers"
	"github.com/yigit/classroom/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterJSONTagNames()
}

// newRouter wires controllers without services; the requests below never
// reach a service.
func newRouter() http.Handler {
	r := gin.New()
	SetupRouter(r, Controllers{
		User:       controllers.NewUserController(nil),
		Profile:    controllers.NewProfileController(nil),
		Teacher:    controllers.NewTeacherController(nil),
		Course:     controllers.NewCourseController(nil),
		Student:    controllers.NewStudentController(nil),
		Enrollment: controllers.NewEnrollmentController(nil),
		System:     controllers.NewSystemController(nil, r.Routes),
	})
	return middleware.TrimTrailingSlash(r)
}

func TestRouter_EdgeCases(t *testing.T) {
	h := newRouter()

	cases := []struct {
		method, path, body string
		wantStatus         int
		wantBody           string
	}{
		{"GET", "/nope", "", http.StatusNotFound, `{"error":"Not found"}`},
		{"GET", "/enrollments/1/1", "", http.StatusMethodNotAllowed, `{"error":"Method not allowed"}`},
		{"POST", "/users/", "{}", http.StatusBadRequest, `{"error":"Missing data","fields":["email","password"]}`},
		{"GET", "/users/+1", "", http.StatusNotFound, `{"error":"User not found"}`},
		{"DELETE", "/courses/1e3/", "", http.StatusNotFound, `{"error":"Course not found"}`},
	}
	for _, c := range cases {
		req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != c.wantStatus || w.Body.String() != c.wantBody {
			t.Errorf("%s %s: got %d %s, want %d %s", c.method, c.path, w.Code, w.Body.String(), c.wantStatus, c.wantBody)
		}
	}
}

func TestRouter_SitemapAtRoot(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `{"method":"PUT","path":"/enrollments/:student_id/:course_id"}`) {
		t.Errorf("unexpected sitemap: %d %s", w.Code, w.Body.String())
	}
}
