package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yigit/classroom/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterJSONTagNames()
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleAPIError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantBody   string
	}{
		{apperrors.NewConflictError("Email already exists"), http.StatusConflict, `{"message":"Email already exists"}`},
		{apperrors.NewAPIError("Bad thing", 0), http.StatusBadRequest, `{"message":"Bad thing"}`},
		{errors.New("boom"), http.StatusInternalServerError, `{"message":"Internal server error"}`},
	}
	for _, c := range cases {
		r := gin.New()
		r.GET("/", func(ctx *gin.Context) { HandleAPIError(ctx, c.err) })

		w := serve(r, httptest.NewRequest("GET", "/", nil))
		if w.Code != c.wantStatus || w.Body.String() != c.wantBody {
			t.Errorf("%v: got %d %s, want %d %s", c.err, w.Code, w.Body.String(), c.wantStatus, c.wantBody)
		}
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(*gin.Context) { panic("kaboom") })

	w := serve(r, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusInternalServerError || w.Body.String() != `{"message":"Internal server error"}` {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(r, httptest.NewRequest("GET", "/", nil))
	generated := w.Header().Get(requestIDHeader)
	if len(generated) != 36 || w.Body.String() != generated {
		t.Errorf("expected a generated uuid, got header %q body %q", generated, w.Body.String())
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	if got := serve(r, req).Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("expected client id to be kept, got %q", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(requestIDHeader, strings.Repeat("x", requestIDMaxLen+1))
	if got := serve(r, req).Header().Get(requestIDHeader); len(got) != 36 {
		t.Errorf("expected oversized id to be replaced, got %q", got)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Origin", "http://frontend.test")
	if got := serve(r, req).Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}

	r = gin.New()
	r.Use(CORS([]string{"http://allowed.test"}))
	r.GET("/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	req = httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Origin", "http://other.test")
	if w := serve(r, req); w.Code != http.StatusForbidden {
		t.Errorf("expected disallowed origin to be rejected, got %d", w.Code)
	}
}

type bindTarget struct {
	Name   *string `json:"name" binding:"required"`
	UserID *int64  `json:"user_id" binding:"required"`
}

func TestBindCreate(t *testing.T) {
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var body bindTarget
		if BindCreate(c, &body) {
			c.Status(http.StatusNoContent)
		}
	})

	cases := []struct {
		body       string
		wantStatus int
		wantBody   string
	}{
		{`{"name":"x","user_id":1}`, http.StatusNoContent, ""},
		{`{"name":"x"}`, http.StatusBadRequest, `{"error":"Missing data","fields":["user_id"]}`},
		{`{"name":null,"user_id":1}`, http.StatusBadRequest, `{"error":"Missing data","fields":["name"]}`},
		{``, http.StatusBadRequest, `{"error":"Missing data","fields":["name","user_id"]}`},
		{`{"name":`, http.StatusBadRequest, `{"error":"Invalid request body"}`},
	}
	for _, c := range cases {
		req := httptest.NewRequest("POST", "/", strings.NewReader(c.body))
		req.Header.Set("Content-Type", "application/json")
		w := serve(r, req)
		if w.Code != c.wantStatus || w.Body.String() != c.wantBody {
			t.Errorf("body %q: got %d %s, want %d %s", c.body, w.Code, w.Body.String(), c.wantStatus, c.wantBody)
		}
	}
}

func TestTrimTrailingSlash(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "root") })
	r.GET("/users", func(c *gin.Context) { c.String(http.StatusOK, "users") })
	h := TrimTrailingSlash(r)

	for path, want := range map[string]string{"/": "root", "/users": "users", "/users/": "users", "/users//": "users"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Errorf("%s: got %d %q, want %q", path, w.Code, w.Body.String(), want)
		}
	}
}
