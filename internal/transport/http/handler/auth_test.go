package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow-api/internal/domain"
	"github.com/taskflowhq/taskflow-api/internal/transport/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthUsecase implements the unexported authUsecaser interface via
// method matching.
type fakeAuthUsecase struct {
	signup      func(ctx context.Context, name, email, password string) (*domain.User, string, error)
	login       func(ctx context.Context, email, password string) (*domain.User, string, error)
	currentUser func(ctx context.Context, userID string) (*domain.User, error)
}

func (f *fakeAuthUsecase) Signup(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	return f.signup(ctx, name, email, password)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return f.login(ctx, email, password)
}

func (f *fakeAuthUsecase) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return f.currentUser(ctx, userID)
}

func newAuthEngine(uc *fakeAuthUsecase, userID string) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewAuthHandler(uc, logger)

	r := gin.New()
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/me", func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		h.Me(c)
	})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body.Message
}

// ---- Signup ----

func TestSignup_InvalidJSON_Returns400(t *testing.T) {
	r := newAuthEngine(&fakeAuthUsecase{}, "")
	w := postJSON(t, r, "/api/auth/signup", `{bad json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignup_MissingFields_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _, _, _ string) (*domain.User, string, error) {
			return nil, "", domain.ErrMissingFields
		},
	}
	w := postJSON(t, newAuthEngine(uc, ""), "/api/auth/signup", `{"email":"a@x.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if got := message(t, w); got != "Missing fields" {
		t.Errorf("message = %q, want %q", got, "Missing fields")
	}
}

func TestSignup_WeakPassword_Returns400WithScore(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _, _, _ string) (*domain.User, string, error) {
			return nil, "", &domain.WeakPasswordError{Score: 2}
		},
	}
	w := postJSON(t, newAuthEngine(uc, ""), "/api/auth/signup",
		`{"name":"Alice","email":"a@x.com","password":"abc123"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	var body struct {
		Message string `json:"message"`
		Score   *int   `json:"score"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Password is too weak" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Score == nil || *body.Score != 2 {
		t.Errorf("score = %v, want 2", body.Score)
	}
}

func TestSignup_TooShortPassword_DistinctMessage(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _, _, _ string) (*domain.User, string, error) {
			return nil, "", &domain.WeakPasswordError{Score: 4, TooShort: true}
		},
	}
	w := postJSON(t, newAuthEngine(uc, ""), "/api/auth/signup",
		`{"name":"Alice","email":"a@x.com","password":"aB1!"}`)

	if got := message(t, w); got != "Password is too short" {
		t.Errorf("message = %q, want %q", got, "Password is too short")
	}
}

func TestSignup_EmailTaken_Returns409(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _, _, _ string) (*domain.User, string, error) {
			return nil, "", domain.ErrEmailTaken
		},
	}
	w := postJSON(t, newAuthEngine(uc, ""), "/api/auth/signup",
		`{"name":"Alice","email":"a@x.com","password":"Abc123!@"}`)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	if got := message(t, w); got != "Email already in use" {
		t.Errorf("message = %q", got)
	}
}

func TestSignup_Success_ReturnsUserAndToken(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, name, email, _ string) (*domain.User, string, error) {
			return &domain.User{ID: "user-1", Name: name, Email: email, PasswordHash: "secret-hash"}, "signed.jwt.here", nil
		},
	}
	w := postJSON(t, newAuthEngine(uc, ""), "/api/auth/signup",
		`{"name":"Alice","email":"a@x.com","password":"Abc123!@"}`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	var body struct {
		User struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.User.Name != "Alice" || body.User.Email != "a@x.com" {
		t.Errorf("user = %+v", body.User)
	}
	if body.Token != "signed.jwt.here" {
		t.Errorf("token = %q", body.Token)
	}
	if strings.Contains(w.Body.String(), "secret-hash") {
		t.Error("password hash leaked into the response")
	}
}

func TestSignup_InternalError_Returns500Opaque(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _, _, _ string) (*domain.User, string, error) {
			return nil, "", errors.New("pq: connection reset")
		},
	}
	w := postJSON(t, newAuthEngine(uc, ""), "/api/auth/signup",
		`{"name":"Alice","email":"a@x.com","password":"Abc123!@"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if got := message(t, w); got != "Server error" {
		t.Errorf("message = %q, internals must stay opaque", got)
	}
}

// ---- Login ----

func TestLogin_InvalidCredentials_Returns401(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	w := postJSON(t, newAuthEngine(uc, ""), "/api/auth/login",
		`{"email":"a@x.com","password":"wrong"}`)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if got := message(t, w); got != "Invalid credentials" {
		t.Errorf("message = %q, want %q", got, "Invalid credentials")
	}
}

func TestLogin_MissingFields_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (*domain.User, string, error) {
			return nil, "", domain.ErrMissingFields
		},
	}
	w := postJSON(t, newAuthEngine(uc, ""), "/api/auth/login", `{"email":"a@x.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLogin_Success_ReturnsUserAndToken(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, email, _ string) (*domain.User, string, error) {
			return &domain.User{ID: "user-1", Name: "Alice", Email: email}, "signed.jwt.here", nil
		},
	}
	w := postJSON(t, newAuthEngine(uc, ""), "/api/auth/login",
		`{"email":"a@x.com","password":"Abc123!@"}`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "signed.jwt.here") {
		t.Errorf("body %q missing token", w.Body.String())
	}
}

// ---- Me ----

func TestMe_NoIdentity_Returns401(t *testing.T) {
	uc := &fakeAuthUsecase{
		currentUser: func(_ context.Context, userID string) (*domain.User, error) {
			if userID == "" {
				return nil, domain.ErrUnauthorized
			}
			return nil, errors.New("unexpected")
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	newAuthEngine(uc, "").ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestMe_UserGone_Returns404(t *testing.T) {
	uc := &fakeAuthUsecase{
		currentUser: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	newAuthEngine(uc, "user-1").ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestMe_Success_ReturnsProfileOnly(t *testing.T) {
	uc := &fakeAuthUsecase{
		currentUser: func(_ context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Name: "Alice", Email: "a@x.com", PasswordHash: "secret-hash"}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	newAuthEngine(uc, "user-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"a@x.com"`) {
		t.Errorf("body %q missing email", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret-hash") {
		t.Error("password hash leaked into the response")
	}
}
