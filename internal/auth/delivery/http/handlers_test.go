package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lifeos/internal/auth"
	"lifeos/internal/model"
	"lifeos/pkg/log"
)

type fakeUseCase struct {
	auth.UseCase
	loggedOut string
}

func (f *fakeUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.RegisterOutput, error) {
	if input.Username == "taken" {
		return auth.RegisterOutput{}, auth.ErrUsernameTaken
	}
	return auth.RegisterOutput{User: model.User{ID: 1, Username: input.Username, Timezone: "UTC"}}, nil
}

func (f *fakeUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	if input.Password != "secret-pass" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}
	return auth.LoginOutput{
		User:      model.User{ID: 1, Username: input.Username},
		Token:     "tok-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (f *fakeUseCase) Logout(ctx context.Context, token string) error {
	f.loggedOut = token
	return nil
}

func newTestRouter(uc auth.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc, "lifeos_session", false)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	return r
}

func post(r http.Handler, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	if w := post(r, "/api/auth/register", `{"username":"ada","password":"secret-pass"}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := post(r, "/api/auth/register", `{"username":"taken","password":"secret-pass"}`, nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if w := post(r, "/api/auth/register", `not json`, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLogin_SetsCookie(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := post(r, "/api/auth/login", `{"username":"ada","password":"secret-pass"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["token"] != "tok-1" {
		t.Errorf("unexpected token: %v", body["token"])
	}
	if cookie := w.Header().Get("Set-Cookie"); !strings.Contains(cookie, "lifeos_session=tok-1") || !strings.Contains(cookie, "HttpOnly") {
		t.Errorf("unexpected cookie: %q", cookie)
	}

	if w := post(r, "/api/auth/login", `{"username":"ada","password":"nope"}`, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLogout_UsesBearerToken(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := post(r, "/api/auth/logout", ``, map[string]string{"Authorization": "Bearer tok-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.loggedOut != "tok-1" {
		t.Errorf("expected tok-1 to be revoked, got %q", uc.loggedOut)
	}
}
