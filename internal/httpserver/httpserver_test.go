package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authRepo "lifeos/internal/auth/repository/sqlite"
	authUC "lifeos/internal/auth/usecase"
	calendarUC "lifeos/internal/calendar/usecase"
	itemRepo "lifeos/internal/item/repository/sqlite"
	itemUC "lifeos/internal/item/usecase"
	listRepo "lifeos/internal/list/repository/sqlite"
	listUC "lifeos/internal/list/usecase"
	"lifeos/internal/model"
	noteRepo "lifeos/internal/note/repository/sqlite"
	noteUC "lifeos/internal/note/usecase"
	"lifeos/pkg/database"
	"lifeos/pkg/datemath"
	"lifeos/pkg/log"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	l := log.NewNop()
	db := database.OpenTest(t, model.All()...)
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	items := itemRepo.New(db, l)
	srv, err := New(l, Config{
		Logger:          l,
		Port:            8080,
		Mode:            "test",
		Environment:     "test",
		DB:              db,
		AuthUseCase:     authUC.New(authRepo.New(db, l), l, authUC.Config{}),
		ItemUseCase:     itemUC.New(items, l, parser),
		CalendarUseCase: calendarUC.New(l, items, nil, nil, parser),
		NoteUseCase:     noteUC.New(noteRepo.New(db, l), l),
		ListUseCase:     listUC.New(listRepo.New(db, l), l),
	})
	require.NoError(t, err)
	return srv.Handler()
}

func call(t *testing.T, h http.Handler, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w.Code, out
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		code, _ := call(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, code, path)
	}
}

func TestAPI_RequiresSession(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/api/items", "/api/notes", "/api/lists", "/api/calendar/items?date=2099-01-01", "/api/auth/me"} {
		code, _ := call(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, path)
	}
}

func TestAPI_EndToEnd(t *testing.T) {
	h := newTestServer(t)

	code, _ := call(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "ada", "password": "correct-horse"})
	require.Equal(t, http.StatusCreated, code)

	code, login := call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ada", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, code)
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	code, _ = call(t, h, http.MethodPost, "/api/items", token, map[string]any{"title": "File taxes", "dueDate": "2099-01-01"})
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, h, http.MethodPost, "/api/items", token, map[string]any{"title": "Someday"})
	require.Equal(t, http.StatusCreated, code)

	code, day := call(t, h, http.MethodGet, "/api/calendar/items?date=2099-01-01&today=2099-01-01", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, day["scheduledNoTime"], 1)
	assert.Len(t, day["backlog"], 1)
	assert.Len(t, day["overdue"], 0)

	code, events := call(t, h, http.MethodGet, "/api/calendar/events?date=2099-01-01", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, events["events"], 0)

	code, _ = call(t, h, http.MethodPost, "/api/notes", token, map[string]any{"title": "Ideas"})
	require.Equal(t, http.StatusCreated, code)

	code, created := call(t, h, http.MethodPost, "/api/lists", token, map[string]any{"title": "Groceries", "entries": []string{"Milk"}})
	require.Equal(t, http.StatusCreated, code)
	lst, _ := created["list"].(map[string]any)
	require.NotNil(t, lst)
	assert.EqualValues(t, 1, lst["total"])

	code, _ = call(t, h, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, h, http.MethodGet, "/api/items", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
