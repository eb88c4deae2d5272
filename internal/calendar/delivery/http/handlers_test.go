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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeos/internal/calendar"
	"lifeos/internal/model"
	"lifeos/pkg/gcalendar"
	"lifeos/pkg/log"
)

type fakeUseCase struct {
	calendar.UseCase

	itemsInput calendar.ItemsInput
	createErr  error
}

func (f *fakeUseCase) Items(ctx context.Context, sc model.Scope, input calendar.ItemsInput) (calendar.ItemsOutput, error) {
	f.itemsInput = input
	if input.Date == "" {
		return calendar.ItemsOutput{}, calendar.ErrMissingDate
	}
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	habit := model.Item{
		ID:           1,
		Title:        "Run",
		ItemType:     model.ItemTypeHabit,
		ScheduleType: model.ScheduleDaily,
		Completions:  []model.ItemCompletion{{CompletionDate: "2025-01-10"}},
	}
	task := model.Item{ID: 2, Title: "Report", ItemType: model.ItemTypeTask, State: model.ItemStateActive, DueDate: &date, DueTime: "09:00", IsOverdue: true}
	return calendar.ItemsOutput{
		Date:  date,
		Today: date.AddDate(0, 0, 1),
		Buckets: calendar.Buckets{
			Habits:    []model.Item{habit},
			Overdue:   []model.Item{task},
			Scheduled: []model.Item{task},
		},
	}, nil
}

func (f *fakeUseCase) Events(ctx context.Context, sc model.Scope, input calendar.EventsInput) (calendar.EventsOutput, error) {
	return calendar.EventsOutput{Events: []gcalendar.Event{{ID: "e1", Summary: "Standup", StartTime: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}}}, nil
}

func (f *fakeUseCase) CreateEvent(ctx context.Context, sc model.Scope, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	if f.createErr != nil {
		return calendar.CreateEventOutput{}, f.createErr
	}
	return calendar.CreateEventOutput{Event: gcalendar.Event{ID: "e2", Summary: input.Summary}}, nil
}

func newTestRouter(uc calendar.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: 1}))
		c.Next()
	})
	r.GET("/api/calendar/items", h.Items)
	r.GET("/api/calendar/events", h.Events)
	r.POST("/api/calendar/events", h.CreateEvent)
	return r
}

func serve(r http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestItems_MissingDateIs400(t *testing.T) {
	w, body := serve(newTestRouter(&fakeUseCase{}), httptest.NewRequest(http.MethodGet, "/api/calendar/items", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "date is required", body["error"])
}

func TestItems_ResponseShape(t *testing.T) {
	uc := &fakeUseCase{}
	w, body := serve(newTestRouter(uc), httptest.NewRequest(http.MethodGet, "/api/calendar/items?date=2025-01-10&today=2025-01-11", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-01-11", uc.itemsInput.Today)

	for _, key := range []string{"reminders", "overdue", "scheduled", "scheduledNoTime", "pinned", "backlog", "habits"} {
		_, ok := body[key].([]any)
		assert.True(t, ok, "bucket %s should be an array", key)
	}

	habits := body["habits"].([]any)
	require.Len(t, habits, 1)
	habit := habits[0].(map[string]any)
	assert.Equal(t, "Run", habit["title"])
	assert.Equal(t, true, habit["completedForDate"])

	overdue := body["overdue"].([]any)
	scheduled := body["scheduled"].([]any)
	require.Len(t, overdue, 1)
	require.Len(t, scheduled, 1)
	assert.Equal(t, "2025-01-10", overdue[0].(map[string]any)["dueDate"])
	assert.Equal(t, false, scheduled[0].(map[string]any)["completedForDate"])
}

func TestEvents(t *testing.T) {
	w, body := serve(newTestRouter(&fakeUseCase{}), httptest.NewRequest(http.MethodGet, "/api/calendar/events?date=2025-01-10", nil))
	require.Equal(t, http.StatusOK, w.Code)
	events := body["events"].([]any)
	require.Len(t, events, 1)
	assert.Equal(t, "Standup", events[0].(map[string]any)["summary"])
}

func TestCreateEvent(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/events", strings.NewReader(`{"summary":"Offsite","date":"2025-01-10"}`))
	req.Header.Set("Content-Type", "application/json")
	w, body := serve(newTestRouter(&fakeUseCase{}), req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Offsite", body["event"].(map[string]any)["summary"])

	req = httptest.NewRequest(http.MethodPost, "/api/calendar/events", strings.NewReader(`{"summary":"Offsite","date":"2025-01-10"}`))
	w, _ = serve(newTestRouter(&fakeUseCase{createErr: calendar.ErrCalendarNotConfigured}), req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
