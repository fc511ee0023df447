package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"plantbuddy/entities"
	"plantbuddy/pkg/care/service"
)

// stubService cans responses so the controller's wiring and error mapping
// can be exercised without a database.
type stubService struct {
	buckets entities.TaskBuckets
	entry   *entities.ActivityLog
	sched   *entities.CareSchedule
	logs    []entities.ActivityLog
	err     error

	gotAction service.ActionInput
}

func (s *stubService) ListTasks(string, time.Time) (entities.TaskBuckets, error) {
	return s.buckets, s.err
}

func (s *stubService) ApplyAction(_ string, _ uint, in service.ActionInput) (*entities.ActivityLog, error) {
	s.gotAction = in
	return s.entry, s.err
}

func (s *stubService) UndoLastAction(string, uint, time.Time) (*entities.CareSchedule, error) {
	return s.sched, s.err
}

func (s *stubService) ListHistory(string, uint) ([]entities.ActivityLog, error) {
	return s.logs, s.err
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "U_TEST")
	return c, rec
}

func TestApplyActionStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"plant not found", service.ErrPlantNotFound, http.StatusNotFound},
		{"schedule not found", service.ErrScheduleNotFound, http.StatusNotFound},
		{"archived", service.ErrPlantArchived, http.StatusConflict},
		{"concurrent", service.ErrConcurrentModification, http.StatusConflict},
		{"no matching schedule", service.ErrNoMatchingSchedule, http.StatusUnprocessableEntity},
		{"invalid action", service.ErrInvalidActionType, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := New(&stubService{err: tc.err})
			e := echo.New()
			c, rec := newContext(e, http.MethodPost, "/plants/1/actions", `{"action_type":"WATER"}`)
			c.SetParamNames("id")
			c.SetParamValues("1")

			if err := h.ApplyAction(c); err != nil {
				t.Fatalf("handler: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
				t.Fatalf("error envelope = %q", rec.Body.String())
			}
		})
	}
}

func TestApplyActionPassesInputThrough(t *testing.T) {
	sid := uint(7)
	stub := &stubService{entry: &entities.ActivityLog{LogID: 1, ActionType: entities.ActionWater, ScheduleID: &sid}}
	h := New(stub)
	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "/plants/3/actions",
		`{"schedule_id":7,"action_type":"WATER","notes":"rainwater"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.ApplyAction(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if stub.gotAction.ScheduleID == nil || *stub.gotAction.ScheduleID != 7 {
		t.Fatalf("schedule id = %v", stub.gotAction.ScheduleID)
	}
	if stub.gotAction.ActionType != entities.ActionWater || stub.gotAction.Notes != "rainwater" {
		t.Fatalf("input = %+v", stub.gotAction)
	}
}

func TestUndoNothingToUndoIsConflict(t *testing.T) {
	h := New(&stubService{err: service.ErrNothingToUndo})
	e := echo.New()
	c, rec := newContext(e, http.MethodPost, "/plants/1/undo", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UndoLastAction(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestListTasksBadReferenceDate(t *testing.T) {
	h := New(&stubService{})
	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/tasks?at=tomorrow", "")

	if err := h.ListTasks(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListTasksShape(t *testing.T) {
	stub := &stubService{buckets: entities.TaskBuckets{
		Overdue:  []entities.CareTask{{ScheduleID: 1, TaskType: entities.TaskWater, IsOverdue: true}},
		Today:    []entities.CareTask{},
		Upcoming: []entities.CareTask{},
	}}
	h := New(stub)
	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/tasks", "")

	if err := h.ListTasks(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Overdue  []entities.CareTask `json:"overdue"`
		Today    []entities.CareTask `json:"today"`
		Upcoming []entities.CareTask `json:"upcoming"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	if len(body.Overdue) != 1 || body.Today == nil || body.Upcoming == nil {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
