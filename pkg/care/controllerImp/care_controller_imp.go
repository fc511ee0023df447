package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"plantbuddy/pkg/care/service"
)

type CareCtrl struct{ svc service.CareService }

func New(svc service.CareService) *CareCtrl { return &CareCtrl{svc} }

type actionReq struct {
	ScheduleID *uint  `json:"schedule_id"`
	ActionType string `json:"action_type"`
	Notes      string `json:"notes"`
}

func (h *CareCtrl) ListTasks(c echo.Context) error {
	uid := c.Get("uid").(string)
	ref := time.Now()
	// ?at=2024-01-10 pins the reference day, mainly for manual poking.
	if v := c.QueryParam("at"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad at date"})
		}
		ref = d
	}
	buckets, err := h.svc.ListTasks(uid, ref)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, buckets)
}

func (h *CareCtrl) ApplyAction(c echo.Context) error {
	uid := c.Get("uid").(string)
	pid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad plant id"})
	}
	var req actionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	entry, err := h.svc.ApplyAction(uid, uint(pid), service.ActionInput{
		ScheduleID: req.ScheduleID,
		ActionType: req.ActionType,
		Notes:      req.Notes,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *CareCtrl) UndoLastAction(c echo.Context) error {
	uid := c.Get("uid").(string)
	pid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad plant id"})
	}
	sched, err := h.svc.UndoLastAction(uid, uint(pid), time.Now())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, sched)
}

func (h *CareCtrl) ListHistory(c echo.Context) error {
	uid := c.Get("uid").(string)
	pid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad plant id"})
	}
	logs, err := h.svc.ListHistory(uid, uint(pid))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}

// jsonError maps service outcomes onto statuses. Soft outcomes (nothing to
// undo, no matching schedule) keep their message; everything unrecognized is
// a storage failure and stays generic.
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrPlantNotFound), errors.Is(err, service.ErrScheduleNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrPlantArchived),
		errors.Is(err, service.ErrNothingToUndo),
		errors.Is(err, service.ErrConcurrentModification):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNoMatchingSchedule), errors.Is(err, service.ErrInvalidActionType):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
