package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	plantRepo "plantbuddy/pkg/plant/repository"
	"plantbuddy/pkg/schedule/repository"
)

type SchedCtrl struct {
	repo   repository.ScheduleRepository
	plants plantRepo.PlantRepository
}

func New(repo repository.ScheduleRepository, plants plantRepo.PlantRepository) *SchedCtrl {
	return &SchedCtrl{repo: repo, plants: plants}
}

func (h *SchedCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	pid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad plant id"})
	}
	if _, err := h.plants.FindByID(uint(pid), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	activeOnly := c.QueryParam("all") != "1"
	out, err := h.repo.ListByPlant(uint(pid), activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Patch adjusts a schedule's cadence or active flag. Due-date advancement is
// the care engine's job; this is the management path only.
func (h *SchedCtrl) Patch(c echo.Context) error {
	uid := c.Get("uid").(string)
	sid, err := strconv.Atoi(c.Param("schedule_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad schedule id"})
	}
	var body struct {
		FrequencyDays *int  `json:"frequency_days"`
		IsActive      *bool `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.FrequencyDays != nil && *body.FrequencyDays < 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "frequency_days must be >= 1"})
	}

	sched, err := h.repo.FindByID(uint(sid))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if _, err := h.plants.FindByID(sched.PlantID, uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	if err := h.repo.PatchSettings(uint(sid), body.FrequencyDays, body.IsActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
