package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"plantbuddy/entities"
	"plantbuddy/pkg/careprofile"
	"plantbuddy/pkg/plant/repository"
	schedRepo "plantbuddy/pkg/schedule/repository"
)

type PlantCtrl struct {
	repo      repository.PlantRepository
	schedules schedRepo.ScheduleRepository
	book      careprofile.Book
	loc       *time.Location
}

func New(repo repository.PlantRepository, schedules schedRepo.ScheduleRepository, book careprofile.Book, loc *time.Location) *PlantCtrl {
	return &PlantCtrl{repo: repo, schedules: schedules, book: book, loc: loc}
}

type createReq struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	CareLevel string `json:"care_level"` // easy|moderate|hard
	Enroll    bool   `json:"enroll"`     // seed care schedules from the profile book
}

func (h *PlantCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	if req.CareLevel == "" {
		req.CareLevel = "easy"
	}
	switch req.CareLevel {
	case "easy", "moderate", "hard":
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "care_level must be easy, moderate or hard"})
	}

	p := &entities.Plant{UserID: uid, Name: req.Name, Species: req.Species, CareLevel: req.CareLevel}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if req.Enroll {
		seeded := h.book.Seed(p.PlantID, p.Species, p.CareLevel, time.Now().In(h.loc))
		if err := h.schedules.BulkInsert(seeded); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]any{"plant": p, "schedules": seeded})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlantCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad plant id"})
	}
	p, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// List returns the living jungle by default; ?dead=1 returns the graveyard.
func (h *PlantCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	dead := c.QueryParam("dead") == "1"
	out, err := h.repo.List(uid, dead)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Archive marks a plant dead. Its schedules are left untouched; the task
// projection excludes dead plants' schedules at read time.
func (h *PlantCtrl) Archive(c echo.Context) error { return h.setDead(c, true) }

// Revive brings a plant back from the graveyard.
func (h *PlantCtrl) Revive(c echo.Context) error { return h.setDead(c, false) }

func (h *PlantCtrl) setDead(c echo.Context, dead bool) error {
	uid := c.Get("uid").(string)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad plant id"})
	}
	if err := h.repo.SetDead(uint(id), uid, dead); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"plant_id": id, "is_dead": dead})
}
