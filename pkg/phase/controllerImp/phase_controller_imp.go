package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/phase/repository"
)

type PhaseCtrl struct{ repo repository.PhaseRepository }

func New(repo repository.PhaseRepository) *PhaseCtrl { return &PhaseCtrl{repo} }

func (h *PhaseCtrl) Create(c echo.Context) error {
	var body struct {
		PhaseID    string  `json:"phase_id"`
		CropCode   string  `json:"crop_code"`
		Farm       string  `json:"farm"`
		AreaHa     float64 `json:"area_ha"`
		SowingDate string  `json:"sowing_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.PhaseID == "" || body.CropCode == "" || body.Farm == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phase_id, crop_code and farm are required"})
	}
	sowing, err := time.Parse("2006-01-02", body.SowingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sowing_date must be YYYY-MM-DD"})
	}
	p := entities.FarmPhase{
		PhaseID:    body.PhaseID,
		CropCode:   body.CropCode,
		Farm:       body.Farm,
		AreaHa:     body.AreaHa,
		SowingDate: sowing,
	}
	if err := h.repo.Create(&p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PhaseCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "phase not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PhaseCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.QueryParam("archived") == "true")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PhaseCtrl) Archive(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.repo.Archive(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
