package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/intake/repository"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/week"
)

type httpCtrl struct{ repo repository.IntakeRepository }

func New(repo repository.IntakeRepository) *httpCtrl { return &httpCtrl{repo: repo} }

func (h *httpCtrl) Register(e *echo.Echo) {
	e.POST("/phases/:id/attendance", h.createAttendance)
	e.GET("/phases/:id/attendance", h.listAttendance)
	e.POST("/phases/:id/feeding", h.createFeeding)
	e.GET("/phases/:id/feeding", h.listFeeding)
	e.POST("/phases/:id/harvest-logs", h.createHarvestLog)
	e.GET("/phases/:id/harvest-logs", h.listHarvestLogs)

	e.PUT("/overrides", h.upsertOverride)
	e.GET("/overrides", h.listOverrides)
	e.DELETE("/overrides/:id", h.deleteOverride)

	e.PUT("/farm-rates/:farm", h.putFarmRate)
	e.GET("/farm-rates", h.listFarmRates)
}

func (h *httpCtrl) createAttendance(c echo.Context) error {
	phaseID, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid phase id"})
	}
	var body struct {
		Date        string  `json:"date"`
		Activity    string  `json:"activity"`
		NoOfCasuals float64 `json:"no_of_casuals"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if body.Activity == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "activity is required"})
	}
	rec := entities.AttendanceRecord{FarmPhaseID: phaseID, Date: date, Activity: body.Activity, NoOfCasuals: body.NoOfCasuals}
	if err := h.repo.CreateAttendance(&rec); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *httpCtrl) listAttendance(c echo.Context) error {
	phaseID, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid phase id"})
	}
	from, to := rangeParams(c)
	out, err := h.repo.ListAttendance(phaseID, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) createFeeding(c echo.Context) error {
	phaseID, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid phase id"})
	}
	var body struct {
		Date     string  `json:"date"`
		Product  string  `json:"product"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if body.Product == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product is required"})
	}
	rec := entities.FeedingRecord{FarmPhaseID: phaseID, Date: date, Product: body.Product, Quantity: body.Quantity, Unit: body.Unit}
	if err := h.repo.CreateFeeding(&rec); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *httpCtrl) listFeeding(c echo.Context) error {
	phaseID, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid phase id"})
	}
	from, to := rangeParams(c)
	out, err := h.repo.ListFeeding(phaseID, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) createHarvestLog(c echo.Context) error {
	phaseID, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid phase id"})
	}
	var body struct {
		Date       string  `json:"date"`
		QuantityKg float64 `json:"quantity_kg"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rec := entities.HarvestLog{FarmPhaseID: phaseID, Date: date, QuantityKg: body.QuantityKg}
	if err := h.repo.CreateHarvestLog(&rec); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *httpCtrl) listHarvestLogs(c echo.Context) error {
	phaseID, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid phase id"})
	}
	from, to := rangeParams(c)
	out, err := h.repo.ListHarvestLogs(phaseID, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) upsertOverride(c echo.Context) error {
	var body struct {
		FarmPhaseID uint   `json:"farm_phase_id"`
		SOPID       uint   `json:"sop_id"`
		SOPType     string `json:"sop_type"`
		WeekStart   string `json:"week_start"`
		Action      string `json:"action"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.FarmPhaseID == 0 || body.SOPID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "farm_phase_id and sop_id are required"})
	}
	if body.SOPType != entities.SOPTypeLabor && body.SOPType != entities.SOPTypeNutrition {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sop_type must be labor or nutrition"})
	}
	if body.Action != entities.OverrideAdd && body.Action != entities.OverrideRemove {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "action must be add or remove"})
	}
	ws, err := parseDate(body.WeekStart)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	o := entities.PhaseActivityOverride{
		FarmPhaseID: body.FarmPhaseID,
		SOPID:       body.SOPID,
		SOPType:     body.SOPType,
		WeekStart:   week.RecoverMonday(ws),
		Action:      body.Action,
	}
	if err := h.repo.UpsertOverride(&o); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, o)
}

func (h *httpCtrl) listOverrides(c echo.Context) error {
	var phaseID uint
	if raw := c.QueryParam("phaseId"); raw != "" {
		v, err := parseUint(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid phaseId"})
		}
		phaseID = v
	}
	var ws *time.Time
	if raw := c.QueryParam("week"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		m := week.RecoverMonday(t)
		ws = &m
	}
	out, err := h.repo.ListOverrides(phaseID, ws)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) deleteOverride(c echo.Context) error {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	n, err := h.repo.DeleteOverride(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": n})
}

func (h *httpCtrl) putFarmRate(c echo.Context) error {
	farm := c.Param("farm")
	var body struct {
		RatePerDay float64 `json:"rate_per_day"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.RatePerDay <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rate_per_day must be positive"})
	}
	row, err := h.repo.PutFarmRate(farm, body.RatePerDay)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, row)
}

func (h *httpCtrl) listFarmRates(c echo.Context) error {
	out, err := h.repo.ListFarmRates()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint(v), err
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errRequiredDate
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errBadDate
	}
	return t, nil
}

var (
	errRequiredDate = errors.New("date is required (YYYY-MM-DD)")
	errBadDate      = errors.New("date must be YYYY-MM-DD")
)

func rangeParams(c echo.Context) (from, to *time.Time) {
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = &t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = &t
		}
	}
	return
}
