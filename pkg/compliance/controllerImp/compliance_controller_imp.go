package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/controller"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/service"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/export"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/week"
)

type complianceCtrl struct{ svc service.ComplianceService }

func New(svc service.ComplianceService) controller.ComplianceController {
	return &complianceCtrl{svc}
}

func (h *complianceCtrl) Weekly(c echo.Context) error {
	ws, err := weekParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	phaseIDs, err := phaseIDsParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	farm := c.QueryParam("farm")
	live := c.QueryParam("live") == "true"

	resp, err := h.svc.Weekly(ws, phaseIDs, farm, live)
	if err != nil {
		if errors.Is(err, service.ErrNoPhases) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *complianceCtrl) SnapshotMeta(c echo.Context) error {
	ws, err := weekParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	meta, err := h.svc.SnapshotMeta(ws)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, meta)
}

func (h *complianceCtrl) SaveSnapshot(c echo.Context) error {
	var body struct {
		Week     string `json:"week"`
		PhaseIDs []uint `json:"phaseIds"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	ws, err := parseWeek(body.Week)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if len(body.PhaseIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phaseIds is required"})
	}
	savedBy, _ := c.Get("uid").(string)

	n, err := h.svc.SaveSnapshot(ws, body.PhaseIDs, savedBy)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"saved": n})
}

func (h *complianceCtrl) DeleteSnapshot(c echo.Context) error {
	ws, err := weekParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	n, err := h.svc.DeleteSnapshot(ws)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": n})
}

func (h *complianceCtrl) Export(c echo.Context) error {
	ws, err := weekParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	phaseIDs, err := phaseIDsParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	resp, err := h.svc.Weekly(ws, phaseIDs, c.QueryParam("farm"), false)
	if err != nil {
		if errors.Is(err, service.ErrNoPhases) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	f, err := export.Workbook(resp, ws)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	defer f.Close()

	name := fmt.Sprintf("compliance-%s.xlsx", ws.Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}

// weekParam reads and normalizes the required week query parameter. Any
// UTC-shifted date is recovered to its intended Monday here, before the
// core ever sees it.
func weekParam(c echo.Context) (time.Time, error) {
	return parseWeek(c.QueryParam("week"))
}

func parseWeek(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("week is required (YYYY-MM-DD)")
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("week must be YYYY-MM-DD")
	}
	return week.RecoverMonday(t), nil
}

func phaseIDsParam(c echo.Context) ([]uint, error) {
	raw := strings.TrimSpace(c.QueryParam("phaseIds"))
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, errors.New("phaseIds must be a comma-separated list of ids")
		}
		ids = append(ids, uint(v))
	}
	return ids, nil
}
