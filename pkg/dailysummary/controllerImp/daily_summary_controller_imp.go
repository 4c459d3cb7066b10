package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/dailysummary/service"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/week"
)

type DailySummaryCtrl struct{ svc service.DailySummaryService }

func New(svc service.DailySummaryService) *DailySummaryCtrl { return &DailySummaryCtrl{svc} }

// Summary handles GET /daily-summary?date=YYYY-MM-DD. Without a date it
// reports on today, EAT calendar.
func (h *DailySummaryCtrl) Summary(c echo.Context) error {
	target := time.Now().In(week.EAT)
	if raw := c.QueryParam("date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
		}
		target = t
	}
	out, err := h.svc.Summarize(target)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
