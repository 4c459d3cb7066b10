package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/middleware"
)

func New(
	e *echo.Echo,
	complianceCtrl interface {
		Weekly(echo.Context) error
		SnapshotMeta(echo.Context) error
		SaveSnapshot(echo.Context) error
		DeleteSnapshot(echo.Context) error
		Export(echo.Context) error
	},
	dailyCtrl interface{ Summary(echo.Context) error },
	phaseCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Archive(echo.Context) error
	},
	intakeCtrl interface{ Register(*echo.Echo) },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.Identity())
	e.GET("/health", healthCtrl.Health)

	e.GET("/compliance", complianceCtrl.Weekly)
	e.GET("/compliance/snapshot", complianceCtrl.SnapshotMeta)
	e.POST("/compliance/snapshot", complianceCtrl.SaveSnapshot)
	e.DELETE("/compliance/snapshot", complianceCtrl.DeleteSnapshot)
	e.GET("/compliance/export", complianceCtrl.Export)

	e.GET("/daily-summary", dailyCtrl.Summary)

	e.POST("/phases", phaseCtrl.Create)
	e.GET("/phases", phaseCtrl.List)
	e.GET("/phases/:id", phaseCtrl.Get)
	e.POST("/phases/:id/archive", phaseCtrl.Archive)

	intakeCtrl.Register(e)
	return e
}
