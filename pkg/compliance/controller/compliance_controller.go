package controller

import "github.com/labstack/echo/v4"

type ComplianceController interface {
	Weekly(echo.Context) error
	SnapshotMeta(echo.Context) error
	SaveSnapshot(echo.Context) error
	DeleteSnapshot(echo.Context) error
	Export(echo.Context) error
}
