package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/kibe0711-png/farm-erp-demo-sub001/config"
	"github.com/kibe0711-png/farm-erp-demo-sub001/database"
	"github.com/kibe0711-png/farm-erp-demo-sub001/router"

	// Compliance core
	compCtrlImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/controllerImp"
	compRepoImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/repositoryImp"
	compSvcImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/serviceImp"
	snapRepoImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/snapshot/repositoryImp"

	// Daily summary
	dailyCtrlImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/dailysummary/controllerImp"
	dailySvcImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/dailysummary/serviceImp"

	// Directory + field data entry
	intakeCtrlImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/intake/controllerImp"
	intakeRepoImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/intake/repositoryImp"
	phaseCtrlImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/phase/controllerImp"
	phaseRepoImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/phase/repositoryImp"

	// Health
	healthCtrlImp "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/health/controllerImp"

	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/match"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Alias table (built-in unless a file overrides it)
	table := match.Default()
	if cfg.AliasTable != "" {
		t, err := match.LoadTable(cfg.AliasTable)
		if err != nil {
			log.Fatalf("alias table: %v", err)
		}
		table = t
	}
	log.Printf("[match] alias table version %s", table.Version)

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) Repos/services/controllers
	compRepo := compRepoImp.New(db)
	snapRepo := snapRepoImp.New(db)
	compSvc := compSvcImp.New(compRepo, snapRepo, table)
	compCtrl := compCtrlImp.New(compSvc)

	dailySvc := dailySvcImp.New(compRepo)
	dailyCtrl := dailyCtrlImp.New(dailySvc)

	phaseCtrl := phaseCtrlImp.New(phaseRepoImp.New(db))
	intakeCtrl := intakeCtrlImp.New(intakeRepoImp.New(db))
	hCtrl := healthCtrlImp.NewHealthCtrl(db, table.Version)

	// 6) Router
	r := router.New(e, compCtrl, dailyCtrl, phaseCtrl, intakeCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
