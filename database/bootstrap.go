// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}

// Migrate is split out so tests can run it against :memory: databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.FarmPhase{},
		&entities.FarmRate{},
		&entities.LaborSOP{},
		&entities.NutritionSOP{},
		&entities.LaborSchedule{},
		&entities.NutritionSchedule{},
		&entities.HarvestSchedule{},
		&entities.AttendanceRecord{},
		&entities.FeedingRecord{},
		&entities.HarvestLog{},
		&entities.PhaseActivityOverride{},
		&entities.ComplianceSnapshot{},
	)
}
