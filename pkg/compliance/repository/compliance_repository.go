package repository

import (
	"time"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
)

// ComplianceRepository is the bounded read surface the compliance core
// needs. All methods are independent of each other; the service fans them
// out in parallel. A failed read must surface as an error — partial
// compliance data would silently under-report.
type ComplianceRepository interface {
	PhasesByIDs(ids []uint) ([]entities.FarmPhase, error)
	ActivePhases() ([]entities.FarmPhase, error)

	LaborSOPsByCrops(crops []string) ([]entities.LaborSOP, error)
	LaborSOPsByIDs(ids []uint) ([]entities.LaborSOP, error)
	NutritionSOPsByCrops(crops []string) ([]entities.NutritionSOP, error)
	NutritionSOPsByIDs(ids []uint) ([]entities.NutritionSOP, error)

	LaborSchedule(phaseIDs []uint, weekStart time.Time) ([]entities.LaborSchedule, error)
	NutritionSchedule(phaseIDs []uint, weekStart time.Time) ([]entities.NutritionSchedule, error)
	HarvestSchedule(phaseIDs []uint, weekStart time.Time) ([]entities.HarvestSchedule, error)

	Attendance(phaseIDs []uint, from, to time.Time) ([]entities.AttendanceRecord, error)
	Feeding(phaseIDs []uint, from, to time.Time) ([]entities.FeedingRecord, error)
	HarvestLogs(phaseIDs []uint, from, to time.Time) ([]entities.HarvestLog, error)

	Overrides(phaseIDs []uint, weekStart time.Time) ([]entities.PhaseActivityOverride, error)
	FarmRates() (map[string]float64, error)
}
