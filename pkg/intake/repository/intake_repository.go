package repository

import (
	"time"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
)

// IntakeRepository is the write side of field data entry: activity logs,
// schedule overrides and farm labor rates.
type IntakeRepository interface {
	CreateAttendance(rec *entities.AttendanceRecord) error
	ListAttendance(phaseID uint, from, to *time.Time) ([]entities.AttendanceRecord, error)

	CreateFeeding(rec *entities.FeedingRecord) error
	ListFeeding(phaseID uint, from, to *time.Time) ([]entities.FeedingRecord, error)

	CreateHarvestLog(rec *entities.HarvestLog) error
	ListHarvestLogs(phaseID uint, from, to *time.Time) ([]entities.HarvestLog, error)

	// UpsertOverride keeps at most one row per (phase, sop, type, week);
	// the last write's action wins.
	UpsertOverride(o *entities.PhaseActivityOverride) error
	DeleteOverride(id uint) (int64, error)
	ListOverrides(phaseID uint, weekStart *time.Time) ([]entities.PhaseActivityOverride, error)

	PutFarmRate(farm string, rate float64) (*entities.FarmRate, error)
	ListFarmRates() ([]entities.FarmRate, error)
}
