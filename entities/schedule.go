package entities

import "time"

// Weekly schedule rows are concrete day placements of SOP work. The
// schedule editor replaces them wholesale per phase/week; the compliance
// core only reads them. WeekStart is always a Monday, DayOfWeek 0=Mon..6=Sun.

type LaborSchedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FarmPhaseID uint      `gorm:"index:idx_labor_sched_phase_week" json:"farm_phase_id"`
	WeekStart   time.Time `gorm:"index:idx_labor_sched_phase_week" json:"week_start"`
	DayOfWeek   int       `json:"day_of_week"`
	LaborSOPID  uint      `gorm:"index" json:"labor_sop_id"`

	CreatedAt time.Time
}

type NutritionSchedule struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FarmPhaseID    uint      `gorm:"index:idx_nutri_sched_phase_week" json:"farm_phase_id"`
	WeekStart      time.Time `gorm:"index:idx_nutri_sched_phase_week" json:"week_start"`
	DayOfWeek      int       `json:"day_of_week"`
	NutritionSOPID uint      `gorm:"index" json:"nutrition_sop_id"`

	CreatedAt time.Time
}

// HarvestSchedule has no SOP table behind it; a row is a pledge to pick
// on a given day.
type HarvestSchedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FarmPhaseID uint      `gorm:"index:idx_harvest_sched_phase_week" json:"farm_phase_id"`
	WeekStart   time.Time `gorm:"index:idx_harvest_sched_phase_week" json:"week_start"`
	DayOfWeek   int       `json:"day_of_week"`
	PledgeKg    float64   `json:"pledge_kg"`

	CreatedAt time.Time
}
