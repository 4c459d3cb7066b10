package entities

import "time"

// SOP type discriminator used by overrides and snapshots.
const (
	SOPTypeLabor     = "labor"
	SOPTypeNutrition = "nutrition"
)

// LaborSOP is a crop-specific standard-operating-procedure row keyed by
// week offset from sowing (negative offsets are nursery weeks). Several
// rows may share the same (crop, week).
type LaborSOP struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	CropCode         string  `gorm:"index:idx_labor_sop_crop_week" json:"crop_code"`
	WeekOffset       int     `gorm:"index:idx_labor_sop_crop_week" json:"week_offset"`
	Task             string  `json:"task"`
	NoOfCasuals      float64 `json:"no_of_casuals"`
	NoOfDays         float64 `json:"no_of_days"`
	CostPerCasualDay float64 `json:"cost_per_casual_day"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NutritionSOP is the chemical/fertilizer counterpart of LaborSOP. Rates
// are per hectare per week.
type NutritionSOP struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CropCode   string  `gorm:"index:idx_nutri_sop_crop_week" json:"crop_code"`
	WeekOffset int     `gorm:"index:idx_nutri_sop_crop_week" json:"week_offset"`
	Product    string  `json:"product"`
	RateHa     float64 `json:"rate_ha"`
	Unit       string  `json:"unit"` // kg|l|g
	CostPerHa  float64 `json:"cost_per_ha"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
