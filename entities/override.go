package entities

import "time"

// Override actions.
const (
	OverrideAdd    = "add"
	OverrideRemove = "remove"
)

// PhaseActivityOverride is a manual correction to the crop-week-derived
// schedule, scoped to one phase/SOP/week. "add" forces an off-week SOP row
// to count as due; "remove" suppresses an otherwise-due one. At most one
// row per composite key; writes are upserts, last one wins.
type PhaseActivityOverride struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FarmPhaseID uint      `gorm:"uniqueIndex:idx_override_key" json:"farm_phase_id"`
	SOPID       uint      `gorm:"uniqueIndex:idx_override_key" json:"sop_id"`
	SOPType     string    `gorm:"uniqueIndex:idx_override_key" json:"sop_type"` // labor|nutrition
	WeekStart   time.Time `gorm:"uniqueIndex:idx_override_key" json:"week_start"`
	Action      string    `json:"action"` // add|remove

	CreatedAt time.Time
	UpdatedAt time.Time
}
