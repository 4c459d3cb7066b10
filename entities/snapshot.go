package entities

import "time"

// ComplianceSnapshot is one frozen compliance row for one week. Phase,
// crop and farm labels are denormalized on purpose: the phase may be
// re-sown or archived later, but the snapshot keeps what was true then.
// A week's rows are always replaced as a whole, never patched.
type ComplianceSnapshot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WeekStart   time.Time `gorm:"index" json:"week_start"`
	Type        string    `json:"type"` // labor|nutrition|harvest
	FarmPhaseID uint      `json:"farm_phase_id"`
	PhaseID     string    `json:"phase_id"`
	CropCode    string    `json:"crop_code"`
	Farm        string    `gorm:"index" json:"farm"`
	Task        string    `json:"task"`
	DayOfWeek   int       `json:"day_of_week"`
	Status      string    `json:"status"`
	SavedBy     string    `json:"saved_by"`
	SavedAt     time.Time `json:"saved_at"`
}
