package entities

import "time"

// FarmPhase is a planted block. Owned by crop management; the compliance
// core only reads it. SowingDate anchors every week-offset computation.
type FarmPhase struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PhaseID    string    `gorm:"index" json:"phase_id"` // human label, e.g. "BLK-07"
	CropCode   string    `gorm:"index" json:"crop_code"`
	Farm       string    `gorm:"index" json:"farm"`
	AreaHa     float64   `json:"area_ha"`
	SowingDate time.Time `json:"sowing_date"`
	Archived   bool      `json:"archived"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FarmRate is a per-farm casual labor rate that overrides the SOP figure.
type FarmRate struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Farm       string  `gorm:"uniqueIndex" json:"farm"`
	RatePerDay float64 `json:"rate_per_day"`

	UpdatedAt time.Time
}
