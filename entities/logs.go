package entities

import "time"

// Activity logs are immutable records of work actually performed, entered
// from the field. The compliance core never mutates them.

// AttendanceRecord is a labor log. Activity is free text typed by a
// supervisor, which is why matching against SOP task names is fuzzy.
type AttendanceRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FarmPhaseID uint      `gorm:"index" json:"farm_phase_id"`
	Date        time.Time `gorm:"index" json:"date"`
	Activity    string    `json:"activity"`
	NoOfCasuals float64   `json:"no_of_casuals"`

	CreatedAt time.Time
}

// FeedingRecord is a nutrition/chemical application log.
type FeedingRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FarmPhaseID uint      `gorm:"index" json:"farm_phase_id"`
	Date        time.Time `gorm:"index" json:"date"`
	Product     string    `json:"product"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`

	CreatedAt time.Time
}

// HarvestLog records picked produce; its date alone satisfies a harvest
// pledge for that week.
type HarvestLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FarmPhaseID uint      `gorm:"index" json:"farm_phase_id"`
	Date        time.Time `gorm:"index" json:"date"`
	QuantityKg  float64   `json:"quantity_kg"`

	CreatedAt time.Time
}
