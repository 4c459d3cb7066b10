package service

import "time"

// TaskLine is one due SOP instance costed for the target day.
type TaskLine struct {
	PhaseID  string  `json:"phaseId"`
	Type     string  `json:"type"` // labor|nutrition
	Task     string  `json:"task"`
	Mandays  float64 `json:"mandays,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Cost     float64 `json:"cost"`
}

// FarmBreakdown groups the day's work under one farm. Acreage and phase
// count cover the farm's active phases, not just the ones with work today.
type FarmBreakdown struct {
	Farm         string     `json:"farm"`
	TotalAcreage float64    `json:"totalAcreage"`
	PhaseCount   int        `json:"phaseCount"`
	Tasks        []TaskLine `json:"tasks"`
	LaborMandays float64    `json:"laborMandays"`
	LaborCost    float64    `json:"laborCost"`
	NutriCost    float64    `json:"nutriCost"`
}

type Totals struct {
	LaborMandays float64 `json:"laborMandays"`
	LaborCost    float64 `json:"laborCost"`
	NutriCost    float64 `json:"nutriCost"`
}

// Summary is the cost/quantity breakdown for a single calendar day.
type Summary struct {
	Date       string          `json:"date"`
	DayName    string          `json:"dayName"`
	WeekNumber int             `json:"weekNumber"`
	WeekStart  string          `json:"weekStart"`
	Farms      []FarmBreakdown `json:"farms"`
	Totals     Totals          `json:"totals"`
}

type DailySummaryService interface {
	Summarize(targetDate time.Time) (*Summary, error)
}
