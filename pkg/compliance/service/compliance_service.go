package service

import (
	"errors"
	"math"
	"time"
)

// ErrNoPhases means a live computation was requested without a phase-id
// list. It is rejected before any reads happen.
var ErrNoPhases = errors.New("phase id list is required")

// Entry is the unit returned to callers, whether freshly computed or read
// back from a snapshot.
type Entry struct {
	Type        string `json:"type"` // labor|nutrition|harvest
	FarmPhaseID uint   `json:"farmPhaseId"`
	PhaseID     string `json:"phaseId"`
	CropCode    string `json:"cropCode"`
	Farm        string `json:"farm"`
	Task        string `json:"task"`
	DayOfWeek   int    `json:"dayOfWeek"` // 0=Mon..6=Sun
	Status      string `json:"status"`
}

// Summary counts entries per status. ComplianceRate is nil when nothing
// countable exists; pending and upcoming never enter the denominator.
type Summary struct {
	Total          int  `json:"total"`
	Done           int  `json:"done"`
	Missed         int  `json:"missed"`
	Pending        int  `json:"pending"`
	Upcoming       int  `json:"upcoming"`
	ComplianceRate *int `json:"complianceRate"`
}

// Response is a week's compliance data plus where it came from.
type Response struct {
	Entries    []Entry    `json:"entries"`
	Summary    Summary    `json:"summary"`
	Source     string     `json:"source"` // live|snapshot
	SnapshotAt *time.Time `json:"snapshotAt,omitempty"`
}

// SnapshotMeta is the probe result for a week.
type SnapshotMeta struct {
	Exists      bool       `json:"exists"`
	SnapshotAt  *time.Time `json:"snapshotAt,omitempty"`
	SavedByName string     `json:"savedByName,omitempty"`
	Summary     *Summary   `json:"summary,omitempty"`
}

// ComplianceService computes or serves a week's compliance data. A saved
// snapshot takes precedence over live computation unless forceLive is set.
type ComplianceService interface {
	Weekly(weekStart time.Time, phaseIDs []uint, farm string, forceLive bool) (*Response, error)
	SaveSnapshot(weekStart time.Time, phaseIDs []uint, savedBy string) (int, error)
	DeleteSnapshot(weekStart time.Time) (int64, error)
	SnapshotMeta(weekStart time.Time) (*SnapshotMeta, error)
}

// Summarize tallies statuses and derives the compliance rate.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case "done":
			s.Done++
		case "missed":
			s.Missed++
		case "pending":
			s.Pending++
		case "upcoming":
			s.Upcoming++
		}
	}
	if n := s.Done + s.Missed; n > 0 {
		rate := int(math.Round(float64(s.Done) / float64(n) * 100))
		s.ComplianceRate = &rate
	}
	return s
}
