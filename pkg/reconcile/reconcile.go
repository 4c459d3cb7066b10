// Package reconcile holds the pure compliance reconciliation core: it
// expands week-relative SOP definitions into due tasks for one week and
// assigns each a completion status. It touches no storage; callers feed it
// rows and get deterministic output back.
package reconcile

import (
	"sort"
	"time"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/week"
)

// Task completion statuses. Done is terminal for a live computation;
// everything else is re-derived on every call unless a snapshot froze it.
const (
	StatusDone     = "done"
	StatusMissed   = "missed"
	StatusPending  = "pending"
	StatusUpcoming = "upcoming"
)

// Entry types.
const (
	TypeLabor     = "labor"
	TypeNutrition = "nutrition"
	TypeHarvest   = "harvest"
)

// OverrideKey identifies one manual correction.
type OverrideKey struct {
	FarmPhaseID uint
	SOPID       uint
	SOPType     string
}

// OverrideIndex maps composite keys to their action for one week. Keeping
// the interpretation here means a future third action never touches the
// resolver loops.
type OverrideIndex map[OverrideKey]string

// IndexOverrides builds an OverrideIndex from persisted rows, keeping only
// rows for the given week.
func IndexOverrides(rows []entities.PhaseActivityOverride, weekStart time.Time) OverrideIndex {
	idx := make(OverrideIndex, len(rows))
	ws := week.Date(weekStart)
	for _, o := range rows {
		if !week.Date(o.WeekStart).Equal(ws) {
			continue
		}
		idx[OverrideKey{o.FarmPhaseID, o.SOPID, o.SOPType}] = o.Action
	}
	return idx
}

func (idx OverrideIndex) action(phaseID, sopID uint, sopType string) string {
	return idx[OverrideKey{phaseID, sopID, sopType}]
}

// Removed reports whether the row is suppressed for the week.
func (idx OverrideIndex) Removed(phaseID, sopID uint, sopType string) bool {
	return idx.action(phaseID, sopID, sopType) == entities.OverrideRemove
}

// Added reports whether the row is force-included for the week.
func (idx OverrideIndex) Added(phaseID, sopID uint, sopType string) bool {
	return idx.action(phaseID, sopID, sopType) == entities.OverrideAdd
}

// DueLabor is one labor SOP instance placed on a concrete day.
type DueLabor struct {
	Phase     entities.FarmPhase
	SOP       entities.LaborSOP
	DayOfWeek int
}

// DueNutrition is one nutrition SOP instance placed on a concrete day.
type DueNutrition struct {
	Phase     entities.FarmPhase
	SOP       entities.NutritionSOP
	DayOfWeek int
}

// DueHarvest is one harvest pledge placed on a concrete day.
type DueHarvest struct {
	Phase     entities.FarmPhase
	PledgeKg  float64
	DayOfWeek int
}

// Labor resolves the labor SOP instances due for weekStart. The schedule
// table is authoritative for which day a row falls on: base-set rows
// (crop + week offset match) without a placed day are dropped. Remove
// overrides suppress rows, add overrides rescue scheduled rows whose week
// offset doesn't match. Schedule rows pointing at a missing phase or SOP
// are orphans from phase archival and are skipped, not errors.
func Labor(phases map[uint]entities.FarmPhase, sops map[uint]entities.LaborSOP,
	sched []entities.LaborSchedule, overrides OverrideIndex, weekStart time.Time) []DueLabor {

	var due []DueLabor
	for _, row := range sched {
		phase, ok := phases[row.FarmPhaseID]
		if !ok {
			continue
		}
		sop, ok := sops[row.LaborSOPID]
		if !ok {
			continue
		}
		if overrides.Removed(phase.ID, sop.ID, entities.SOPTypeLabor) {
			continue
		}
		if !inBaseSet(phase, sop.CropCode, sop.WeekOffset, weekStart) &&
			!overrides.Added(phase.ID, sop.ID, entities.SOPTypeLabor) {
			continue
		}
		due = append(due, DueLabor{Phase: phase, SOP: sop, DayOfWeek: row.DayOfWeek})
	}
	sort.Slice(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if a.Phase.ID != b.Phase.ID {
			return a.Phase.ID < b.Phase.ID
		}
		if a.SOP.ID != b.SOP.ID {
			return a.SOP.ID < b.SOP.ID
		}
		return a.DayOfWeek < b.DayOfWeek
	})
	return due
}

// Nutrition mirrors Labor for the feeding program.
func Nutrition(phases map[uint]entities.FarmPhase, sops map[uint]entities.NutritionSOP,
	sched []entities.NutritionSchedule, overrides OverrideIndex, weekStart time.Time) []DueNutrition {

	var due []DueNutrition
	for _, row := range sched {
		phase, ok := phases[row.FarmPhaseID]
		if !ok {
			continue
		}
		sop, ok := sops[row.NutritionSOPID]
		if !ok {
			continue
		}
		if overrides.Removed(phase.ID, sop.ID, entities.SOPTypeNutrition) {
			continue
		}
		if !inBaseSet(phase, sop.CropCode, sop.WeekOffset, weekStart) &&
			!overrides.Added(phase.ID, sop.ID, entities.SOPTypeNutrition) {
			continue
		}
		due = append(due, DueNutrition{Phase: phase, SOP: sop, DayOfWeek: row.DayOfWeek})
	}
	sort.Slice(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if a.Phase.ID != b.Phase.ID {
			return a.Phase.ID < b.Phase.ID
		}
		if a.SOP.ID != b.SOP.ID {
			return a.SOP.ID < b.SOP.ID
		}
		return a.DayOfWeek < b.DayOfWeek
	})
	return due
}

// Harvest resolves harvest pledges. There is no SOP table and no override
// support: every scheduled pledge is due as a single "Harvest" task.
func Harvest(phases map[uint]entities.FarmPhase, sched []entities.HarvestSchedule) []DueHarvest {
	var due []DueHarvest
	for _, row := range sched {
		phase, ok := phases[row.FarmPhaseID]
		if !ok {
			continue
		}
		due = append(due, DueHarvest{Phase: phase, PledgeKg: row.PledgeKg, DayOfWeek: row.DayOfWeek})
	}
	sort.Slice(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if a.Phase.ID != b.Phase.ID {
			return a.Phase.ID < b.Phase.ID
		}
		return a.DayOfWeek < b.DayOfWeek
	})
	return due
}

// inBaseSet reports whether the SOP row falls naturally in this week for
// the phase: same crop, and the week offset equals the whole weeks since
// sowing. A phase sown after weekStart contributes nothing naturally.
func inBaseSet(phase entities.FarmPhase, cropCode string, weekOffset int, weekStart time.Time) bool {
	if cropCode != phase.CropCode {
		return false
	}
	w := week.WeeksSince(phase.SowingDate, weekStart)
	if w < 0 {
		return false
	}
	return weekOffset == w
}
