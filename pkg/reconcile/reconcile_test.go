package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
)

var weekStart = time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC) // Monday

// phase sown 2026-01-05: weekStart is offset week 3.
func testPhase() entities.FarmPhase {
	return entities.FarmPhase{
		ID: 1, PhaseID: "BLK-01", CropCode: "FB", Farm: "Upper Farm", AreaHa: 2,
		SowingDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestLabor_BaseSet(t *testing.T) {
	phase := testPhase()
	phases := map[uint]entities.FarmPhase{1: phase}
	sops := map[uint]entities.LaborSOP{
		10: {ID: 10, CropCode: "FB", WeekOffset: 3, Task: "Weeding"},
		11: {ID: 11, CropCode: "FB", WeekOffset: 5, Task: "Trellising"}, // wrong week
		12: {ID: 12, CropCode: "KL", WeekOffset: 3, Task: "Scouting"},   // wrong crop
	}
	sched := []entities.LaborSchedule{
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 2, LaborSOPID: 10},
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 3, LaborSOPID: 11},
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 4, LaborSOPID: 12},
	}

	due := Labor(phases, sops, sched, OverrideIndex{}, weekStart)
	require.Len(t, due, 1)
	assert.Equal(t, uint(10), due[0].SOP.ID)
	assert.Equal(t, 2, due[0].DayOfWeek)
}

func TestLabor_UnscheduledBaseRowContributesNothing(t *testing.T) {
	// SOP 10 is due by crop-week but has no placed day, so it is dropped.
	phases := map[uint]entities.FarmPhase{1: testPhase()}
	sops := map[uint]entities.LaborSOP{10: {ID: 10, CropCode: "FB", WeekOffset: 3, Task: "Weeding"}}
	due := Labor(phases, sops, nil, OverrideIndex{}, weekStart)
	assert.Empty(t, due)
}

func TestLabor_RemoveOverride(t *testing.T) {
	phases := map[uint]entities.FarmPhase{1: testPhase()}
	sops := map[uint]entities.LaborSOP{10: {ID: 10, CropCode: "FB", WeekOffset: 3, Task: "Weeding"}}
	sched := []entities.LaborSchedule{{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 2, LaborSOPID: 10}}
	ovr := IndexOverrides([]entities.PhaseActivityOverride{
		{FarmPhaseID: 1, SOPID: 10, SOPType: entities.SOPTypeLabor, WeekStart: weekStart, Action: entities.OverrideRemove},
	}, weekStart)

	assert.Empty(t, Labor(phases, sops, sched, ovr, weekStart))
}

func TestLabor_AddOverrideRescuesOffWeekRow(t *testing.T) {
	// SOP 11 belongs to week 5 but was pulled forward and placed on Friday.
	phases := map[uint]entities.FarmPhase{1: testPhase()}
	sops := map[uint]entities.LaborSOP{11: {ID: 11, CropCode: "FB", WeekOffset: 5, Task: "Trellising"}}
	sched := []entities.LaborSchedule{{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 4, LaborSOPID: 11}}
	ovr := IndexOverrides([]entities.PhaseActivityOverride{
		{FarmPhaseID: 1, SOPID: 11, SOPType: entities.SOPTypeLabor, WeekStart: weekStart, Action: entities.OverrideAdd},
	}, weekStart)

	due := Labor(phases, sops, sched, ovr, weekStart)
	require.Len(t, due, 1)
	assert.Equal(t, "Trellising", due[0].SOP.Task)
}

func TestLabor_AddOverrideForOtherWeekIgnored(t *testing.T) {
	phases := map[uint]entities.FarmPhase{1: testPhase()}
	sops := map[uint]entities.LaborSOP{11: {ID: 11, CropCode: "FB", WeekOffset: 5, Task: "Trellising"}}
	sched := []entities.LaborSchedule{{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 4, LaborSOPID: 11}}
	ovr := IndexOverrides([]entities.PhaseActivityOverride{
		{FarmPhaseID: 1, SOPID: 11, SOPType: entities.SOPTypeLabor, WeekStart: weekStart.AddDate(0, 0, 7), Action: entities.OverrideAdd},
	}, weekStart)

	assert.Empty(t, Labor(phases, sops, sched, ovr, weekStart))
}

func TestLabor_NutritionOverrideDoesNotTouchLabor(t *testing.T) {
	phases := map[uint]entities.FarmPhase{1: testPhase()}
	sops := map[uint]entities.LaborSOP{10: {ID: 10, CropCode: "FB", WeekOffset: 3, Task: "Weeding"}}
	sched := []entities.LaborSchedule{{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 2, LaborSOPID: 10}}
	ovr := IndexOverrides([]entities.PhaseActivityOverride{
		{FarmPhaseID: 1, SOPID: 10, SOPType: entities.SOPTypeNutrition, WeekStart: weekStart, Action: entities.OverrideRemove},
	}, weekStart)

	assert.Len(t, Labor(phases, sops, sched, ovr, weekStart), 1)
}

func TestLabor_OrphanRowsSkipped(t *testing.T) {
	phases := map[uint]entities.FarmPhase{1: testPhase()}
	sops := map[uint]entities.LaborSOP{10: {ID: 10, CropCode: "FB", WeekOffset: 3, Task: "Weeding"}}
	sched := []entities.LaborSchedule{
		{FarmPhaseID: 99, WeekStart: weekStart, DayOfWeek: 1, LaborSOPID: 10}, // archived phase
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 2, LaborSOPID: 77},  // deleted SOP
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 2, LaborSOPID: 10},
	}
	due := Labor(phases, sops, sched, OverrideIndex{}, weekStart)
	require.Len(t, due, 1)
	assert.Equal(t, uint(1), due[0].Phase.ID)
}

func TestLabor_PreSowingWeekContributesNothing(t *testing.T) {
	phase := testPhase()
	phase.SowingDate = weekStart.AddDate(0, 0, 14) // sown two weeks after target week
	phases := map[uint]entities.FarmPhase{1: phase}
	sops := map[uint]entities.LaborSOP{10: {ID: 10, CropCode: "FB", WeekOffset: -2, Task: "Nursery Management"}}
	sched := []entities.LaborSchedule{{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 0, LaborSOPID: 10}}

	assert.Empty(t, Labor(phases, sops, sched, OverrideIndex{}, weekStart))
}

func TestLabor_DeterministicOrder(t *testing.T) {
	p1, p2 := testPhase(), testPhase()
	p2.ID = 2
	phases := map[uint]entities.FarmPhase{1: p1, 2: p2}
	sops := map[uint]entities.LaborSOP{
		10: {ID: 10, CropCode: "FB", WeekOffset: 3, Task: "Weeding"},
		11: {ID: 11, CropCode: "FB", WeekOffset: 3, Task: "Scouting"},
	}
	sched := []entities.LaborSchedule{
		{FarmPhaseID: 2, WeekStart: weekStart, DayOfWeek: 1, LaborSOPID: 10},
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 4, LaborSOPID: 11},
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 1, LaborSOPID: 11},
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 2, LaborSOPID: 10},
	}
	due := Labor(phases, sops, sched, OverrideIndex{}, weekStart)
	require.Len(t, due, 4)
	got := make([][3]uint, len(due))
	for i, d := range due {
		got[i] = [3]uint{d.Phase.ID, d.SOP.ID, uint(d.DayOfWeek)}
	}
	assert.Equal(t, [][3]uint{{1, 10, 2}, {1, 11, 1}, {1, 11, 4}, {2, 10, 1}}, got)
}

func TestNutrition_ResolvesLikeLabor(t *testing.T) {
	phases := map[uint]entities.FarmPhase{1: testPhase()}
	sops := map[uint]entities.NutritionSOP{
		20: {ID: 20, CropCode: "FB", WeekOffset: 3, Product: "CAN"},
		21: {ID: 21, CropCode: "FB", WeekOffset: 9, Product: "DAP"},
	}
	sched := []entities.NutritionSchedule{
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 0, NutritionSOPID: 20},
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 0, NutritionSOPID: 21},
	}
	due := Nutrition(phases, sops, sched, OverrideIndex{}, weekStart)
	require.Len(t, due, 1)
	assert.Equal(t, "CAN", due[0].SOP.Product)
}

func TestHarvest_NoSOPNoOverrides(t *testing.T) {
	phases := map[uint]entities.FarmPhase{1: testPhase()}
	sched := []entities.HarvestSchedule{
		{FarmPhaseID: 1, WeekStart: weekStart, DayOfWeek: 5, PledgeKg: 120},
		{FarmPhaseID: 42, WeekStart: weekStart, DayOfWeek: 1, PledgeKg: 50}, // orphan
	}
	due := Harvest(phases, sched)
	require.Len(t, due, 1)
	assert.Equal(t, 5, due[0].DayOfWeek)
	assert.Equal(t, 120.0, due[0].PledgeKg)
}
