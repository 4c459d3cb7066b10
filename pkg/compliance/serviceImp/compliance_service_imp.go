package serviceImp

import (
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/repository"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/service"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/match"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/reconcile"
	snaprepo "github.com/kibe0711-png/farm-erp-demo-sub001/pkg/snapshot/repository"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/week"
)

type ComplianceSvc struct {
	repo  repository.ComplianceRepository
	snaps snaprepo.SnapshotRepository
	table *match.Table
	now   func() time.Time
}

func New(repo repository.ComplianceRepository, snaps snaprepo.SnapshotRepository, table *match.Table) *ComplianceSvc {
	return &ComplianceSvc{repo: repo, snaps: snaps, table: table, now: time.Now}
}

// Weekly serves a week's compliance data. A saved snapshot wins over live
// computation unless forceLive is set; the farm filter applies either way.
// Existence is probed on the whole week, not the filtered read: a snapshot
// with no rows for the requested farm still owns the week, and the filter
// miss comes back as an empty snapshot-backed response.
func (s *ComplianceSvc) Weekly(weekStart time.Time, phaseIDs []uint, farm string, forceLive bool) (*service.Response, error) {
	if !forceLive {
		rows, err := s.snaps.Read(week.Date(weekStart), "")
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			at := rows[0].SavedAt
			if farm != "" {
				kept := rows[:0]
				for _, r := range rows {
					if r.Farm == farm {
						kept = append(kept, r)
					}
				}
				rows = kept
			}
			entries := fromSnapshotRows(rows)
			return &service.Response{
				Entries:    entries,
				Summary:    service.Summarize(entries),
				Source:     "snapshot",
				SnapshotAt: &at,
			}, nil
		}
	}

	entries, err := s.computeLive(weekStart, phaseIDs)
	if err != nil {
		return nil, err
	}
	if farm != "" {
		kept := entries[:0]
		for _, e := range entries {
			if e.Farm == farm {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	if entries == nil {
		entries = []service.Entry{}
	}
	return &service.Response{
		Entries: entries,
		Summary: service.Summarize(entries),
		Source:  "live",
	}, nil
}

// SaveSnapshot freezes the live computation for the week, replacing any
// previous snapshot as a whole. A week that computes to zero entries has
// nothing to freeze: the replace clears any prior snapshot and reads for
// that week revert to live.
func (s *ComplianceSvc) SaveSnapshot(weekStart time.Time, phaseIDs []uint, savedBy string) (int, error) {
	entries, err := s.computeLive(weekStart, phaseIDs)
	if err != nil {
		return 0, err
	}
	savedAt := s.now()
	rows := make([]entities.ComplianceSnapshot, len(entries))
	for i, e := range entries {
		rows[i] = entities.ComplianceSnapshot{
			WeekStart:   week.Date(weekStart),
			Type:        e.Type,
			FarmPhaseID: e.FarmPhaseID,
			PhaseID:     e.PhaseID,
			CropCode:    e.CropCode,
			Farm:        e.Farm,
			Task:        e.Task,
			DayOfWeek:   e.DayOfWeek,
			Status:      e.Status,
			SavedBy:     savedBy,
			SavedAt:     savedAt,
		}
	}
	if err := s.snaps.Replace(week.Date(weekStart), rows); err != nil {
		return 0, err
	}
	log.Printf("[compliance] snapshot saved: week=%s entries=%d by=%s",
		week.Date(weekStart).Format("2006-01-02"), len(rows), savedBy)
	return len(rows), nil
}

// DeleteSnapshot reverts the week to live computation. Deleting a week
// without a snapshot is not an error; the count is just zero.
func (s *ComplianceSvc) DeleteSnapshot(weekStart time.Time) (int64, error) {
	n, err := s.snaps.Delete(week.Date(weekStart))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("[compliance] snapshot deleted: week=%s entries=%d",
			week.Date(weekStart).Format("2006-01-02"), n)
	}
	return n, nil
}

func (s *ComplianceSvc) SnapshotMeta(weekStart time.Time) (*service.SnapshotMeta, error) {
	rows, err := s.snaps.Read(week.Date(weekStart), "")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &service.SnapshotMeta{Exists: false}, nil
	}
	entries := fromSnapshotRows(rows)
	sum := service.Summarize(entries)
	at := rows[0].SavedAt
	return &service.SnapshotMeta{
		Exists:      true,
		SnapshotAt:  &at,
		SavedByName: rows[0].SavedBy,
		Summary:     &sum,
	}, nil
}

func (s *ComplianceSvc) computeLive(weekStart time.Time, phaseIDs []uint) ([]service.Entry, error) {
	if len(phaseIDs) == 0 {
		return nil, service.ErrNoPhases
	}
	data, err := s.fetchWeek(weekStart, phaseIDs)
	if err != nil {
		return nil, err
	}
	now := s.now()
	ws := week.Date(weekStart)

	attendance := groupAttendance(data.attendance)
	feeding := groupFeeding(data.feeding)
	harvested := make(map[uint]bool, len(data.harvestLogs))
	for _, h := range data.harvestLogs {
		harvested[h.FarmPhaseID] = true
	}

	var entries []service.Entry
	for _, d := range reconcile.Labor(data.phases, data.laborSOPs, data.laborSched, data.overrides, ws) {
		hasLog := false
		for _, rec := range attendance[d.Phase.ID] {
			if s.table.Matches(rec.Activity, d.SOP.Task) {
				hasLog = true
				break
			}
		}
		entries = append(entries, entry(reconcile.TypeLabor, d.Phase, d.SOP.Task, d.DayOfWeek,
			reconcile.StatusFor(d.DayOfWeek, hasLog, ws, now)))
	}
	for _, d := range reconcile.Nutrition(data.phases, data.nutriSOPs, data.nutriSched, data.overrides, ws) {
		hasLog := false
		for _, rec := range feeding[d.Phase.ID] {
			if s.table.Matches(rec.Product, d.SOP.Product) {
				hasLog = true
				break
			}
		}
		entries = append(entries, entry(reconcile.TypeNutrition, d.Phase, d.SOP.Product, d.DayOfWeek,
			reconcile.StatusFor(d.DayOfWeek, hasLog, ws, now)))
	}
	for _, d := range reconcile.Harvest(data.phases, data.harvestSched) {
		entries = append(entries, entry(reconcile.TypeHarvest, d.Phase, "Harvest", d.DayOfWeek,
			reconcile.StatusFor(d.DayOfWeek, harvested[d.Phase.ID], ws, now)))
	}
	return entries, nil
}

// weekData is everything one computation reads, fetched up front.
type weekData struct {
	phases       map[uint]entities.FarmPhase
	laborSOPs    map[uint]entities.LaborSOP
	nutriSOPs    map[uint]entities.NutritionSOP
	laborSched   []entities.LaborSchedule
	nutriSched   []entities.NutritionSchedule
	harvestSched []entities.HarvestSchedule
	attendance   []entities.AttendanceRecord
	feeding      []entities.FeedingRecord
	harvestLogs  []entities.HarvestLog
	overrides    reconcile.OverrideIndex
}

// fetchWeek loads the week's rows. The reads are independent, so they run
// as one parallel fan-out; any failure aborts the whole computation.
func (s *ComplianceSvc) fetchWeek(weekStart time.Time, phaseIDs []uint) (*weekData, error) {
	ws := week.Date(weekStart)
	weekEnd := ws.AddDate(0, 0, 6)

	phases, err := s.repo.PhasesByIDs(phaseIDs)
	if err != nil {
		return nil, err
	}
	crops := make([]string, 0, len(phases))
	seen := map[string]bool{}
	for _, p := range phases {
		if !seen[p.CropCode] {
			seen[p.CropCode] = true
			crops = append(crops, p.CropCode)
		}
	}

	data := &weekData{phases: make(map[uint]entities.FarmPhase, len(phases))}
	for _, p := range phases {
		data.phases[p.ID] = p
	}

	var (
		laborSOPs []entities.LaborSOP
		nutriSOPs []entities.NutritionSOP
		overrides []entities.PhaseActivityOverride
	)
	var g errgroup.Group
	g.Go(func() (err error) { laborSOPs, err = s.repo.LaborSOPsByCrops(crops); return })
	g.Go(func() (err error) { nutriSOPs, err = s.repo.NutritionSOPsByCrops(crops); return })
	g.Go(func() (err error) { data.laborSched, err = s.repo.LaborSchedule(phaseIDs, ws); return })
	g.Go(func() (err error) { data.nutriSched, err = s.repo.NutritionSchedule(phaseIDs, ws); return })
	g.Go(func() (err error) { data.harvestSched, err = s.repo.HarvestSchedule(phaseIDs, ws); return })
	g.Go(func() (err error) { data.attendance, err = s.repo.Attendance(phaseIDs, ws, weekEnd); return })
	g.Go(func() (err error) { data.feeding, err = s.repo.Feeding(phaseIDs, ws, weekEnd); return })
	g.Go(func() (err error) { data.harvestLogs, err = s.repo.HarvestLogs(phaseIDs, ws, weekEnd); return })
	g.Go(func() (err error) { overrides, err = s.repo.Overrides(phaseIDs, ws); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data.laborSOPs = make(map[uint]entities.LaborSOP, len(laborSOPs))
	for _, sop := range laborSOPs {
		data.laborSOPs[sop.ID] = sop
	}
	data.nutriSOPs = make(map[uint]entities.NutritionSOP, len(nutriSOPs))
	for _, sop := range nutriSOPs {
		data.nutriSOPs[sop.ID] = sop
	}
	data.overrides = reconcile.IndexOverrides(overrides, ws)

	// Add overrides may reference SOP rows outside the phases' crops.
	if err := s.backfillOverrideSOPs(data, overrides); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *ComplianceSvc) backfillOverrideSOPs(data *weekData, overrides []entities.PhaseActivityOverride) error {
	var laborIDs, nutriIDs []uint
	for _, o := range overrides {
		if o.Action != entities.OverrideAdd {
			continue
		}
		switch o.SOPType {
		case entities.SOPTypeLabor:
			if _, ok := data.laborSOPs[o.SOPID]; !ok {
				laborIDs = append(laborIDs, o.SOPID)
			}
		case entities.SOPTypeNutrition:
			if _, ok := data.nutriSOPs[o.SOPID]; !ok {
				nutriIDs = append(nutriIDs, o.SOPID)
			}
		}
	}
	if len(laborIDs) > 0 {
		extra, err := s.repo.LaborSOPsByIDs(laborIDs)
		if err != nil {
			return err
		}
		for _, sop := range extra {
			data.laborSOPs[sop.ID] = sop
		}
	}
	if len(nutriIDs) > 0 {
		extra, err := s.repo.NutritionSOPsByIDs(nutriIDs)
		if err != nil {
			return err
		}
		for _, sop := range extra {
			data.nutriSOPs[sop.ID] = sop
		}
	}
	return nil
}

func entry(typ string, phase entities.FarmPhase, task string, dow int, status string) service.Entry {
	return service.Entry{
		Type:        typ,
		FarmPhaseID: phase.ID,
		PhaseID:     phase.PhaseID,
		CropCode:    phase.CropCode,
		Farm:        phase.Farm,
		Task:        task,
		DayOfWeek:   dow,
		Status:      status,
	}
}

func fromSnapshotRows(rows []entities.ComplianceSnapshot) []service.Entry {
	entries := make([]service.Entry, len(rows))
	for i, r := range rows {
		entries[i] = service.Entry{
			Type:        r.Type,
			FarmPhaseID: r.FarmPhaseID,
			PhaseID:     r.PhaseID,
			CropCode:    r.CropCode,
			Farm:        r.Farm,
			Task:        r.Task,
			DayOfWeek:   r.DayOfWeek,
			Status:      r.Status,
		}
	}
	return entries
}

func groupAttendance(recs []entities.AttendanceRecord) map[uint][]entities.AttendanceRecord {
	out := make(map[uint][]entities.AttendanceRecord)
	for _, r := range recs {
		out[r.FarmPhaseID] = append(out[r.FarmPhaseID], r)
	}
	return out
}

func groupFeeding(recs []entities.FeedingRecord) map[uint][]entities.FeedingRecord {
	out := make(map[uint][]entities.FeedingRecord)
	for _, r := range recs {
		out[r.FarmPhaseID] = append(out[r.FarmPhaseID], r)
	}
	return out
}
