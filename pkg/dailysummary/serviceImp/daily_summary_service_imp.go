package serviceImp

import (
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/repository"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/dailysummary/service"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/reconcile"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/week"
)

type DailySummarySvc struct {
	repo repository.ComplianceRepository
}

func New(repo repository.ComplianceRepository) *DailySummarySvc {
	return &DailySummarySvc{repo: repo}
}

type sopKey struct {
	phaseID uint
	sopID   uint
}

// Summarize projects the week's due work onto a single day and costs it.
// Weekly SOP totals are split evenly across however many days the SOP
// instance is actually scheduled that week.
func (s *DailySummarySvc) Summarize(targetDate time.Time) (*service.Summary, error) {
	date := week.Date(targetDate)
	dow := week.Dow(date)
	monday := week.MondayOf(date)

	phases, err := s.repo.ActivePhases()
	if err != nil {
		return nil, err
	}
	phaseIDs := make([]uint, len(phases))
	phaseMap := make(map[uint]entities.FarmPhase, len(phases))
	crops := []string{}
	seen := map[string]bool{}
	for i, p := range phases {
		phaseIDs[i] = p.ID
		phaseMap[p.ID] = p
		if !seen[p.CropCode] {
			seen[p.CropCode] = true
			crops = append(crops, p.CropCode)
		}
	}

	var (
		laborSOPs  []entities.LaborSOP
		nutriSOPs  []entities.NutritionSOP
		laborSched []entities.LaborSchedule
		nutriSched []entities.NutritionSchedule
		overrides  []entities.PhaseActivityOverride
		rates      map[string]float64
	)
	var g errgroup.Group
	g.Go(func() (err error) { laborSOPs, err = s.repo.LaborSOPsByCrops(crops); return })
	g.Go(func() (err error) { nutriSOPs, err = s.repo.NutritionSOPsByCrops(crops); return })
	g.Go(func() (err error) { laborSched, err = s.repo.LaborSchedule(phaseIDs, monday); return })
	g.Go(func() (err error) { nutriSched, err = s.repo.NutritionSchedule(phaseIDs, monday); return })
	g.Go(func() (err error) { overrides, err = s.repo.Overrides(phaseIDs, monday); return })
	g.Go(func() (err error) { rates, err = s.repo.FarmRates(); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	laborMap := make(map[uint]entities.LaborSOP, len(laborSOPs))
	for _, sop := range laborSOPs {
		laborMap[sop.ID] = sop
	}
	nutriMap := make(map[uint]entities.NutritionSOP, len(nutriSOPs))
	for _, sop := range nutriSOPs {
		nutriMap[sop.ID] = sop
	}
	if err := s.backfillOverrideSOPs(overrides, laborMap, nutriMap); err != nil {
		return nil, err
	}
	ovr := reconcile.IndexOverrides(overrides, monday)

	// Resolve the whole week first: the per-day split needs to know how
	// many days each SOP instance is scheduled.
	dueLabor := reconcile.Labor(phaseMap, laborMap, laborSched, ovr, monday)
	dueNutri := reconcile.Nutrition(phaseMap, nutriMap, nutriSched, ovr, monday)

	laborDays := map[sopKey]int{}
	for _, d := range dueLabor {
		laborDays[sopKey{d.Phase.ID, d.SOP.ID}]++
	}
	nutriDays := map[sopKey]int{}
	for _, d := range dueNutri {
		nutriDays[sopKey{d.Phase.ID, d.SOP.ID}]++
	}

	// Add overrides with no placed day this week count as due today,
	// split across a single day.
	for _, o := range overrides {
		if o.Action != entities.OverrideAdd {
			continue
		}
		phase, ok := phaseMap[o.FarmPhaseID]
		if !ok {
			continue
		}
		switch o.SOPType {
		case entities.SOPTypeLabor:
			if laborDays[sopKey{o.FarmPhaseID, o.SOPID}] > 0 {
				continue
			}
			if sop, ok := laborMap[o.SOPID]; ok {
				dueLabor = append(dueLabor, reconcile.DueLabor{Phase: phase, SOP: sop, DayOfWeek: dow})
				laborDays[sopKey{o.FarmPhaseID, o.SOPID}] = 1
			}
		case entities.SOPTypeNutrition:
			if nutriDays[sopKey{o.FarmPhaseID, o.SOPID}] > 0 {
				continue
			}
			if sop, ok := nutriMap[o.SOPID]; ok {
				dueNutri = append(dueNutri, reconcile.DueNutrition{Phase: phase, SOP: sop, DayOfWeek: dow})
				nutriDays[sopKey{o.FarmPhaseID, o.SOPID}] = 1
			}
		}
	}

	byFarm := map[string]*service.FarmBreakdown{}
	farmOf := func(p entities.FarmPhase) *service.FarmBreakdown {
		fb, ok := byFarm[p.Farm]
		if !ok {
			fb = &service.FarmBreakdown{Farm: p.Farm}
			for _, ph := range phases {
				if ph.Farm == p.Farm {
					fb.TotalAcreage += ph.AreaHa
					fb.PhaseCount++
				}
			}
			byFarm[p.Farm] = fb
		}
		return fb
	}

	for _, d := range dueLabor {
		if d.DayOfWeek != dow {
			continue
		}
		days := laborDays[sopKey{d.Phase.ID, d.SOP.ID}]
		mandaysWeek := d.SOP.NoOfCasuals * d.SOP.NoOfDays * d.Phase.AreaHa
		mandaysToday := mandaysWeek / float64(days)
		costPerDay := d.SOP.CostPerCasualDay
		if r, ok := rates[d.Phase.Farm]; ok {
			costPerDay = r
		}
		fb := farmOf(d.Phase)
		line := service.TaskLine{
			PhaseID: d.Phase.PhaseID,
			Type:    reconcile.TypeLabor,
			Task:    d.SOP.Task,
			Mandays: mandaysToday,
			Cost:    mandaysToday * costPerDay,
		}
		fb.Tasks = append(fb.Tasks, line)
		fb.LaborMandays += line.Mandays
		fb.LaborCost += line.Cost
	}

	for _, d := range dueNutri {
		if d.DayOfWeek != dow {
			continue
		}
		days := nutriDays[sopKey{d.Phase.ID, d.SOP.ID}]
		qtyToday := d.SOP.RateHa * d.Phase.AreaHa / float64(days)
		costToday := d.SOP.CostPerHa * d.Phase.AreaHa / float64(days)
		fb := farmOf(d.Phase)
		line := service.TaskLine{
			PhaseID:  d.Phase.PhaseID,
			Type:     reconcile.TypeNutrition,
			Task:     d.SOP.Product,
			Quantity: qtyToday,
			Unit:     d.SOP.Unit,
			Cost:     costToday,
		}
		fb.Tasks = append(fb.Tasks, line)
		fb.NutriCost += line.Cost
	}

	out := &service.Summary{
		Date:       date.Format("2006-01-02"),
		DayName:    week.DayName(dow),
		WeekNumber: week.ISOWeek(date),
		WeekStart:  monday.Format("2006-01-02"),
		Farms:      []service.FarmBreakdown{},
	}
	names := make([]string, 0, len(byFarm))
	for name, fb := range byFarm {
		if len(fb.Tasks) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fb := byFarm[name]
		sort.Slice(fb.Tasks, func(i, j int) bool {
			a, b := fb.Tasks[i], fb.Tasks[j]
			if a.PhaseID != b.PhaseID {
				return a.PhaseID < b.PhaseID
			}
			if a.Type != b.Type {
				return a.Type < b.Type
			}
			return a.Task < b.Task
		})
		out.Farms = append(out.Farms, *fb)
		out.Totals.LaborMandays += fb.LaborMandays
		out.Totals.LaborCost += fb.LaborCost
		out.Totals.NutriCost += fb.NutriCost
	}
	return out, nil
}

func (s *DailySummarySvc) backfillOverrideSOPs(overrides []entities.PhaseActivityOverride,
	laborMap map[uint]entities.LaborSOP, nutriMap map[uint]entities.NutritionSOP) error {

	var laborIDs, nutriIDs []uint
	for _, o := range overrides {
		if o.Action != entities.OverrideAdd {
			continue
		}
		switch o.SOPType {
		case entities.SOPTypeLabor:
			if _, ok := laborMap[o.SOPID]; !ok {
				laborIDs = append(laborIDs, o.SOPID)
			}
		case entities.SOPTypeNutrition:
			if _, ok := nutriMap[o.SOPID]; !ok {
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
			laborMap[sop.ID] = sop
		}
	}
	if len(nutriIDs) > 0 {
		extra, err := s.repo.NutritionSOPsByIDs(nutriIDs)
		if err != nil {
			return err
		}
		for _, sop := range extra {
			nutriMap[sop.ID] = sop
		}
	}
	return nil
}
