package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/compliance/repository"
)

type complianceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ComplianceRepository { return &complianceRepo{db} }

func (r *complianceRepo) PhasesByIDs(ids []uint) ([]entities.FarmPhase, error) {
	var out []entities.FarmPhase
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) ActivePhases() ([]entities.FarmPhase, error) {
	var out []entities.FarmPhase
	if err := r.db.Where("archived = ?", false).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) LaborSOPsByCrops(crops []string) ([]entities.LaborSOP, error) {
	var out []entities.LaborSOP
	if len(crops) == 0 {
		return out, nil
	}
	if err := r.db.Where("crop_code IN ?", crops).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) LaborSOPsByIDs(ids []uint) ([]entities.LaborSOP, error) {
	var out []entities.LaborSOP
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) NutritionSOPsByCrops(crops []string) ([]entities.NutritionSOP, error) {
	var out []entities.NutritionSOP
	if len(crops) == 0 {
		return out, nil
	}
	if err := r.db.Where("crop_code IN ?", crops).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) NutritionSOPsByIDs(ids []uint) ([]entities.NutritionSOP, error) {
	var out []entities.NutritionSOP
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) LaborSchedule(phaseIDs []uint, weekStart time.Time) ([]entities.LaborSchedule, error) {
	var out []entities.LaborSchedule
	if len(phaseIDs) == 0 {
		return out, nil
	}
	err := r.db.Where("farm_phase_id IN ? AND week_start = ?", phaseIDs, weekStart).
		Order("farm_phase_id ASC, labor_sop_id ASC, day_of_week ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) NutritionSchedule(phaseIDs []uint, weekStart time.Time) ([]entities.NutritionSchedule, error) {
	var out []entities.NutritionSchedule
	if len(phaseIDs) == 0 {
		return out, nil
	}
	err := r.db.Where("farm_phase_id IN ? AND week_start = ?", phaseIDs, weekStart).
		Order("farm_phase_id ASC, nutrition_sop_id ASC, day_of_week ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) HarvestSchedule(phaseIDs []uint, weekStart time.Time) ([]entities.HarvestSchedule, error) {
	var out []entities.HarvestSchedule
	if len(phaseIDs) == 0 {
		return out, nil
	}
	err := r.db.Where("farm_phase_id IN ? AND week_start = ?", phaseIDs, weekStart).
		Order("farm_phase_id ASC, day_of_week ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) Attendance(phaseIDs []uint, from, to time.Time) ([]entities.AttendanceRecord, error) {
	var out []entities.AttendanceRecord
	if len(phaseIDs) == 0 {
		return out, nil
	}
	err := r.db.Where("farm_phase_id IN ? AND date >= ? AND date <= ?", phaseIDs, from, to).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) Feeding(phaseIDs []uint, from, to time.Time) ([]entities.FeedingRecord, error) {
	var out []entities.FeedingRecord
	if len(phaseIDs) == 0 {
		return out, nil
	}
	err := r.db.Where("farm_phase_id IN ? AND date >= ? AND date <= ?", phaseIDs, from, to).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) HarvestLogs(phaseIDs []uint, from, to time.Time) ([]entities.HarvestLog, error) {
	var out []entities.HarvestLog
	if len(phaseIDs) == 0 {
		return out, nil
	}
	err := r.db.Where("farm_phase_id IN ? AND date >= ? AND date <= ?", phaseIDs, from, to).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) Overrides(phaseIDs []uint, weekStart time.Time) ([]entities.PhaseActivityOverride, error) {
	var out []entities.PhaseActivityOverride
	if len(phaseIDs) == 0 {
		return out, nil
	}
	err := r.db.Where("farm_phase_id IN ? AND week_start = ?", phaseIDs, weekStart).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *complianceRepo) FarmRates() (map[string]float64, error) {
	var rows []entities.FarmRate
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	rates := make(map[string]float64, len(rows))
	for _, fr := range rows {
		rates[fr.Farm] = fr.RatePerDay
	}
	return rates, nil
}
