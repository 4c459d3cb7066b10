package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/intake/repository"
)

type intakeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IntakeRepository { return &intakeRepo{db} }

func (r *intakeRepo) CreateAttendance(rec *entities.AttendanceRecord) error {
	return r.db.Create(rec).Error
}

func (r *intakeRepo) ListAttendance(phaseID uint, from, to *time.Time) ([]entities.AttendanceRecord, error) {
	var out []entities.AttendanceRecord
	q := r.db.Where("farm_phase_id = ?", phaseID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *intakeRepo) CreateFeeding(rec *entities.FeedingRecord) error {
	return r.db.Create(rec).Error
}

func (r *intakeRepo) ListFeeding(phaseID uint, from, to *time.Time) ([]entities.FeedingRecord, error) {
	var out []entities.FeedingRecord
	q := r.db.Where("farm_phase_id = ?", phaseID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *intakeRepo) CreateHarvestLog(rec *entities.HarvestLog) error {
	return r.db.Create(rec).Error
}

func (r *intakeRepo) ListHarvestLogs(phaseID uint, from, to *time.Time) ([]entities.HarvestLog, error) {
	var out []entities.HarvestLog
	q := r.db.Where("farm_phase_id = ?", phaseID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *intakeRepo) UpsertOverride(o *entities.PhaseActivityOverride) error {
	var row entities.PhaseActivityOverride
	err := r.db.Where("farm_phase_id = ? AND sop_id = ? AND sop_type = ? AND week_start = ?",
		o.FarmPhaseID, o.SOPID, o.SOPType, o.WeekStart).
		Assign(map[string]any{"action": o.Action}).
		FirstOrCreate(&row, entities.PhaseActivityOverride{
			FarmPhaseID: o.FarmPhaseID,
			SOPID:       o.SOPID,
			SOPType:     o.SOPType,
			WeekStart:   o.WeekStart,
		}).Error
	if err != nil {
		return err
	}
	*o = row
	return nil
}

func (r *intakeRepo) DeleteOverride(id uint) (int64, error) {
	res := r.db.Delete(&entities.PhaseActivityOverride{}, id)
	return res.RowsAffected, res.Error
}

func (r *intakeRepo) ListOverrides(phaseID uint, weekStart *time.Time) ([]entities.PhaseActivityOverride, error) {
	var out []entities.PhaseActivityOverride
	q := r.db.Model(&entities.PhaseActivityOverride{})
	if phaseID != 0 {
		q = q.Where("farm_phase_id = ?", phaseID)
	}
	if weekStart != nil {
		q = q.Where("week_start = ?", *weekStart)
	}
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *intakeRepo) PutFarmRate(farm string, rate float64) (*entities.FarmRate, error) {
	var row entities.FarmRate
	err := r.db.Where("farm = ?", farm).
		Assign(map[string]any{"rate_per_day": rate}).
		FirstOrCreate(&row, entities.FarmRate{Farm: farm}).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *intakeRepo) ListFarmRates() ([]entities.FarmRate, error) {
	var out []entities.FarmRate
	if err := r.db.Order("farm ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
