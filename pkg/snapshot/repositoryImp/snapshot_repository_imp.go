package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/snapshot/repository"
)

type snapshotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SnapshotRepository { return &snapshotRepo{db} }

// Read returns a week's frozen rows, optionally narrowed by farm name.
// Farm filtering is by label, not phase id: the live phase set may have
// changed since the snapshot was taken.
func (r *snapshotRepo) Read(weekStart time.Time, farm string) ([]entities.ComplianceSnapshot, error) {
	var out []entities.ComplianceSnapshot
	q := r.db.Where("week_start = ?", weekStart)
	if farm != "" {
		q = q.Where("farm = ?", farm)
	}
	if err := q.Order("farm_phase_id ASC, type ASC, task ASC, day_of_week ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Replace deletes the week's rows and inserts the new set in one
// transaction, so concurrent saves cannot interleave.
func (r *snapshotRepo) Replace(weekStart time.Time, rows []entities.ComplianceSnapshot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("week_start = ?", weekStart).Delete(&entities.ComplianceSnapshot{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *snapshotRepo) Delete(weekStart time.Time) (int64, error) {
	res := r.db.Where("week_start = ?", weekStart).Delete(&entities.ComplianceSnapshot{})
	return res.RowsAffected, res.Error
}
