package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/kibe0711-png/farm-erp-demo-sub001/entities"
	"github.com/kibe0711-png/farm-erp-demo-sub001/pkg/phase/repository"
)

type phaseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PhaseRepository { return &phaseRepo{db} }

func (r *phaseRepo) Create(p *entities.FarmPhase) error { return r.db.Create(p).Error }

func (r *phaseRepo) FindByID(id uint) (*entities.FarmPhase, error) {
	var p entities.FarmPhase
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *phaseRepo) List(includeArchived bool) ([]entities.FarmPhase, error) {
	var out []entities.FarmPhase
	q := r.db.Order("farm ASC, phase_id ASC")
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *phaseRepo) Archive(id uint) error {
	return r.db.Model(&entities.FarmPhase{}).Where("id = ?", id).Update("archived", true).Error
}
