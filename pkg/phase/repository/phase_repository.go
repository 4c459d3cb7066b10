package repository

import "github.com/kibe0711-png/farm-erp-demo-sub001/entities"

type PhaseRepository interface {
	Create(p *entities.FarmPhase) error
	FindByID(id uint) (*entities.FarmPhase, error)
	List(includeArchived bool) ([]entities.FarmPhase, error)
	Archive(id uint) error
}
