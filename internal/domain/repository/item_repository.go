package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// ItemRepository puerto de persistencia para artículos (maestro).
type ItemRepository interface {
	Create(item *entity.Item) error
	Update(item *entity.Item) error
	Delete(id string) error
	GetByID(id string) (*entity.Item, error)
	GetByAccountAndCode(accountID, code string) (*entity.Item, error)
	ListByAccount(accountID string, limit, offset int) ([]*entity.Item, error)
}

// TaxRepository puerto de persistencia para impuestos (maestro).
type TaxRepository interface {
	Create(tax *entity.Tax) error
	Update(tax *entity.Tax) error
	Delete(id string) error
	GetByID(id string) (*entity.Tax, error)
	ListByAccount(accountID string, limit, offset int) ([]*entity.Tax, error)
}

// UnitRepository puerto de persistencia para unidades (maestro).
type UnitRepository interface {
	Create(unit *entity.Unit) error
	Update(unit *entity.Unit) error
	Delete(id string) error
	GetByID(id string) (*entity.Unit, error)
	ListByAccount(accountID string, limit, offset int) ([]*entity.Unit, error)
}
