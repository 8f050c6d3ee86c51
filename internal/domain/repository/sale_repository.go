package repository

import (
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	Update(sale *entity.Sale) error
	SoftDelete(id string, at time.Time) error
	GetByID(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	DeleteItems(saleID string) error
	ListByAccount(accountID string, limit, offset int) ([]*entity.Sale, error)
	NextNumber(accountID string) (int64, error)
	// LastLinePrice último precio de venta del artículo para el tercero. nil si no hay histórico.
	LastLinePrice(accountID, itemID, partyID string) (*entity.LastPrice, error)
}
