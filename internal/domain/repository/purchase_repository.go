package repository

import (
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para compras y sus líneas.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateItem(item *entity.PurchaseItem) error
	Update(purchase *entity.Purchase) error
	SoftDelete(id string, at time.Time) error
	GetByID(id string) (*entity.Purchase, error)
	GetItems(purchaseID string) ([]*entity.PurchaseItem, error)
	DeleteItems(purchaseID string) error
	ListByAccount(accountID string, limit, offset int) ([]*entity.Purchase, error)
	NextNumber(accountID string) (int64, error)
	// LastLinePrice último precio de compra del artículo para el tercero
	// (por fecha de documento descendente). nil si no hay histórico.
	LastLinePrice(accountID, itemID, partyID string) (*entity.LastPrice, error)
}
