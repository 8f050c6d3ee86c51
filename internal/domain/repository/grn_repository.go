package repository

import (
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// GrnRepository puerto de persistencia para GRNs y sus líneas.
// Las consultas excluyen filas con borrado lógico salvo indicación contraria.
type GrnRepository interface {
	Create(grn *entity.Grn) error
	CreateItem(item *entity.GrnItem) error
	// Update persiste solo campos de cabecera.
	Update(grn *entity.Grn) error
	SoftDelete(id string, at time.Time) error
	GetByID(id string) (*entity.Grn, error)
	GetItems(grnID string) ([]*entity.GrnItem, error)
	// DeleteItems elimina todas las líneas (reemplazo completo en updates).
	DeleteItems(grnID string) error
	ListByAccount(accountID string, limit, offset int) ([]*entity.Grn, error)
	FindByPurchaseID(purchaseID string) ([]*entity.Grn, error)
	// FindAutoByPurchaseID devuelve la GRN auto-generada de la compra (1:1), nil si no existe.
	FindAutoByPurchaseID(purchaseID string) (*entity.Grn, error)
	NextNumber(accountID string) (int64, error)
}
