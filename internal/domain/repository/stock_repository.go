package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// StockRepository puerto para consultar/actualizar existencias por cuenta+artículo.
// Toda mutación de Count pasa por el servicio de ajustes, dentro de una transacción.
type StockRepository interface {
	Get(accountID, itemID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// GetForUpdate bloquea la fila para el read-modify-write (SELECT FOR UPDATE).
	GetForUpdate(accountID, itemID string) (*entity.Stock, error)
}
