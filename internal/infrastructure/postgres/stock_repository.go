package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la existencia actual de un artículo en una cuenta.
// Sin fila registrada devuelve stock cero, no error.
func (r *StockRepo) Get(accountID, itemID string) (*entity.Stock, error) {
	query := `
		SELECT account_id, item_id, count, updated_at
		FROM stock WHERE account_id = $1 AND item_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, accountID, itemID).Scan(
		&s.AccountID, &s.ItemID, &s.Count, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{AccountID: accountID, ItemID: itemID, Count: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la existencia (por cuenta y artículo).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (account_id, item_id, count, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (account_id, item_id)
		DO UPDATE SET count = EXCLUDED.count, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.AccountID, stock.ItemID, stock.Count)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// GetForUpdate obtiene la existencia y bloquea la fila para el read-modify-write (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(accountID, itemID string) (*entity.Stock, error) {
	query := `
		SELECT account_id, item_id, count, updated_at
		FROM stock WHERE account_id = $1 AND item_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, accountID, itemID).Scan(
		&s.AccountID, &s.ItemID, &s.Count, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{AccountID: accountID, ItemID: itemID, Count: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}
