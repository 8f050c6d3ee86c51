package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo. Code único por cuenta.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, account_id, code, name, description, unit_id, tax_id, sale_price, purchase_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.AccountID, item.Code, item.Name, item.Description,
		item.UnitID, item.TaxID, item.SalePrice, item.PurchasePrice, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update actualiza un artículo. Code no se modifica.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, unit_id = $4, tax_id = $5, sale_price = $6, purchase_price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.UnitID, item.TaxID,
		item.SalePrice, item.PurchasePrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, account_id, code, name, description, unit_id, tax_id, sale_price, purchase_price, created_at, updated_at
		FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByAccountAndCode obtiene un artículo por cuenta y código. nil si no existe.
func (r *ItemRepo) GetByAccountAndCode(accountID, code string) (*entity.Item, error) {
	query := `
		SELECT id, account_id, code, name, description, unit_id, tax_id, sale_price, purchase_price, created_at, updated_at
		FROM items WHERE account_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, accountID, code))
}

// ListByAccount lista artículos por cuenta con paginación.
func (r *ItemRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT id, account_id, code, name, description, unit_id, tax_id, sale_price, purchase_price, created_at, updated_at
		FROM items WHERE account_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.AccountID, &it.Code, &it.Name, &it.Description,
			&it.UnitID, &it.TaxID, &it.SalePrice, &it.PurchasePrice, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.AccountID, &it.Code, &it.Name, &it.Description,
		&it.UnitID, &it.TaxID, &it.SalePrice, &it.PurchasePrice, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}
