package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.TaxRepository = (*TaxRepo)(nil)

// TaxRepo implementación de TaxRepository sobre PostgreSQL (usable con pool o tx).
type TaxRepo struct {
	q Querier
}

// NewTaxRepository construye el adaptador de impuestos. Pasar pool o tx (Querier).
func NewTaxRepository(q Querier) *TaxRepo {
	return &TaxRepo{q: q}
}

// Create persiste un impuesto.
func (r *TaxRepo) Create(tax *entity.Tax) error {
	query := `
		INSERT INTO taxes (id, account_id, name, rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		tax.ID, tax.AccountID, tax.Name, tax.Rate, tax.CreatedAt, tax.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tax: %w", err)
	}
	return nil
}

// Update actualiza un impuesto.
func (r *TaxRepo) Update(tax *entity.Tax) error {
	query := `
		UPDATE taxes SET name = $2, rate = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, tax.ID, tax.Name, tax.Rate, tax.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update tax: %w", err)
	}
	return nil
}

// Delete elimina un impuesto.
func (r *TaxRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM taxes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tax: %w", err)
	}
	return nil
}

// GetByID obtiene un impuesto por ID. nil si no existe.
func (r *TaxRepo) GetByID(id string) (*entity.Tax, error) {
	query := `
		SELECT id, account_id, name, rate, created_at, updated_at
		FROM taxes WHERE id = $1`
	var t entity.Tax
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.AccountID, &t.Name, &t.Rate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax: %w", err)
	}
	return &t, nil
}

// ListByAccount lista impuestos por cuenta con paginación.
func (r *TaxRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Tax, error) {
	query := `
		SELECT id, account_id, name, rate, created_at, updated_at
		FROM taxes WHERE account_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list taxes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tax
	for rows.Next() {
		var t entity.Tax
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Name, &t.Rate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tax: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
