package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación de UnitRepository sobre PostgreSQL (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de unidades. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una unidad.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, account_id, name, short_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.AccountID, unit.Name, unit.ShortName, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// Update actualiza una unidad.
func (r *UnitRepo) Update(unit *entity.Unit) error {
	query := `
		UPDATE units SET name = $2, short_name = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, unit.ID, unit.Name, unit.ShortName, unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// Delete elimina una unidad.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID. nil si no existe.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `
		SELECT id, account_id, name, short_name, created_at, updated_at
		FROM units WHERE id = $1`
	var u entity.Unit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.AccountID, &u.Name, &u.ShortName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// ListByAccount lista unidades por cuenta con paginación.
func (r *UnitRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Unit, error) {
	query := `
		SELECT id, account_id, name, short_name, created_at, updated_at
		FROM units WHERE account_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.AccountID, &u.Name, &u.ShortName, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
