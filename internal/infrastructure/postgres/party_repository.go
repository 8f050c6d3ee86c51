package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación de PartyRepository sobre PostgreSQL (usable con pool o tx).
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador de terceros. Pasar pool o tx (Querier).
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

// Create persiste un tercero.
func (r *PartyRepo) Create(party *entity.Party) error {
	query := `
		INSERT INTO parties (id, account_id, name, type, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.AccountID, party.Name, party.Type,
		party.Phone, party.Email, party.Address, party.CreatedAt, party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// Update actualiza un tercero.
func (r *PartyRepo) Update(party *entity.Party) error {
	query := `
		UPDATE parties SET name = $2, type = $3, phone = $4, email = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.Name, party.Type, party.Phone, party.Email, party.Address, party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	return nil
}

// Delete elimina un tercero.
func (r *PartyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero por ID. nil si no existe.
func (r *PartyRepo) GetByID(id string) (*entity.Party, error) {
	query := `
		SELECT id, account_id, name, type, phone, email, address, created_at, updated_at
		FROM parties WHERE id = $1`
	var p entity.Party
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.AccountID, &p.Name, &p.Type, &p.Phone, &p.Email, &p.Address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return &p, nil
}

// ListByAccount lista terceros; partyType vacío no filtra. El tipo "both"
// aparece tanto al filtrar por customer como por supplier.
func (r *PartyRepo) ListByAccount(accountID, partyType string, limit, offset int) ([]*entity.Party, error) {
	query := `
		SELECT id, account_id, name, type, phone, email, address, created_at, updated_at
		FROM parties
		WHERE account_id = $1 AND ($2 = '' OR type = $2 OR type = 'both')
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, accountID, partyType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var list []*entity.Party
	for rows.Next() {
		var p entity.Party
		if err := rows.Scan(
			&p.ID, &p.AccountID, &p.Name, &p.Type, &p.Phone, &p.Email, &p.Address, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
