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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de cuentas. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, name, enable_grns, enable_delivery_notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.EnableGrns, account.EnableDeliveryNotes,
		account.Status, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// Update actualiza una cuenta.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET name = $2, enable_grns = $3, enable_delivery_notes = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.EnableGrns, account.EnableDeliveryNotes,
		account.Status, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID. nil si no existe.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `
		SELECT id, name, enable_grns, enable_delivery_notes, status, created_at, updated_at
		FROM accounts WHERE id = $1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.EnableGrns, &a.EnableDeliveryNotes, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// List lista cuentas con paginación.
func (r *AccountRepo) List(limit, offset int) ([]*entity.Account, error) {
	query := `
		SELECT id, name, enable_grns, enable_delivery_notes, status, created_at, updated_at
		FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(
			&a.ID, &a.Name, &a.EnableGrns, &a.EnableDeliveryNotes, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
