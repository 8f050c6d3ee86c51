package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// AccountRepository puerto de persistencia para cuentas (tenants).
type AccountRepository interface {
	Create(account *entity.Account) error
	Update(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	List(limit, offset int) ([]*entity.Account, error)
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndAccount(email, accountID string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
