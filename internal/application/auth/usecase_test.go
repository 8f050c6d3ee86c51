package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/auth"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/pkg/jwt"
)

// ─────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────

type memUserRepo struct {
	rows map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmailAndAccount(email, accountID string) (*entity.User, error) {
	for _, u := range r.rows {
		if u.Email == email && u.AccountID == accountID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type memAccountRepo struct {
	rows map[string]*entity.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{rows: make(map[string]*entity.Account)}
}

func (r *memAccountRepo) Create(a *entity.Account) error {
	cp := *a
	r.rows[a.ID] = &cp
	return nil
}

func (r *memAccountRepo) Update(a *entity.Account) error { return r.Create(a) }

func (r *memAccountRepo) GetByID(id string) (*entity.Account, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAccountRepo) List(_, _ int) ([]*entity.Account, error) { return nil, nil }

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase() (*auth.UseCase, *memAccountRepo) {
	accounts := newMemAccountRepo()
	return auth.NewUseCase(newMemUserRepo(), accounts, testSecret, "comercio-api-test", 60), accounts
}

func seedAccount(accounts *memAccountRepo) string {
	id := uuid.New().String()
	_ = accounts.Create(&entity.Account{ID: id, Name: "Cuenta de prueba", Status: "active"})
	return id
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestRegister_CreaUsuarioActivo(t *testing.T) {
	uc, accounts := newUseCase()
	accountID := seedAccount(accounts)

	out, err := uc.Register(dto.RegisterRequest{
		AccountID: accountID,
		Email:     "ana@example.com",
		Password:  "secreto-largo",
		Name:      "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, accountID, out.AccountID)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, "active", out.Status)
}

func TestRegister_CuentaInexistenteRetornaNotFound(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(dto.RegisterRequest{
		AccountID: uuid.New().String(),
		Email:     "ana@example.com",
		Password:  "secreto-largo",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EmailDuplicadoEnLaCuentaRetornaError(t *testing.T) {
	uc, accounts := newUseCase()
	accountID := seedAccount(accounts)

	req := dto.RegisterRequest{AccountID: accountID, Email: "ana@example.com", Password: "secreto-largo"}
	_, err := uc.Register(req)
	require.NoError(t, err)

	_, err = uc.Register(req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesValidasEmiteToken(t *testing.T) {
	uc, accounts := newUseCase()
	accountID := seedAccount(accounts)

	created, err := uc.Register(dto.RegisterRequest{
		AccountID: accountID,
		Email:     "ana@example.com",
		Password:  "secreto-largo",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto-largo"})
	require.NoError(t, err)

	// El token debe llevar el usuario y la cuenta como claims
	userID, tokenAccount, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, accountID, tokenAccount)
}

func TestLogin_PasswordIncorrectaRetornaUnauthorized(t *testing.T) {
	uc, accounts := newUseCase()
	accountID := seedAccount(accounts)

	_, err := uc.Register(dto.RegisterRequest{
		AccountID: accountID,
		Email:     "ana@example.com",
		Password:  "secreto-largo",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteRetornaUnauthorized(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
