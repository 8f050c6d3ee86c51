package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/pkg/jwt"
)

// UseCase registro y login de usuarios. Los tokens llevan user_id y
// account_id; roles y permisos quedan fuera del alcance.
type UseCase struct {
	userRepo    repository.UserRepository
	accountRepo repository.AccountRepository
	jwtSecret   string
	jwtIssuer   string
	jwtExpMin   int
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, accountRepo repository.AccountRepository, jwtSecret, jwtIssuer string, jwtExpMin int) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		jwtSecret:   jwtSecret,
		jwtIssuer:   jwtIssuer,
		jwtExpMin:   jwtExpMin,
	}
}

// Register da de alta un usuario en una cuenta existente.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	account, err := uc.accountRepo.GetByID(in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.userRepo.GetByEmailAndAccount(in.Email, in.AccountID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		AccountID:    in.AccountID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login valida credenciales y emite el token.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.AccountID, uc.jwtIssuer, uc.jwtExpMin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		AccountID: u.AccountID,
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
