package dto

import "time"

// RegisterRequest alta de usuario en una cuenta existente.
type RegisterRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid4"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateAccountRequest alta de cuenta (tenant).
type CreateAccountRequest struct {
	Name                string `json:"name" validate:"required"`
	EnableGrns          *bool  `json:"enable_grns"`
	EnableDeliveryNotes *bool  `json:"enable_delivery_notes"`
}

// UpdateAccountRequest actualización parcial de cuenta.
type UpdateAccountRequest struct {
	Name                *string `json:"name"`
	EnableGrns          *bool   `json:"enable_grns"`
	EnableDeliveryNotes *bool   `json:"enable_delivery_notes"`
	Status              *string `json:"status" validate:"omitempty,oneof=active suspended inactive"`
}

// AccountResponse cuenta en respuestas.
type AccountResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	EnableGrns          bool      `json:"enable_grns"`
	EnableDeliveryNotes bool      `json:"enable_delivery_notes"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
