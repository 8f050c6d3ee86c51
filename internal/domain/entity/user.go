package entity

import "time"

// User usuario de una cuenta. Solo se usa para emisión de tokens;
// roles y permisos quedan fuera del alcance.
type User struct {
	ID           string
	AccountID    string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
