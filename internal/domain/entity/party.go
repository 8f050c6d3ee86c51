package entity

import "time"

// Tipos de tercero.
const (
	PartyTypeCustomer = "customer"
	PartyTypeSupplier = "supplier"
	PartyTypeBoth     = "both"
)

// ValidPartyType reporta si t es un tipo de tercero conocido.
func ValidPartyType(t string) bool {
	return t == PartyTypeCustomer || t == PartyTypeSupplier || t == PartyTypeBoth
}

// Party tercero (cliente/proveedor) de una cuenta.
type Party struct {
	ID        string
	AccountID string
	Name      string
	Type      string // ver constantes PartyType*
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
