package entity

import "time"

// Account representa una cuenta/tenant del sistema. Todos los datos de negocio
// se escopean por AccountID.
//
// EnableGrns / EnableDeliveryNotes controlan el registro manual de GRN/remisiones:
// en false la cuenta opera en "modo automático" y el sistema sintetiza el
// documento al crear la compra/venta.
type Account struct {
	ID                  string
	Name                string
	EnableGrns          bool
	EnableDeliveryNotes bool
	Status              string // active, suspended, inactive
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AutoGrns indica si la cuenta genera GRNs automáticamente al crear compras.
func (a *Account) AutoGrns() bool { return !a.EnableGrns }

// AutoDeliveryNotes indica si la cuenta genera remisiones automáticamente al crear ventas.
func (a *Account) AutoDeliveryNotes() bool { return !a.EnableDeliveryNotes }
