package documents

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad de la secuencia
// reverse -> mutar -> releer confirmado -> re-aplicar.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		grnRepo repository.GrnRepository,
		noteRepo repository.DeliveryNoteRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// SaleLineForPDF línea de venta enriquecida para el render PDF.
type SaleLineForPDF struct {
	ItemName string
	ItemCode string
	Qty      decimal.Decimal
	Price    decimal.Decimal
	Subtotal decimal.Decimal
}

// SalePDFGenerator puerto para la representación gráfica de una venta.
type SalePDFGenerator interface {
	GenerateSalePDF(ctx context.Context, sale *entity.Sale, account *entity.Account, party *entity.Party, lines []SaleLineForPDF) ([]byte, error)
}
