package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comercio-api/internal/application/auth"
	"github.com/jhoicas/Comercio-api/internal/application/documents"
	"github.com/jhoicas/Comercio-api/internal/application/pricing"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	AccountUC   *usecase.AccountUseCase
	ItemUC      *usecase.ItemUseCase
	PartyUC     *usecase.PartyUseCase
	TaxUC       *usecase.TaxUseCase
	UnitUC      *usecase.UnitUseCase
	QuoteUC     *usecase.QuoteUseCase
	OrderUC     *usecase.OrderUseCase
	PriceListUC *usecase.PriceListUseCase
	PurchaseUC  *documents.PurchaseUseCase
	SaleUC      *documents.SaleUseCase
	GrnUC       *documents.GrnUseCase
	NoteUC      *documents.DeliveryNoteUseCase
	PriceRes    *pricing.Resolver
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Accounts: alta pública (bootstrap del tenant), resto protegido
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts := api.Group("/accounts")
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", AuthMiddleware(deps.JWTSecret), accountHandler.List)
	accounts.Get("/:id", AuthMiddleware(deps.JWTSecret), accountHandler.GetByID)
	accounts.Put("/:id", AuthMiddleware(deps.JWTSecret), accountHandler.Update)

	// Rutas protegidas: Bearer token + cuenta resuelta (header o claim)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), TenantMiddleware())

	// Maestros
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	parties := protected.Group("/parties")
	partyHandler := NewPartyHandler(deps.PartyUC)
	parties.Post("/", partyHandler.Create)
	parties.Get("/", partyHandler.List)
	parties.Get("/:id", partyHandler.GetByID)
	parties.Put("/:id", partyHandler.Update)
	parties.Delete("/:id", partyHandler.Delete)

	taxes := protected.Group("/taxes")
	taxHandler := NewTaxHandler(deps.TaxUC)
	taxes.Post("/", taxHandler.Create)
	taxes.Get("/", taxHandler.List)
	taxes.Get("/:id", taxHandler.GetByID)
	taxes.Put("/:id", taxHandler.Update)
	taxes.Delete("/:id", taxHandler.Delete)

	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	// Documentos transaccionales
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)

	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/pdf", saleHandler.Pdf)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Documentos de stock
	grns := protected.Group("/grns")
	grnHandler := NewGrnHandler(deps.GrnUC)
	grns.Post("/", grnHandler.Create)
	grns.Get("/", grnHandler.List)
	grns.Get("/:id", grnHandler.GetByID)
	grns.Put("/:id", grnHandler.Update)
	grns.Delete("/:id", grnHandler.Delete)

	notes := protected.Group("/delivery-notes")
	noteHandler := NewDeliveryNoteHandler(deps.NoteUC)
	notes.Post("/", noteHandler.Create)
	notes.Get("/", noteHandler.List)
	notes.Get("/:id", noteHandler.GetByID)
	notes.Put("/:id", noteHandler.Update)
	notes.Delete("/:id", noteHandler.Delete)

	// Listas de precios y resolución de precio efectivo
	priceLists := protected.Group("/price-lists")
	priceListHandler := NewPriceListHandler(deps.PriceListUC)
	priceLists.Post("/", priceListHandler.Create)
	priceLists.Get("/", priceListHandler.List)
	priceLists.Get("/:id", priceListHandler.GetByID)
	priceLists.Put("/:id", priceListHandler.Update)
	priceLists.Delete("/:id", priceListHandler.Delete)

	pricingHandler := NewPricingHandler(deps.PriceRes)
	protected.Get("/price/effective", pricingHandler.Effective)
}
