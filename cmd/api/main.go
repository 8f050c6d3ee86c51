package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Comercio-api/internal/application/auth"
	"github.com/jhoicas/Comercio-api/internal/application/documents"
	"github.com/jhoicas/Comercio-api/internal/application/pricing"
	"github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Comercio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Comercio-api/internal/interfaces/http"
	"github.com/jhoicas/Comercio-api/pkg/config"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sueltos (pool); los de stock/documentos también existen
	// atados a tx dentro del TxRunner.
	accountRepo := postgres.NewAccountRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	taxRepo := postgres.NewTaxRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	priceListRepo := postgres.NewPriceListRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	grnRepo := postgres.NewGrnRepository(pool)
	noteRepo := postgres.NewDeliveryNoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	adjuster := stock.NewAdjuster()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewUseCase(userRepo, accountRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	partyUC := usecase.NewPartyUseCase(partyRepo)
	taxUC := usecase.NewTaxUseCase(taxRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, partyRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, partyRepo)
	priceListUC := usecase.NewPriceListUseCase(priceListRepo)

	purchaseUC := documents.NewPurchaseUseCase(txRunner, adjuster, accountRepo, partyRepo, itemRepo, purchaseRepo)
	saleUC := documents.NewSaleUseCase(txRunner, adjuster, accountRepo, partyRepo, itemRepo, saleRepo, pdfGenerator)
	grnUC := documents.NewGrnUseCase(txRunner, adjuster, grnRepo, purchaseRepo)
	noteUC := documents.NewDeliveryNoteUseCase(txRunner, adjuster, noteRepo, saleRepo)

	priceResolver := pricing.NewResolver(saleRepo, quoteRepo, purchaseRepo, priceListRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AccountUC:   accountUC,
		ItemUC:      itemUC,
		PartyUC:     partyUC,
		TaxUC:       taxUC,
		UnitUC:      unitUC,
		QuoteUC:     quoteUC,
		OrderUC:     orderUC,
		PriceListUC: priceListUC,
		PurchaseUC:  purchaseUC,
		SaleUC:      saleUC,
		GrnUC:       grnUC,
		NoteUC:      noteUC,
		PriceRes:    priceResolver,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
