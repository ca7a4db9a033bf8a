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

	"github.com/jhoicas/fueldepot-api/internal/application/collection"
	"github.com/jhoicas/fueldepot-api/internal/application/customers"
	"github.com/jhoicas/fueldepot-api/internal/application/purchases"
	"github.com/jhoicas/fueldepot-api/internal/application/statement"
	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
	"github.com/jhoicas/fueldepot-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/fueldepot-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fueldepot-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fueldepot-api/internal/interfaces/http"
	"github.com/jhoicas/fueldepot-api/pkg/config"
	"github.com/jhoicas/fueldepot-api/pkg/logger"
)

// storage agrupa los puertos de persistencia con el runner transaccional,
// resueltos según APP_STORAGE (postgres o memory).
type storage struct {
	customerRepo   repository.CustomerRepository
	orderRepo      repository.OrderRepository
	invoiceRepo    repository.InvoiceRepository
	withdrawalRepo repository.WithdrawalRepository
	ledgerRepo     repository.LedgerRepository
	purchaseTx     purchases.TxRunner
	collectionTx   collection.TxRunner
	close          func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := buildStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	customerUC := customers.NewCustomerUseCase(st.customerRepo)
	recordPurchaseUC := purchases.NewRecordPurchaseUseCase(st.purchaseTx, st.customerRepo)
	requestCollectionUC := collection.NewRequestCollectionUseCase(
		st.collectionTx, st.customerRepo, st.orderRepo, st.withdrawalRepo,
	)
	lifecycleUC := collection.NewLifecycleUseCase(st.collectionTx, st.invoiceRepo)
	pdfGenerator := infrapdf.NewMarotoCollectionDocument(cfg.App.DepotName)
	documentUC := collection.NewDocumentUseCase(
		st.invoiceRepo, st.withdrawalRepo, st.customerRepo, pdfGenerator,
	)
	statementUC := statement.New(st.customerRepo, st.orderRepo, st.invoiceRepo, st.ledgerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FuelDepot API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:        customerUC,
		RecordPurchase:    recordPurchaseUC,
		RequestCollection: requestCollectionUC,
		Lifecycle:         lifecycleUC,
		Document:          documentUC,
		StatementUC:       statementUC,
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

// buildStorage resuelve los adaptadores de persistencia. Con "memory" la API
// corre sin PostgreSQL (estado volátil, útil para demos y desarrollo local).
func buildStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.App.Storage == "memory" {
		store := memory.NewStore()
		txRunner := memory.NewTxRunner(store)
		return &storage{
			customerRepo:   store.Customers(),
			orderRepo:      store.Orders(),
			invoiceRepo:    store.Invoices(),
			withdrawalRepo: store.Withdrawals(),
			ledgerRepo:     store.Ledger(),
			purchaseTx:     txRunner,
			collectionTx:   txRunner,
			close:          func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	txRunner := postgres.NewTxRunner(pool)
	return &storage{
		customerRepo:   postgres.NewCustomerRepository(pool),
		orderRepo:      postgres.NewOrderRepository(pool),
		invoiceRepo:    postgres.NewInvoiceRepository(pool),
		withdrawalRepo: postgres.NewWithdrawalRepository(pool),
		ledgerRepo:     postgres.NewLedgerRepository(pool),
		purchaseTx:     txRunner,
		collectionTx:   txRunner,
		close:          pool.Close,
	}, nil
}
