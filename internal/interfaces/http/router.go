package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fueldepot-api/internal/application/collection"
	"github.com/jhoicas/fueldepot-api/internal/application/customers"
	"github.com/jhoicas/fueldepot-api/internal/application/purchases"
	"github.com/jhoicas/fueldepot-api/internal/application/statement"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC        *customers.CustomerUseCase
	RecordPurchase    *purchases.RecordPurchaseUseCase
	RequestCollection *collection.RequestCollectionUseCase
	Lifecycle         *collection.LifecycleUseCase
	Document          *collection.DocumentUseCase
	StatementUC       *statement.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	custGroup := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	custGroup.Post("/", customerHandler.Create)
	custGroup.Get("/", customerHandler.List)
	custGroup.Get("/:id", customerHandler.GetByID)
	custGroup.Put("/:id", customerHandler.Update)
	custGroup.Delete("/:id", customerHandler.Delete)

	// Purchases (entradas del libro de órdenes)
	purchaseHandler := NewPurchaseHandler(deps.RecordPurchase)
	api.Post("/purchases", purchaseHandler.RecordPurchase)

	// Collections (retiro: solicitud, verificación, confirmación, documento)
	collGroup := api.Group("/collections")
	collectionHandler := NewCollectionHandler(deps.RequestCollection, deps.Lifecycle, deps.Document)
	collGroup.Post("/", collectionHandler.RequestCollection)
	collGroup.Post("/:id/verify", collectionHandler.Verify)
	collGroup.Post("/:id/confirm", collectionHandler.ConfirmRelease)
	collGroup.Get("/:id/document", collectionHandler.Document)

	// Conciliación por cliente
	ledgerHandler := NewLedgerHandler(deps.StatementUC)
	custGroup.Get("/:id/balance", collectionHandler.Balance)
	custGroup.Get("/:id/statement", ledgerHandler.Statement)
	custGroup.Get("/:id/ledger", ledgerHandler.CustomerLedger)

	// Libro mayor del depósito
	api.Get("/warehouse/ledger", ledgerHandler.WarehouseLedger)
}
