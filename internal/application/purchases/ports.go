package purchases

import (
	"context"

	"github.com/jhoicas/fueldepot-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que orden de compra y asientos
// de libro mayor se crean todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
