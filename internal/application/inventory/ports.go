// Package inventory implementa los casos de uso de existencias: ajustes
// manuales con piso en cero, consulta de stock y auditoría de movimientos.
package inventory

import (
	"context"

	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// InventoryTxRunner ejecuta fn dentro de una transacción con los repos de
// stock. El ajuste bloquea la fila del nivel antes de mutarla.
type InventoryTxRunner interface {
	RunInventory(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
