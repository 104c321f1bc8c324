// Package purchasing implementa los casos de uso de órdenes de compra:
// creación, recepción conciliada contra stock y cancelación.
package purchasing

import (
	"context"

	"github.com/tu-usuario/backoffice-pro/internal/domain/repository"
)

// PurchasingTxRunner ejecuta fn dentro de una transacción con repositorios
// ligados a ella. La recepción toca orden, stock y auditoría: o se postea
// todo o nada.
type PurchasingTxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		poRepo repository.PurchaseOrderRepository,
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
