package repository

import "github.com/tu-usuario/backoffice-pro/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por
// bodega+producto. Usado dentro de transacciones para garantizar
// consistencia.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error)
}

// StockMovementRepository define el puerto de auditoría de movimientos.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
