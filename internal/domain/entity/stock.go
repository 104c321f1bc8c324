package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la existencia actual de un producto en una bodega.
// Quantity nunca se persiste negativa; todo ajuste pasa por
// inventory.AdjustLevel.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
