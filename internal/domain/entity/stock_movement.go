package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeReceipt    = "receipt"    // entrada por recepción de orden de compra
	MovementTypeAdjustment = "adjustment" // ajuste manual (positivo o negativo)
)

// StockMovement es el registro de auditoría de cada mutación de stock.
// Reference apunta al documento origen (orden de compra o nota de ajuste).
type StockMovement struct {
	ID          string
	CompanyID   string
	ProductID   string
	WarehouseID string
	Type        string          // receipt, adjustment
	Quantity    decimal.Decimal // positivo entrada, negativo salida
	Reference   string
	Notes       string
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
