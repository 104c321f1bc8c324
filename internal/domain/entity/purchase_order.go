package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. Draft/Sent avanzan por recepciones a
// Partially/Fully Received; Cancelled es terminal y solo alcanzable desde
// Draft o Sent.
const (
	PurchaseOrderStatusDraft             = "Draft"
	PurchaseOrderStatusSent              = "Sent"
	PurchaseOrderStatusPartiallyReceived = "Partially Received"
	PurchaseOrderStatusFullyReceived     = "Fully Received"
	PurchaseOrderStatusCancelled         = "Cancelled"
)

// PurchaseOrder representa una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID          string
	CompanyID   string
	SupplierID  string
	Number      string
	Date        time.Time
	Items       []*PurchaseOrderItem
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	Status      string // ver constantes PurchaseOrderStatus*
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PurchaseOrderItem es una línea de la orden. QuantityReceived acumula las
// recepciones parciales a través de múltiples eventos; nunca se resetea.
type PurchaseOrderItem struct {
	ID               string
	PurchaseOrderID  string
	ProductID        string
	Description      string
	Quantity         decimal.Decimal // cantidad ordenada
	QuantityReceived decimal.Decimal // acumulado recibido
	UnitPrice        decimal.Decimal
	UnitType         string
	Total            decimal.Decimal
}

// FindItem busca la línea por ID. Devuelve nil si no existe.
func (po *PurchaseOrder) FindItem(itemID string) *PurchaseOrderItem {
	for _, it := range po.Items {
		if it.ID == itemID {
			return it
		}
	}
	return nil
}
