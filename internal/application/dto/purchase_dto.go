package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest línea de orden de compra en la petición.
type PurchaseOrderItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" validate:"omitempty,oneof=base piece packaging"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
// Send=true la crea directamente en Sent.
type CreatePurchaseOrderRequest struct {
	SupplierID string                     `json:"supplier_id" validate:"required"`
	Number     string                     `json:"number"`
	Notes      string                     `json:"notes"`
	Send       bool                       `json:"send"`
	Items      []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ReceiptEventRequest un evento de recepción: cantidad recién recibida de
// una línea, destinada a una bodega.
type ReceiptEventRequest struct {
	POItemID    string          `json:"po_item_id" validate:"required"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ReceiveOrderRequest lote de eventos de recepción.
type ReceiveOrderRequest struct {
	Events []ReceiptEventRequest `json:"events" validate:"required,min=1,dive"`
}

// RejectedReceiptResponse un evento rechazado con su causa.
type RejectedReceiptResponse struct {
	POItemID    string          `json:"po_item_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
}

// ReceiveOrderResponse resultado de una recepción: la orden actualizada y
// los eventos rechazados (si los hay) para corrección del usuario.
type ReceiveOrderResponse struct {
	Order    PurchaseOrderResponse     `json:"order"`
	Applied  int                       `json:"applied"`
	Rejected []RejectedReceiptResponse `json:"rejected,omitempty"`
}

// PurchaseOrderItemResponse una línea de la orden.
type PurchaseOrderItemResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Description      string          `json:"description"`
	Quantity         decimal.Decimal `json:"quantity"`
	QuantityReceived decimal.Decimal `json:"quantity_received"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	UnitType         string          `json:"unit_type"`
	Total            decimal.Decimal `json:"total"`
}

// PurchaseOrderResponse salida completa de una orden de compra.
type PurchaseOrderResponse struct {
	ID          string                      `json:"id"`
	CompanyID   string                      `json:"company_id"`
	SupplierID  string                      `json:"supplier_id"`
	Number      string                      `json:"number"`
	Date        time.Time                   `json:"date"`
	Subtotal    decimal.Decimal             `json:"subtotal"`
	TaxAmount   decimal.Decimal             `json:"tax_amount"`
	TotalAmount decimal.Decimal             `json:"total_amount"`
	Status      string                      `json:"status"`
	Notes       string                      `json:"notes,omitempty"`
	Items       []PurchaseOrderItemResponse `json:"items"`
}

// PurchaseOrderListResponse lista paginada de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
