package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados persistidos de una factura. Siempre se re-derivan de los totales
// (payments.DeriveStatus); nunca se transicionan a mano en los handlers.
const (
	InvoiceStatusPending       = "Pending"
	InvoiceStatusPartiallyPaid = "Partially Paid"
	InvoiceStatusPaid          = "Paid"
	InvoiceStatusOverdue       = "Overdue"
	InvoiceStatusCancelled     = "Cancelled"
)

// Instrucción de procesamiento de pago para UN guardado. No es estado
// persistido: indica qué hacer con el pago en esta operación.
const (
	PaymentProcessingUnpaid        = "Unpaid"
	PaymentProcessingPartiallyPaid = "Partially Paid"
	PaymentProcessingFullyPaid     = "Fully Paid"
)

// Invoice representa la cabecera de una factura de venta.
// Invariante: AmountPaid + RemainingBalance == TotalAmount en todo momento.
type Invoice struct {
	ID               string
	CompanyID        string
	CustomerID       string
	Number           string
	Date             time.Time
	DueDate          time.Time
	Subtotal         decimal.Decimal // Σ totales de línea
	TaxAmount        decimal.Decimal
	VATAmount        decimal.Decimal
	TotalAmount      decimal.Decimal // Subtotal + TaxAmount + VATAmount
	AmountPaid       decimal.Decimal // acumulado, nunca decrece mientras la factura viva
	RemainingBalance decimal.Decimal // TotalAmount - AmountPaid
	Status           string          // ver constantes InvoiceStatus*
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InvoiceItem representa una línea de factura. UnitPrice ya incluye el
// impuesto al consumo de la unidad elegida; el tax/IVA de documento se
// calcula aparte sobre el subtotal.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	UnitType    string
	Total       decimal.Decimal // Quantity × UnitPrice, redondeado a 2
}
