package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest línea de factura en la petición. UnitPrice opcional:
// en cero se resuelve desde el producto con la unidad indicada.
type InvoiceItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" validate:"omitempty,oneof=base piece packaging"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PaymentRequest instrucción de pago de UN guardado. ProcessingStatus no se
// persiste; indica qué hacer con el pago en esta operación.
type PaymentRequest struct {
	ProcessingStatus string          `json:"processing_status" validate:"required,oneof='Unpaid' 'Partially Paid' 'Fully Paid'"`
	PartialAmount    decimal.Decimal `json:"partial_amount"`
	PaymentDate      time.Time       `json:"payment_date"`
	PaymentMethod    string          `json:"payment_method"`
	VoucherNumber    string          `json:"voucher_number"`
	BankName         string          `json:"bank_name"`
	BankAccount      string          `json:"bank_account"`
}

// CreateInvoiceRequest entrada para crear una factura. Payment opcional
// registra un primer abono en el mismo guardado.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id" validate:"required"`
	Number     string               `json:"number"`
	DueDate    time.Time            `json:"due_date"`
	Notes      string               `json:"notes"`
	Items      []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Payment    *PaymentRequest      `json:"payment" validate:"omitempty"`
}

// RecordPaymentRequest entrada para registrar un abono sobre una factura
// existente (guardados posteriores).
type RecordPaymentRequest struct {
	Payment PaymentRequest `json:"payment" validate:"required"`
}

// PaymentRecordResponse un abono del historial.
type PaymentRecordResponse struct {
	ID            string          `json:"id"`
	PaymentDate   time.Time       `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	VoucherNumber string          `json:"voucher_number,omitempty"`
	BankName      string          `json:"bank_name,omitempty"`
	BankAccount   string          `json:"bank_account,omitempty"`
}

// InvoiceItemResponse una línea de la factura.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitType    string          `json:"unit_type"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse salida completa de una factura.
type InvoiceResponse struct {
	ID               string                  `json:"id"`
	CompanyID        string                  `json:"company_id"`
	CustomerID       string                  `json:"customer_id"`
	CustomerName     string                  `json:"customer_name,omitempty"`
	Number           string                  `json:"number"`
	Date             time.Time               `json:"date"`
	DueDate          time.Time               `json:"due_date"`
	Subtotal         decimal.Decimal         `json:"subtotal"`
	TaxAmount        decimal.Decimal         `json:"tax_amount"`
	VATAmount        decimal.Decimal         `json:"vat_amount"`
	TotalAmount      decimal.Decimal         `json:"total_amount"`
	AmountPaid       decimal.Decimal         `json:"amount_paid"`
	RemainingBalance decimal.Decimal         `json:"remaining_balance"`
	Status           string                  `json:"status"`
	Notes            string                  `json:"notes,omitempty"`
	Items            []InvoiceItemResponse   `json:"items"`
	PaymentHistory   []PaymentRecordResponse `json:"payment_history"`
}

// InvoiceListResponse lista paginada de facturas (solo cabeceras).
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
