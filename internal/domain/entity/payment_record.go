package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un registro de pago, relativos al total del documento en el
// momento del abono.
const (
	PaymentRecordFull    = "Full Payment"
	PaymentRecordPartial = "Partial Payment"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash     = "Cash"
	PaymentMethodVoucher  = "Voucher"
	PaymentMethodTransfer = "Bank Transfer"
)

// PaymentRecord representa un abono en el historial de pagos de una factura.
// Amount es el delta pagado en este evento, no el acumulado. Los registros
// son inmutables una vez agregados; el historial solo crece.
type PaymentRecord struct {
	ID            string
	InvoiceID     string
	PaymentDate   time.Time
	Amount        decimal.Decimal
	Status        string // PaymentRecordFull | PaymentRecordPartial
	PaymentMethod string
	VoucherNumber string // referencia cuando PaymentMethod es Voucher
	BankName      string // referencias cuando PaymentMethod es Bank Transfer
	BankAccount   string
	CreatedAt     time.Time
}
