package payments

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
)

// DeriveStatus deriva el estado de una factura desde sus totales actuales.
// Re-derivación pura, no máquina de estados incremental: todo camino de
// escritura la llama con los números vigentes, lo que evita deriva entre
// estado guardado y saldos guardados. Reglas en orden (gana la primera):
//
//  1. cancelación explícita → Cancelled (terminal).
//  2. TotalAmount > 0 y RemainingBalance ≤ 0 → Paid.
//  3. AmountPaid > 0 → Partially Paid.
//  4. DueDate < today y RemainingBalance > 0 → Overdue.
//  5. → Pending.
//
// Una factura de total cero nunca resuelve Paid: cae a Pending por la
// regla 5. `today` se pasa explícito para que la función sea determinista.
func DeriveStatus(totalAmount, amountPaid, remainingBalance decimal.Decimal, dueDate time.Time, explicitCancelled bool, today time.Time) string {
	switch {
	case explicitCancelled:
		return entity.InvoiceStatusCancelled
	case totalAmount.IsPositive() && remainingBalance.LessThanOrEqual(decimal.Zero):
		return entity.InvoiceStatusPaid
	case amountPaid.IsPositive():
		return entity.InvoiceStatusPartiallyPaid
	case !dueDate.IsZero() && dueDate.Before(today) && remainingBalance.IsPositive():
		return entity.InvoiceStatusOverdue
	default:
		return entity.InvoiceStatusPending
	}
}
