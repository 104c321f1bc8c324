// Package payments implementa el libro de pagos de facturas y la derivación
// determinista de estado a partir de los totales acumulados.
package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
)

// PaymentInstruction describe qué hacer con el pago en UN guardado.
// ProcessingStatus no se persiste: es la instrucción de esta operación.
type PaymentInstruction struct {
	ProcessingStatus string          // Unpaid | Partially Paid | Fully Paid
	PartialAmount    decimal.Decimal // obligatorio y > 0 cuando Partially Paid
	PaymentDate      time.Time
	PaymentMethod    string
	VoucherNumber    string
	BankName         string
	BankAccount      string
}

// PaymentResult es el resultado de aplicar una instrucción de pago.
// Record es nil cuando el delta es cero o no se indicó método de pago.
type PaymentResult struct {
	Delta  decimal.Decimal
	Record *entity.PaymentRecord
}

// ApplyPayment calcula el delta de pago de esta operación y, si corresponde,
// el nuevo registro para el historial. No muta la factura: el caller aplica
// el delta y agrega el registro dentro de su transacción.
//
//   - Unpaid:         delta 0, sin registro.
//   - Fully Paid:     delta = TotalAmount - AmountPaid, recortado a ≥ 0
//     (una factura ya saldada produce delta cero, nunca negativo).
//   - Partially Paid: delta = PartialAmount, que debe ser > 0 y puede
//     ALCANZAR el total pero nunca excederlo; exceder retorna
//     ErrInvalidPartialPayment y la operación completa se aborta.
//
// El acumulado AmountPaid resultante es monótonamente no decreciente.
func ApplyPayment(inv *entity.Invoice, in PaymentInstruction) (PaymentResult, error) {
	var delta decimal.Decimal

	switch in.ProcessingStatus {
	case entity.PaymentProcessingUnpaid:
		return PaymentResult{Delta: decimal.Zero}, nil

	case entity.PaymentProcessingFullyPaid:
		delta = inv.TotalAmount.Sub(inv.AmountPaid)
		if delta.IsNegative() {
			delta = decimal.Zero
		}

	case entity.PaymentProcessingPartiallyPaid:
		if !in.PartialAmount.IsPositive() {
			return PaymentResult{}, domain.ErrInvalidPartialPayment
		}
		if inv.AmountPaid.Add(in.PartialAmount).GreaterThan(inv.TotalAmount) {
			return PaymentResult{}, domain.ErrInvalidPartialPayment
		}
		delta = in.PartialAmount

	default:
		return PaymentResult{}, domain.ErrInvalidInput
	}

	res := PaymentResult{Delta: delta}
	if delta.IsPositive() && in.PaymentMethod != "" {
		remaining := inv.TotalAmount.Sub(inv.AmountPaid).Sub(delta)
		status := entity.PaymentRecordPartial
		if remaining.LessThanOrEqual(decimal.Zero) {
			status = entity.PaymentRecordFull
		}
		paymentDate := in.PaymentDate
		if paymentDate.IsZero() {
			paymentDate = time.Now()
		}
		res.Record = &entity.PaymentRecord{
			ID:            uuid.New().String(),
			InvoiceID:     inv.ID,
			PaymentDate:   paymentDate,
			Amount:        delta,
			Status:        status,
			PaymentMethod: in.PaymentMethod,
			VoucherNumber: in.VoucherNumber,
			BankName:      in.BankName,
			BankAccount:   in.BankAccount,
			CreatedAt:     time.Now(),
		}
	}
	return res, nil
}

// CheckBalance verifica el invariante AmountPaid + RemainingBalance ==
// TotalAmount. Una violación es un error de programación: el caller debe
// registrarla y recomponer RemainingBalance, nunca propagar un saldo
// corrupto.
func CheckBalance(inv *entity.Invoice) bool {
	return inv.AmountPaid.Add(inv.RemainingBalance).Equal(inv.TotalAmount)
}
