package payments_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/backoffice-pro/internal/domain"
	"github.com/tu-usuario/backoffice-pro/internal/domain/entity"
	"github.com/tu-usuario/backoffice-pro/internal/domain/payments"
)

// Factura de referencia: total 106.50, sin abonos.
func buildInvoice() *entity.Invoice {
	total := decimal.NewFromFloat(106.50)
	return &entity.Invoice{
		ID:               "inv-1",
		TotalAmount:      total,
		AmountPaid:       decimal.Zero,
		RemainingBalance: total,
	}
}

// applyAndSettle aplica el resultado sobre la factura como lo hace el caso de
// uso: suma el delta y recompone el saldo.
func applyAndSettle(inv *entity.Invoice, res payments.PaymentResult) {
	inv.AmountPaid = inv.AmountPaid.Add(res.Delta)
	inv.RemainingBalance = inv.TotalAmount.Sub(inv.AmountPaid)
}

func TestApplyPayment_Unpaid_SinDeltaNiRegistro(t *testing.T) {
	inv := buildInvoice()
	res, err := payments.ApplyPayment(inv, payments.PaymentInstruction{
		ProcessingStatus: entity.PaymentProcessingUnpaid,
	})
	require.NoError(t, err)
	assert.True(t, res.Delta.IsZero())
	assert.Nil(t, res.Record, "Unpaid no agrega registro al historial")
}

// Abono parcial de 50 contra total 106.50 → pagado 50, saldo 56.50, registro
// "Partial Payment".
func TestApplyPayment_ParcialValido(t *testing.T) {
	inv := buildInvoice()
	res, err := payments.ApplyPayment(inv, payments.PaymentInstruction{
		ProcessingStatus: entity.PaymentProcessingPartiallyPaid,
		PartialAmount:    decimal.NewFromInt(50),
		PaymentMethod:    entity.PaymentMethodCash,
		PaymentDate:      time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, res.Delta.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, res.Record)
	assert.Equal(t, entity.PaymentRecordPartial, res.Record.Status)
	assert.True(t, res.Record.Amount.Equal(decimal.NewFromInt(50)))

	applyAndSettle(inv, res)
	assert.True(t, inv.RemainingBalance.Equal(decimal.NewFromFloat(56.50)))
	assert.True(t, payments.CheckBalance(inv), "pagado + saldo debe igualar el total")
}

// Segundo guardado Fully Paid sobre la misma factura: delta 56.50, registro
// "Full Payment", historial previo intacto.
func TestApplyPayment_FullyPaidCompletaSaldo(t *testing.T) {
	inv := buildInvoice()
	inv.AmountPaid = decimal.NewFromInt(50)
	inv.RemainingBalance = decimal.NewFromFloat(56.50)

	res, err := payments.ApplyPayment(inv, payments.PaymentInstruction{
		ProcessingStatus: entity.PaymentProcessingFullyPaid,
		PaymentMethod:    entity.PaymentMethodTransfer,
		BankName:         "Banco Central",
	})
	require.NoError(t, err)
	assert.True(t, res.Delta.Equal(decimal.NewFromFloat(56.50)), "delta = total - pagado previo")
	require.NotNil(t, res.Record)
	assert.Equal(t, entity.PaymentRecordFull, res.Record.Status)

	applyAndSettle(inv, res)
	assert.True(t, inv.AmountPaid.Equal(inv.TotalAmount))
	assert.True(t, inv.RemainingBalance.IsZero())
	assert.True(t, payments.CheckBalance(inv))
}

// Una factura ya saldada produce delta cero, nunca negativo.
func TestApplyPayment_FullyPaidSobreSaldada_DeltaCero(t *testing.T) {
	inv := buildInvoice()
	inv.AmountPaid = inv.TotalAmount
	inv.RemainingBalance = decimal.Zero

	res, err := payments.ApplyPayment(inv, payments.PaymentInstruction{
		ProcessingStatus: entity.PaymentProcessingFullyPaid,
		PaymentMethod:    entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.True(t, res.Delta.IsZero(), "factura saldada: delta 0, no negativo")
	assert.Nil(t, res.Record, "delta cero no agrega registro")
}

// Un parcial puede ALCANZAR exactamente el total; se registra como pago
// completo para efectos de estado.
func TestApplyPayment_ParcialAlcanzaTotalExacto(t *testing.T) {
	inv := buildInvoice()
	inv.AmountPaid = decimal.NewFromInt(100)
	inv.RemainingBalance = decimal.NewFromFloat(6.50)

	res, err := payments.ApplyPayment(inv, payments.PaymentInstruction{
		ProcessingStatus: entity.PaymentProcessingPartiallyPaid,
		PartialAmount:    decimal.NewFromFloat(6.50),
		PaymentMethod:    entity.PaymentMethodCash,
	})
	require.NoError(t, err, "alcanzar el total exacto está permitido")
	require.NotNil(t, res.Record)
	assert.Equal(t, entity.PaymentRecordFull, res.Record.Status,
		"alcanzar el total se trata como pago completo")
}

// Parcial de 200 contra saldo 56.50 → ErrInvalidPartialPayment y factura sin
// cambios.
func TestApplyPayment_ParcialExcedeSaldo(t *testing.T) {
	inv := buildInvoice()
	inv.AmountPaid = decimal.NewFromInt(50)
	inv.RemainingBalance = decimal.NewFromFloat(56.50)

	_, err := payments.ApplyPayment(inv, payments.PaymentInstruction{
		ProcessingStatus: entity.PaymentProcessingPartiallyPaid,
		PartialAmount:    decimal.NewFromInt(200),
		PaymentMethod:    entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPartialPayment,
		"un parcial solo puede alcanzar el total, nunca excederlo")
	assert.True(t, inv.AmountPaid.Equal(decimal.NewFromInt(50)), "la factura queda sin cambios")
}

func TestApplyPayment_ParcialNoPositivo(t *testing.T) {
	inv := buildInvoice()
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := payments.ApplyPayment(inv, payments.PaymentInstruction{
			ProcessingStatus: entity.PaymentProcessingPartiallyPaid,
			PartialAmount:    amount,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPartialPayment,
			"monto %s debe rechazarse", amount)
	}
}

func TestApplyPayment_InstruccionDesconocida(t *testing.T) {
	inv := buildInvoice()
	_, err := payments.ApplyPayment(inv, payments.PaymentInstruction{ProcessingStatus: "Refunded"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin método de pago no se agrega registro aunque haya delta: el historial
// solo guarda abonos con método declarado.
func TestApplyPayment_SinMetodoNoRegistra(t *testing.T) {
	inv := buildInvoice()
	res, err := payments.ApplyPayment(inv, payments.PaymentInstruction{
		ProcessingStatus: entity.PaymentProcessingPartiallyPaid,
		PartialAmount:    decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.True(t, res.Delta.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, res.Record)
}

// Propiedad: AmountPaid es monótonamente no decreciente a lo largo de una
// secuencia de guardados válidos.
func TestApplyPayment_PagoAcumuladoMonotono(t *testing.T) {
	inv := buildInvoice()
	instrucciones := []payments.PaymentInstruction{
		{ProcessingStatus: entity.PaymentProcessingUnpaid},
		{ProcessingStatus: entity.PaymentProcessingPartiallyPaid, PartialAmount: decimal.NewFromInt(30), PaymentMethod: entity.PaymentMethodCash},
		{ProcessingStatus: entity.PaymentProcessingUnpaid},
		{ProcessingStatus: entity.PaymentProcessingPartiallyPaid, PartialAmount: decimal.NewFromInt(20), PaymentMethod: entity.PaymentMethodVoucher, VoucherNumber: "V-88"},
		{ProcessingStatus: entity.PaymentProcessingFullyPaid, PaymentMethod: entity.PaymentMethodTransfer},
		{ProcessingStatus: entity.PaymentProcessingFullyPaid, PaymentMethod: entity.PaymentMethodCash},
	}
	prev := inv.AmountPaid
	for i, in := range instrucciones {
		res, err := payments.ApplyPayment(inv, in)
		require.NoError(t, err, "instrucción %d", i)
		applyAndSettle(inv, res)
		assert.True(t, inv.AmountPaid.GreaterThanOrEqual(prev),
			"AmountPaid nunca decrece (paso %d)", i)
		assert.True(t, payments.CheckBalance(inv), "invariante de saldo (paso %d)", i)
		prev = inv.AmountPaid
	}
	assert.True(t, inv.AmountPaid.Equal(inv.TotalAmount))
}
